package dto

type CreateStaffInput struct {
	UserName string  `json:"userName"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Phone    *string `json:"phone"`
	Role     string  `json:"role"`
}

type UpdateProfileInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

type DeleteOwnAccountInput struct {
	Password string `json:"password"`
}
