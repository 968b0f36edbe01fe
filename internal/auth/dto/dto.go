package dto

import "github.com/brightbuy/brightbuy-backend/internal/model"

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string       `json:"token"`
	Staff *model.Staff `json:"staff"`
}
