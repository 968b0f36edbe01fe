package dto

type ProductFilters struct {
	CategoryID  int64
	SearchQuery string
	IsActive    *bool
	SortBy      string
	SortOrder   string
	Page        int
	PageSize    int
}
