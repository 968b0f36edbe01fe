package dto

type AdjustmentFilters struct {
	VariantID int64
	StaffID   int64
	Page      int
	PageSize  int
}
