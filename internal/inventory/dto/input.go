package dto

type AdjustStockInput struct {
	VariantID      int64
	QuantityChange int
	StaffID        int64
	Note           *string
}
