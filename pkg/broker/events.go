package broker

import "time"

const EventTypeStockAdjusted = "inventory.stock_adjusted"

type StockAdjustedEvent struct {
	EventID   string               `json:"event_id"`
	EventType string               `json:"event_type"`
	Payload   StockAdjustedPayload `json:"payload"`
	Timestamp time.Time            `json:"timestamp"`
}

type StockAdjustedPayload struct {
	VariantID      int64 `json:"variant_id"`
	StaffID        int64 `json:"staff_id"`
	OldQuantity    int   `json:"old_quantity"`
	QuantityChange int   `json:"quantity_change"`
	NewQuantity    int   `json:"new_quantity"`
}
