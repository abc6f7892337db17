package order_status_changed

type statusChangedEvent struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}
