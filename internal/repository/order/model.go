package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderDB struct {
	ID           string
	BranchIDs    []string
	Status       string
	OrderType    string
	TotalAmount  string
	Customer     CustomerDB
	Items        []ItemDB
	RiderID      *string
	CancelReason *string
	CreatedAt    time.Time
}

type CustomerDB struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type ItemDB struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}
