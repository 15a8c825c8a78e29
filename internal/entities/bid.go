package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Bid struct {
	ID        string
	ListingID string
	BuyerID   string
	Amount    decimal.Decimal
	CreatedAt time.Time
}
