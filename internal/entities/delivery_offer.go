package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type DeliveryOffer struct {
	ID         string
	ListingID  string
	PartnerID  string
	Amount     decimal.Decimal
	CreatedAt  time.Time
	Accepted   bool
	AcceptedAt *time.Time
	Checkpoint Checkpoint
}

// Eligible: оффер можно принять, только пока ни один оффер листинга не принят.
func (o *DeliveryOffer) Eligible(acceptedExists bool) bool {
	return !o.Accepted && !acceptedExists
}
