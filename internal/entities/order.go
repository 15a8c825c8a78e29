package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderKind string

const (
	OrderDirectPurchase OrderKind = "direct_purchase"
	OrderAwardedBid     OrderKind = "awarded_bid"
)

func (k OrderKind) String() string {
	return string(k)
}

// Order: единое представление продажи для обоих путей (прямая покупка и выигранная ставка).
// Оба варианта делят один трекер доставки и одну оценку.
type Order struct {
	Kind          OrderKind
	ListingID     string
	FarmerID      string
	BuyerID       string
	ItemName      string
	Quantity      int64
	Amount        decimal.Decimal
	PaymentRef    *string
	AwardedAt     time.Time
	Status        ListingStatusType
	DeliveryOffer *DeliveryOffer
	Tracking      []CheckpointStatus
	Rating        *Rating
}

func OrderKindFromAward(kind AwardKind) OrderKind {
	if kind == AwardKindDirectPurchase {
		return OrderDirectPurchase
	}
	return OrderAwardedBid
}

// Payment: подтверждение оплаты от платёжного шлюза.
type Payment struct {
	Reference string
	Succeeded bool
	Amount    decimal.Decimal
	Currency  string
}
