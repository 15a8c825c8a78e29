package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type ListingStatusType string

const (
	ListingOpen      ListingStatusType = "open"
	ListingAwarded   ListingStatusType = "awarded"
	ListingDeclined  ListingStatusType = "declined"
	ListingFulfilled ListingStatusType = "fulfilled"
)

func (s ListingStatusType) String() string {
	return string(s)
}

func (s ListingStatusType) IsTerminal() bool {
	return s == ListingDeclined || s == ListingFulfilled
}

type Listing struct {
	ID           string
	OwnerID      string
	ItemName     string
	Quantity     int64
	BasePrice    decimal.Decimal
	BiddingStart time.Time
	BiddingEnd   *time.Time
	Images       []string
	Status       ListingStatusType
	Award        *Award
	Version      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BiddingClosedAt сообщает, истекло ли окно торгов к моменту now.
func (l *Listing) BiddingClosedAt(now time.Time) bool {
	return l.BiddingEnd != nil && now.After(*l.BiddingEnd)
}

// AcceptsBidsAt: листинг открыт, без награды и окно торгов не истекло.
func (l *Listing) AcceptsBidsAt(now time.Time) bool {
	return l.Status == ListingOpen && l.Award == nil && !l.BiddingClosedAt(now)
}

type ListingCreate struct {
	OwnerID      string
	ItemName     string
	Quantity     int64
	BasePrice    decimal.Decimal
	BiddingStart time.Time
	Images       []string
}

// ListingModify описывает условную запись: применяется только если версия
// в хранилище равна ExpectedVersion, после чего версия увеличивается.
type ListingModify struct {
	ID              string
	ExpectedVersion int64
	Status          *ListingStatusType
	BiddingEnd      *time.Time
	Award           *Award
	UpdatedAt       time.Time
}

type AwardKind string

const (
	AwardKindBid            AwardKind = "awarded_bid"
	AwardKindDirectPurchase AwardKind = "direct_purchase"
)

func (k AwardKind) String() string {
	return string(k)
}

type Award struct {
	Kind       AwardKind
	BidID      *string
	BuyerID    string
	Amount     decimal.Decimal
	PaymentRef *string
	AwardedAt  time.Time
}
