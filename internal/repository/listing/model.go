package listing

import "time"

type ListingDB struct {
	ID              string
	OwnerID         string
	ItemName        string
	Quantity        int64
	BasePrice       string
	BiddingStart    time.Time
	BiddingEnd      *time.Time
	Images          []string
	Status          string
	AwardKind       *string
	AwardBidID      *string
	AwardBuyerID    *string
	AwardAmount     *string
	AwardPaymentRef *string
	AwardedAt       *time.Time
	Version         int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (l *ListingDB) scanTargets() []any {
	return []any{
		&l.ID,
		&l.OwnerID,
		&l.ItemName,
		&l.Quantity,
		&l.BasePrice,
		&l.BiddingStart,
		&l.BiddingEnd,
		&l.Images,
		&l.Status,
		&l.AwardKind,
		&l.AwardBidID,
		&l.AwardBuyerID,
		&l.AwardAmount,
		&l.AwardPaymentRef,
		&l.AwardedAt,
		&l.Version,
		&l.CreatedAt,
		&l.UpdatedAt,
	}
}

// numeric отдаём текстом, чтобы decimal разбирал его без потерь
const listingColumns = `id, owner_id, item_name, quantity, base_price::text, bidding_start, bidding_end,
	images, status, award_kind, award_bid_id, award_buyer_id, award_amount::text, award_payment_ref,
	awarded_at, version, created_at, updated_at`
