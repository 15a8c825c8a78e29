package bid

import "time"

type BidDB struct {
	ID        string
	ListingID string
	BuyerID   string
	Amount    string
	CreatedAt time.Time
}

const bidColumns = `id, listing_id, buyer_id, amount::text, created_at`
