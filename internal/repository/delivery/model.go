package delivery

import "time"

type DeliveryOfferDB struct {
	ID         string
	ListingID  string
	PartnerID  string
	Amount     string
	CreatedAt  time.Time
	Accepted   bool
	AcceptedAt *time.Time
	Checkpoint int16
}

func (o *DeliveryOfferDB) scanTargets() []any {
	return []any{
		&o.ID,
		&o.ListingID,
		&o.PartnerID,
		&o.Amount,
		&o.CreatedAt,
		&o.Accepted,
		&o.AcceptedAt,
		&o.Checkpoint,
	}
}

const offerColumns = `id, listing_id, partner_id, amount::text, created_at, accepted, accepted_at, checkpoint`
