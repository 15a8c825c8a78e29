// Package dto описывает JSON-контракт REST API и конвертеры из сущностей.
package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"marketplace/internal/entities"
)

type PingResponse struct {
	Message string `json:"message"`
	Service string `json:"service"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Retry bool   `json:"retry,omitempty"`
}

type ListingCreate struct {
	ItemName     string          `json:"item_name"`
	Quantity     int64           `json:"quantity"`
	BasePrice    decimal.Decimal `json:"base_price"`
	BiddingStart time.Time       `json:"bidding_start"`
	Images       []string        `json:"images"`
}

type BiddingEnd struct {
	BiddingEnd time.Time `json:"bidding_end"`
}

type AmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type PurchaseRequest struct {
	PaymentRef string `json:"payment_ref"`
}

type CheckpointRequest struct {
	Checkpoint string `json:"checkpoint"`
}

type RatingCreate struct {
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

type Award struct {
	Kind       string          `json:"kind"`
	BidID      *string         `json:"bid_id,omitempty"`
	BuyerID    string          `json:"buyer_id"`
	Amount     decimal.Decimal `json:"amount"`
	PaymentRef *string         `json:"payment_ref,omitempty"`
	AwardedAt  time.Time       `json:"awarded_at"`
}

type Listing struct {
	ID           string          `json:"id"`
	OwnerID      string          `json:"owner_id"`
	ItemName     string          `json:"item_name"`
	Quantity     int64           `json:"quantity"`
	BasePrice    decimal.Decimal `json:"base_price"`
	BiddingStart time.Time       `json:"bidding_start"`
	BiddingEnd   *time.Time      `json:"bidding_end,omitempty"`
	Images       []string        `json:"images"`
	Status       string          `json:"status"`
	Award        *Award          `json:"award,omitempty"`
	Version      int64           `json:"version"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type Bid struct {
	ID        string          `json:"id"`
	ListingID string          `json:"listing_id"`
	BuyerID   string          `json:"buyer_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

type DeliveryOffer struct {
	ID         string          `json:"id"`
	ListingID  string          `json:"listing_id"`
	PartnerID  string          `json:"partner_id"`
	Amount     decimal.Decimal `json:"amount"`
	CreatedAt  time.Time       `json:"created_at"`
	Accepted   bool            `json:"accepted"`
	AcceptedAt *time.Time      `json:"accepted_at,omitempty"`
	Checkpoint string          `json:"checkpoint"`
}

type CheckpointStatus struct {
	Checkpoint string     `json:"checkpoint"`
	Reached    bool       `json:"reached"`
	ReachedAt  *time.Time `json:"reached_at,omitempty"`
}

type Rating struct {
	ID        string    `json:"id"`
	ListingID string    `json:"listing_id"`
	FarmerID  string    `json:"farmer_id"`
	PartnerID string    `json:"partner_id"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type PartnerRating struct {
	PartnerID string  `json:"partner_id"`
	Count     int64   `json:"count"`
	ScoreSum  int64   `json:"score_sum"`
	Average   float64 `json:"average"`
}

type Order struct {
	Kind          string             `json:"kind"`
	ListingID     string             `json:"listing_id"`
	FarmerID      string             `json:"farmer_id"`
	BuyerID       string             `json:"buyer_id"`
	ItemName      string             `json:"item_name"`
	Quantity      int64              `json:"quantity"`
	Amount        decimal.Decimal    `json:"amount"`
	PaymentRef    *string            `json:"payment_ref,omitempty"`
	AwardedAt     time.Time          `json:"awarded_at"`
	Status        string             `json:"status"`
	DeliveryOffer *DeliveryOffer     `json:"delivery_offer,omitempty"`
	Tracking      []CheckpointStatus `json:"tracking"`
	Rating        *Rating            `json:"rating,omitempty"`
}

func FromListing(l *entities.Listing) Listing {
	res := Listing{
		ID:           l.ID,
		OwnerID:      l.OwnerID,
		ItemName:     l.ItemName,
		Quantity:     l.Quantity,
		BasePrice:    l.BasePrice,
		BiddingStart: l.BiddingStart,
		BiddingEnd:   l.BiddingEnd,
		Images:       l.Images,
		Status:       l.Status.String(),
		Version:      l.Version,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
	if res.Images == nil {
		res.Images = []string{}
	}
	if l.Award != nil {
		res.Award = &Award{
			Kind:       l.Award.Kind.String(),
			BidID:      l.Award.BidID,
			BuyerID:    l.Award.BuyerID,
			Amount:     l.Award.Amount,
			PaymentRef: l.Award.PaymentRef,
			AwardedAt:  l.Award.AwardedAt,
		}
	}
	return res
}

func FromBid(b *entities.Bid) Bid {
	return Bid{
		ID:        b.ID,
		ListingID: b.ListingID,
		BuyerID:   b.BuyerID,
		Amount:    b.Amount,
		CreatedAt: b.CreatedAt,
	}
}

func FromBids(bids []entities.Bid) []Bid {
	res := make([]Bid, 0, len(bids))
	for i := range bids {
		res = append(res, FromBid(&bids[i]))
	}
	return res
}

func FromDeliveryOffer(o *entities.DeliveryOffer) DeliveryOffer {
	return DeliveryOffer{
		ID:         o.ID,
		ListingID:  o.ListingID,
		PartnerID:  o.PartnerID,
		Amount:     o.Amount,
		CreatedAt:  o.CreatedAt,
		Accepted:   o.Accepted,
		AcceptedAt: o.AcceptedAt,
		Checkpoint: o.Checkpoint.String(),
	}
}

func FromDeliveryOffers(offers []entities.DeliveryOffer) []DeliveryOffer {
	res := make([]DeliveryOffer, 0, len(offers))
	for i := range offers {
		res = append(res, FromDeliveryOffer(&offers[i]))
	}
	return res
}

func FromTracking(statuses []entities.CheckpointStatus) []CheckpointStatus {
	res := make([]CheckpointStatus, 0, len(statuses))
	for _, s := range statuses {
		res = append(res, CheckpointStatus{
			Checkpoint: s.Checkpoint.String(),
			Reached:    s.Reached,
			ReachedAt:  s.ReachedAt,
		})
	}
	return res
}

func FromRating(r *entities.Rating) Rating {
	return Rating{
		ID:        r.ID,
		ListingID: r.ListingID,
		FarmerID:  r.FarmerID,
		PartnerID: r.PartnerID,
		Score:     r.Score,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

func FromPartnerRating(p *entities.PartnerRating) PartnerRating {
	return PartnerRating{
		PartnerID: p.PartnerID,
		Count:     p.Count,
		ScoreSum:  p.ScoreSum,
		Average:   p.Average(),
	}
}

func FromOrder(o *entities.Order) Order {
	res := Order{
		Kind:       o.Kind.String(),
		ListingID:  o.ListingID,
		FarmerID:   o.FarmerID,
		BuyerID:    o.BuyerID,
		ItemName:   o.ItemName,
		Quantity:   o.Quantity,
		Amount:     o.Amount,
		PaymentRef: o.PaymentRef,
		AwardedAt:  o.AwardedAt,
		Status:     o.Status.String(),
		Tracking:   FromTracking(o.Tracking),
	}
	if o.DeliveryOffer != nil {
		offer := FromDeliveryOffer(o.DeliveryOffer)
		res.DeliveryOffer = &offer
	}
	if o.Rating != nil {
		rating := FromRating(o.Rating)
		res.Rating = &rating
	}
	return res
}
