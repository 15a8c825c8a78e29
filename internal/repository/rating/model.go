package rating

import "time"

type RatingDB struct {
	ID        string
	ListingID string
	FarmerID  string
	PartnerID string
	Score     int16
	Comment   string
	CreatedAt time.Time
}

type PartnerRatingDB struct {
	PartnerID string
	ScoreSum  int64
	Count     int64
	UpdatedAt time.Time
}
