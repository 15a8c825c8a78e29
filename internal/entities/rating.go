package entities

import "time"

const (
	MinRatingScore = 1
	MaxRatingScore = 5
)

type Rating struct {
	ID        string
	ListingID string
	FarmerID  string
	PartnerID string
	Score     int
	Comment   string
	CreatedAt time.Time
}

// PartnerRating: производный агрегат, обновляется в той же транзакции, что и Rating.
type PartnerRating struct {
	PartnerID string
	ScoreSum  int64
	Count     int64
	UpdatedAt time.Time
}

func (p PartnerRating) Average() float64 {
	if p.Count == 0 {
		return 0
	}
	return float64(p.ScoreSum) / float64(p.Count)
}
