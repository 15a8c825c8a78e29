package rating

import "marketplace/internal/entities"

func ToDomain(r *RatingDB) *entities.Rating {
	if r == nil {
		return nil
	}

	return &entities.Rating{
		ID:        r.ID,
		ListingID: r.ListingID,
		FarmerID:  r.FarmerID,
		PartnerID: r.PartnerID,
		Score:     int(r.Score),
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt.UTC(),
	}
}

func PartnerToDomain(p *PartnerRatingDB) *entities.PartnerRating {
	if p == nil {
		return nil
	}

	return &entities.PartnerRating{
		PartnerID: p.PartnerID,
		ScoreSum:  p.ScoreSum,
		Count:     p.Count,
		UpdatedAt: p.UpdatedAt.UTC(),
	}
}
