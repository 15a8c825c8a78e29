package bid

import (
	"fmt"

	"github.com/shopspring/decimal"
	"marketplace/internal/entities"
)

func ToDomain(b *BidDB) (*entities.Bid, error) {
	if b == nil {
		return nil, nil
	}

	amount, err := decimal.NewFromString(b.Amount)
	if err != nil {
		return nil, fmt.Errorf("parse bid amount %q: %w", b.Amount, err)
	}

	return &entities.Bid{
		ID:        b.ID,
		ListingID: b.ListingID,
		BuyerID:   b.BuyerID,
		Amount:    amount,
		CreatedAt: b.CreatedAt.UTC(),
	}, nil
}

func ToDomainList(bidsDB []BidDB) ([]entities.Bid, error) {
	result := make([]entities.Bid, 0, len(bidsDB))
	for i := range bidsDB {
		b, err := ToDomain(&bidsDB[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *b)
	}
	return result, nil
}
