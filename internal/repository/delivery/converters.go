package delivery

import (
	"fmt"

	"github.com/shopspring/decimal"
	"marketplace/internal/entities"
)

func ToDomain(o *DeliveryOfferDB) (*entities.DeliveryOffer, error) {
	if o == nil {
		return nil, nil
	}

	amount, err := decimal.NewFromString(o.Amount)
	if err != nil {
		return nil, fmt.Errorf("parse offer amount %q: %w", o.Amount, err)
	}

	checkpoint := entities.Checkpoint(o.Checkpoint)
	if !checkpoint.IsValid() {
		return nil, fmt.Errorf("offer %s has invalid checkpoint %d", o.ID, o.Checkpoint)
	}

	offer := &entities.DeliveryOffer{
		ID:         o.ID,
		ListingID:  o.ListingID,
		PartnerID:  o.PartnerID,
		Amount:     amount,
		CreatedAt:  o.CreatedAt.UTC(),
		Accepted:   o.Accepted,
		Checkpoint: checkpoint,
	}
	if o.AcceptedAt != nil {
		at := o.AcceptedAt.UTC()
		offer.AcceptedAt = &at
	}
	return offer, nil
}

func ToDomainList(offersDB []DeliveryOfferDB) ([]entities.DeliveryOffer, error) {
	result := make([]entities.DeliveryOffer, 0, len(offersDB))
	for i := range offersDB {
		o, err := ToDomain(&offersDB[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	return result, nil
}
