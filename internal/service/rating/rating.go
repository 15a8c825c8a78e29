package rating

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"marketplace/internal/entities"
)

type Rating struct {
	listings   ListingRepository
	offers     OfferRepository
	repository Repository
	txManager  TxManager
	clock      Clock
	notifier   Notifier
}

func New(
	listings ListingRepository,
	offers OfferRepository,
	repository Repository,
	txManager TxManager,
	clock Clock,
	notifier Notifier,
) *Rating {
	return &Rating{
		listings:   listings,
		offers:     offers,
		repository: repository,
		txManager:  txManager,
		clock:      clock,
		notifier:   notifier,
	}
}

// SubmitRating сохраняет единственную оценку партнёра по лоту и в той же транзакции
// обновляет агрегат партнёра.
func (r *Rating) SubmitRating(ctx context.Context, actor entities.Actor, listingID string, score int, comment string) (*entities.Rating, error) {
	if !isValidID(listingID) {
		return nil, ErrInvalidListingID
	}
	comment = strings.TrimSpace(comment)
	if err := validateRating(score, comment); err != nil {
		return nil, err
	}

	var created *entities.Rating
	err := r.txManager.Do(ctx, func(ctx context.Context) error {
		listing, err := r.listings.GetByID(ctx, listingID)
		if err != nil {
			return fmt.Errorf("get listing: %w", err)
		}
		if actor.UserID != listing.OwnerID {
			return ErrNotOwner
		}

		offer, err := r.offers.GetAccepted(ctx, listingID)
		if errors.Is(err, entities.ErrDeliveryOfferNotFound) {
			return ErrNotDelivered
		}
		if err != nil {
			return fmt.Errorf("get accepted offer: %w", err)
		}
		if offer.Checkpoint != entities.CheckpointDelivered {
			return ErrNotDelivered
		}

		_, err = r.repository.GetByListing(ctx, listingID)
		switch {
		case err == nil:
			return ErrAlreadyRated
		case !errors.Is(err, entities.ErrRatingNotFound):
			return fmt.Errorf("get rating: %w", err)
		}

		now := r.clock.Now()
		created, err = r.repository.Create(ctx, entities.Rating{
			ID:        uuid.NewString(),
			ListingID: listingID,
			FarmerID:  actor.UserID,
			PartnerID: offer.PartnerID,
			Score:     score,
			Comment:   comment,
			CreatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("create rating: %w", err)
		}

		_, err = r.repository.IncrementPartnerRating(ctx, offer.PartnerID, score, now)
		if err != nil {
			return fmt.Errorf("update partner rating: %w", err)
		}

		_, err = r.listings.Update(ctx, entities.ListingModify{
			ID:              listing.ID,
			ExpectedVersion: listing.Version,
			UpdatedAt:       now,
		})
		if err != nil {
			return fmt.Errorf("update listing: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.notifier.Notify(ctx, entities.TransitionEvent{
		Kind:       entities.TransitionRatingSubmitted,
		ListingID:  listingID,
		ActorID:    actor.UserID,
		Recipients: []string{created.PartnerID},
		OccurredAt: r.clock.Now(),
	})

	return created, nil
}

func (r *Rating) GetPartnerRating(ctx context.Context, partnerID string) (*entities.PartnerRating, error) {
	if !isValidID(partnerID) {
		return nil, ErrInvalidPartnerID
	}

	aggregate, err := r.repository.GetPartnerRating(ctx, partnerID)
	if errors.Is(err, entities.ErrRatingNotFound) {
		return &entities.PartnerRating{PartnerID: partnerID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get partner rating: %w", err)
	}
	return aggregate, nil
}
