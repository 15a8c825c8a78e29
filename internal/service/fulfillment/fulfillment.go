package fulfillment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/entities"
)

// Fulfillment ведёт принятый оффер по строгой цепочке чекпоинтов.
type Fulfillment struct {
	listings  ListingRepository
	offers    OfferRepository
	tracking  TrackingRepository
	txManager TxManager
	clock     Clock
	notifier  Notifier
}

func New(
	listings ListingRepository,
	offers OfferRepository,
	tracking TrackingRepository,
	txManager TxManager,
	clock Clock,
	notifier Notifier,
) *Fulfillment {
	return &Fulfillment{
		listings:  listings,
		offers:    offers,
		tracking:  tracking,
		txManager: txManager,
		clock:     clock,
		notifier:  notifier,
	}
}

func (f *Fulfillment) AdvanceCheckpoint(ctx context.Context, actor entities.Actor, listingID, checkpointName string) ([]entities.CheckpointStatus, error) {
	if strings.TrimSpace(listingID) == "" {
		return nil, ErrInvalidListingID
	}
	target, ok := entities.ParseCheckpoint(checkpointName)
	if !ok || target == entities.CheckpointCreated {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCheckpoint, checkpointName)
	}

	var (
		listing *entities.Listing
		events  []entities.TrackingEvent
	)
	err := f.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		listing, err = f.listings.GetByID(ctx, listingID)
		if err != nil {
			return fmt.Errorf("get listing: %w", err)
		}

		offer, err := f.offers.GetAccepted(ctx, listingID)
		if errors.Is(err, entities.ErrDeliveryOfferNotFound) {
			return ErrNoAcceptedOffer
		}
		if err != nil {
			return fmt.Errorf("get accepted offer: %w", err)
		}
		if actor.UserID != offer.PartnerID {
			return ErrNotAcceptedPartner
		}

		next, ok := offer.Checkpoint.Next()
		if !ok || target != next {
			return fmt.Errorf("%w: current %s, requested %s", ErrCheckpointOutOfOrder, offer.Checkpoint, target)
		}

		now := f.clock.Now()
		_, err = f.offers.AdvanceCheckpoint(ctx, offer.ID, offer.Checkpoint, target)
		if err != nil {
			return fmt.Errorf("advance checkpoint: %w", err)
		}

		err = f.tracking.Record(ctx, entities.TrackingEvent{
			OfferID:    offer.ID,
			Checkpoint: target,
			ReachedAt:  now,
		})
		if err != nil {
			return fmt.Errorf("record tracking event: %w", err)
		}

		modify := entities.ListingModify{
			ID:              listing.ID,
			ExpectedVersion: listing.Version,
			UpdatedAt:       now,
		}
		if target == entities.CheckpointDelivered {
			fulfilled := entities.ListingFulfilled
			modify.Status = &fulfilled
		}
		listing, err = f.listings.Update(ctx, modify)
		if err != nil {
			return fmt.Errorf("update listing: %w", err)
		}

		events, err = f.tracking.ListByOffer(ctx, offer.ID)
		if err != nil {
			return fmt.Errorf("list tracking events: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	recipients := []string{listing.OwnerID}
	if listing.Award != nil {
		recipients = append(recipients, listing.Award.BuyerID)
	}
	f.notifier.Notify(ctx, entities.TransitionEvent{
		Kind:       entities.TransitionCheckpointAdvanced,
		ListingID:  listing.ID,
		ActorID:    actor.UserID,
		Recipients: recipients,
		ItemName:   listing.ItemName,
		Checkpoint: &target,
		OccurredAt: f.clock.Now(),
	})

	return entities.BuildTrackingStatus(target, events), nil
}

// GetTrackingStatus отдаёт шесть флагов; без принятого оффера все false.
func (f *Fulfillment) GetTrackingStatus(ctx context.Context, listingID string) ([]entities.CheckpointStatus, error) {
	if strings.TrimSpace(listingID) == "" {
		return nil, ErrInvalidListingID
	}

	_, err := f.listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}

	offer, err := f.offers.GetAccepted(ctx, listingID)
	if errors.Is(err, entities.ErrDeliveryOfferNotFound) {
		return entities.BuildTrackingStatus(entities.CheckpointCreated, nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get accepted offer: %w", err)
	}

	events, err := f.tracking.ListByOffer(ctx, offer.ID)
	if err != nil {
		return nil, fmt.Errorf("list tracking events: %w", err)
	}
	return entities.BuildTrackingStatus(offer.Checkpoint, events), nil
}
