package delivery

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"marketplace/internal/entities"
)

type Delivery struct {
	listings   ListingRepository
	repository Repository
	txManager  TxManager
	clock      Clock
	notifier   Notifier
}

func New(
	listings ListingRepository,
	repository Repository,
	txManager TxManager,
	clock Clock,
	notifier Notifier,
) *Delivery {
	return &Delivery{
		listings:   listings,
		repository: repository,
		txManager:  txManager,
		clock:      clock,
		notifier:   notifier,
	}
}

func (d *Delivery) SubmitDeliveryOffer(ctx context.Context, actor entities.Actor, listingID string, amount decimal.Decimal) (*entities.DeliveryOffer, error) {
	if actor.Role != entities.RoleDeliveryPartner {
		return nil, ErrNotDeliveryPartner
	}
	if !isValidID(listingID) {
		return nil, ErrInvalidListingID
	}
	if !entities.IsValidMoney(amount) {
		return nil, ErrInvalidAmount
	}

	listing, err := d.listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	if listing.Status != entities.ListingAwarded {
		return nil, ErrNotAwarded
	}

	offer, err := d.repository.Create(ctx, entities.DeliveryOffer{
		ID:         uuid.NewString(),
		ListingID:  listingID,
		PartnerID:  actor.UserID,
		Amount:     amount,
		CreatedAt:  d.clock.Now(),
		Checkpoint: entities.CheckpointCreated,
	})
	if errors.Is(err, entities.ErrListingNotAwarded) {
		return nil, ErrNotAwarded
	}
	if err != nil {
		return nil, fmt.Errorf("create delivery offer: %w", err)
	}
	return offer, nil
}

// AcceptDeliveryOffer закрепляет доставку за одним партнёром.
// Остальные офферы листинга остаются в хранилище, но принять их уже нельзя.
func (d *Delivery) AcceptDeliveryOffer(ctx context.Context, actor entities.Actor, listingID, offerID string) (*entities.DeliveryOffer, error) {
	if !isValidID(listingID) {
		return nil, ErrInvalidListingID
	}
	if !isValidID(offerID) {
		return nil, ErrInvalidOfferID
	}

	var (
		accepted *entities.DeliveryOffer
		listing  *entities.Listing
	)
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		listing, err = d.listings.GetByID(ctx, listingID)
		if err != nil {
			return fmt.Errorf("get listing: %w", err)
		}
		if actor.UserID != listing.OwnerID {
			return ErrNotOwner
		}
		if listing.Status != entities.ListingAwarded {
			return ErrNotAwarded
		}

		existing, err := d.repository.GetAccepted(ctx, listingID)
		if err != nil && !errors.Is(err, entities.ErrDeliveryOfferNotFound) {
			return fmt.Errorf("get accepted offer: %w", err)
		}

		offer, err := d.repository.GetByID(ctx, offerID)
		if err != nil {
			return fmt.Errorf("get delivery offer: %w", err)
		}
		if offer.ListingID != listingID {
			return fmt.Errorf("offer %s on listing %s: %w", offerID, listingID, entities.ErrDeliveryOfferNotFound)
		}
		if !offer.Eligible(existing != nil) {
			return ErrDeliveryAlreadyAccepted
		}

		now := d.clock.Now()
		accepted, err = d.repository.Accept(ctx, offerID, now)
		if err != nil {
			return fmt.Errorf("accept delivery offer: %w", err)
		}

		listing, err = d.listings.Update(ctx, entities.ListingModify{
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

	recipients := []string{accepted.PartnerID}
	if listing.Award != nil {
		recipients = append(recipients, listing.Award.BuyerID)
	}
	d.notifier.Notify(ctx, entities.TransitionEvent{
		Kind:       entities.TransitionDeliveryOfferAccepted,
		ListingID:  listing.ID,
		ActorID:    actor.UserID,
		Recipients: recipients,
		ItemName:   listing.ItemName,
		OccurredAt: d.clock.Now(),
	})

	return accepted, nil
}

func (d *Delivery) ListDeliveryOffers(ctx context.Context, actor entities.Actor, listingID string) ([]entities.DeliveryOffer, error) {
	if !isValidID(listingID) {
		return nil, ErrInvalidListingID
	}

	listing, err := d.listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	if !isOwnerOrAdmin(actor, listing) {
		return nil, ErrNotOwner
	}

	offers, err := d.repository.ListByListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("list delivery offers: %w", err)
	}
	return offers, nil
}
