package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/entities"
)

type Service struct {
	listings  ListingRepository
	bids      BidRepository
	offers    DeliveryOfferRepository
	tracking  TrackingRepository
	ratings   RatingRepository
	payments  PaymentGateway
	txManager TxManager
	clock     Clock
	notifier  Notifier
	// currency: валюта расчётов, в которой должна быть оплата.
	currency  string
}

func New(
	listings ListingRepository,
	bids BidRepository,
	offers DeliveryOfferRepository,
	tracking TrackingRepository,
	ratings RatingRepository,
	payments PaymentGateway,
	txManager TxManager,
	clock Clock,
	notifier Notifier,
	currency string,
) *Service {
	return &Service{
		listings:  listings,
		bids:      bids,
		offers:    offers,
		tracking:  tracking,
		ratings:   ratings,
		payments:  payments,
		txManager: txManager,
		clock:     clock,
		notifier:  notifier,
		currency:  strings.ToUpper(currency),
	}
}

// PurchaseListing покупает лот целиком по базовой цене после подтверждения оплаты.
// Награда пишется так же, как при принятии ставки: одна транзакция, все ставки удаляются.
func (s *Service) PurchaseListing(ctx context.Context, actor entities.Actor, listingID, paymentRef string) (*entities.Order, error) {
	if actor.Role != entities.RoleBuyer {
		return nil, ErrNotBuyer
	}
	if strings.TrimSpace(listingID) == "" {
		return nil, ErrInvalidListingID
	}
	paymentRef = strings.TrimSpace(paymentRef)
	if paymentRef == "" {
		return nil, ErrInvalidPaymentRef
	}

	listing, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	if err := checkPurchasable(listing); err != nil {
		return nil, err
	}

	// шлюз вызываем вне транзакции, чтобы не держать её на сетевом запросе
	payment, err := s.payments.GetPayment(ctx, paymentRef)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	if !payment.Succeeded {
		return nil, ErrPaymentNotConfirmed
	}
	if !strings.EqualFold(payment.Currency, s.currency) {
		return nil, fmt.Errorf("%w: paid in %s, expected %s", ErrPaymentCurrencyMismatch, payment.Currency, s.currency)
	}
	if !payment.Amount.Equal(listing.BasePrice) {
		return nil, fmt.Errorf("%w: paid %s, expected %s", ErrPaymentAmountMismatch, payment.Amount, listing.BasePrice)
	}

	var (
		updated *entities.Listing
		losers  []string
	)
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.listings.GetByID(ctx, listingID)
		if err != nil {
			return fmt.Errorf("get listing: %w", err)
		}
		if err := checkPurchasable(current); err != nil {
			return err
		}
		if !current.BasePrice.Equal(listing.BasePrice) {
			return fmt.Errorf("%w: base price changed", ErrPaymentAmountMismatch)
		}

		bids, err := s.bids.ListByListing(ctx, listingID)
		if err != nil {
			return fmt.Errorf("list bids: %w", err)
		}
		losers = bidders(bids, actor.UserID)

		now := s.clock.Now()
		awarded := entities.ListingAwarded
		updated, err = s.listings.Update(ctx, entities.ListingModify{
			ID:              current.ID,
			ExpectedVersion: current.Version,
			Status:          &awarded,
			Award: &entities.Award{
				Kind:       entities.AwardKindDirectPurchase,
				BuyerID:    actor.UserID,
				Amount:     current.BasePrice,
				PaymentRef: &paymentRef,
				AwardedAt:  now,
			},
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("update listing: %w", err)
		}

		_, err = s.bids.DeleteByListing(ctx, listingID)
		if err != nil {
			return fmt.Errorf("delete bids: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, entities.TransitionListingPurchased, updated, actor.UserID, []string{updated.OwnerID})
	s.notify(ctx, entities.TransitionBidDeclined, updated, actor.UserID, losers)

	return buildOrder(updated, nil, nil, nil), nil
}

// GetOrder собирает единое представление продажи для обоих вариантов награды.
func (s *Service) GetOrder(ctx context.Context, actor entities.Actor, listingID string) (*entities.Order, error) {
	if strings.TrimSpace(listingID) == "" {
		return nil, ErrInvalidListingID
	}

	listing, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	if listing.Award == nil {
		return nil, ErrOrderNotFound
	}

	offer, err := s.offers.GetAccepted(ctx, listingID)
	if err != nil && !errors.Is(err, entities.ErrDeliveryOfferNotFound) {
		return nil, fmt.Errorf("get accepted offer: %w", err)
	}

	if !canReadOrder(actor, listing, offer) {
		return nil, ErrOrderForbidden
	}

	var events []entities.TrackingEvent
	if offer != nil {
		events, err = s.tracking.ListByOffer(ctx, offer.ID)
		if err != nil {
			return nil, fmt.Errorf("list tracking events: %w", err)
		}
	}

	rating, err := s.ratings.GetByListing(ctx, listingID)
	if err != nil && !errors.Is(err, entities.ErrRatingNotFound) {
		return nil, fmt.Errorf("get rating: %w", err)
	}

	return buildOrder(listing, offer, events, rating), nil
}

func checkPurchasable(listing *entities.Listing) error {
	if listing.Award != nil {
		return ErrAlreadyAward
	}
	if listing.Status != entities.ListingOpen {
		return ErrNotOpen
	}
	return nil
}

func canReadOrder(actor entities.Actor, listing *entities.Listing, offer *entities.DeliveryOffer) bool {
	switch {
	case actor.IsAdmin(),
		actor.UserID == listing.OwnerID,
		actor.UserID == listing.Award.BuyerID:
		return true
	case offer != nil && actor.UserID == offer.PartnerID:
		return true
	default:
		return false
	}
}

func buildOrder(listing *entities.Listing, offer *entities.DeliveryOffer, events []entities.TrackingEvent, rating *entities.Rating) *entities.Order {
	order := &entities.Order{
		Kind:          entities.OrderKindFromAward(listing.Award.Kind),
		ListingID:     listing.ID,
		FarmerID:      listing.OwnerID,
		BuyerID:       listing.Award.BuyerID,
		ItemName:      listing.ItemName,
		Quantity:      listing.Quantity,
		Amount:        listing.Award.Amount,
		PaymentRef:    listing.Award.PaymentRef,
		AwardedAt:     listing.Award.AwardedAt,
		Status:        listing.Status,
		DeliveryOffer: offer,
		Rating:        rating,
	}

	current := entities.CheckpointCreated
	if offer != nil {
		current = offer.Checkpoint
	}
	order.Tracking = entities.BuildTrackingStatus(current, events)
	return order
}

func (s *Service) notify(ctx context.Context, kind entities.TransitionKind, listing *entities.Listing, actorID string, recipients []string) {
	if len(recipients) == 0 {
		return
	}
	s.notifier.Notify(ctx, entities.TransitionEvent{
		Kind:       kind,
		ListingID:  listing.ID,
		ActorID:    actorID,
		Recipients: recipients,
		ItemName:   listing.ItemName,
		OccurredAt: s.clock.Now(),
	})
}

func bidders(bids []entities.Bid, exclude string) []string {
	seen := make(map[string]struct{}, len(bids))
	result := make([]string, 0, len(bids))
	for _, bid := range bids {
		if _, ok := seen[bid.BuyerID]; ok || bid.BuyerID == exclude {
			continue
		}
		seen[bid.BuyerID] = struct{}{}
		result = append(result, bid.BuyerID)
	}
	return result
}
