package listing

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"marketplace/internal/entities"
)

// PlaceBid добавляет ставку. Окно торгов проверяется лениво, в момент ставки.
func (s *Service) PlaceBid(ctx context.Context, actor entities.Actor, listingID string, amount decimal.Decimal) (*entities.Bid, error) {
	if actor.Role != entities.RoleBuyer {
		return nil, ErrNotBuyer
	}
	if !isValidID(listingID) {
		return nil, ErrInvalidListingID
	}
	if !entities.IsValidMoney(amount) {
		return nil, ErrInvalidAmount
	}

	now := s.clock.Now()

	var bid *entities.Bid
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		listing, err := s.repository.GetByID(ctx, listingID)
		if err != nil {
			return fmt.Errorf("get listing: %w", err)
		}

		if err := checkOpenForAward(listing); err != nil {
			return err
		}
		if listing.BiddingClosedAt(now) {
			return ErrBiddingEnded
		}

		// Хранилище повторно проверяет статус листинга в момент вставки.
		bid, err = s.bidRepository.Create(ctx, entities.Bid{
			ID:        uuid.NewString(),
			ListingID: listingID,
			BuyerID:   actor.UserID,
			Amount:    amount,
			CreatedAt: now,
		})
		if errors.Is(err, entities.ErrListingClosedForBids) {
			return ErrNotOpen
		}
		if err != nil {
			return fmt.Errorf("create bid: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bid, nil
}

// ListListingBids отдаёт ставки по убыванию суммы, при равенстве по времени.
func (s *Service) ListListingBids(ctx context.Context, actor entities.Actor, listingID string) ([]entities.Bid, error) {
	if !isValidID(listingID) {
		return nil, ErrInvalidListingID
	}

	listing, err := s.repository.GetByID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	if !isOwner(actor, listing) && !actor.IsAdmin() {
		return nil, ErrBidsHidden
	}

	bids, err := s.bidRepository.ListByListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("list bids: %w", err)
	}
	return bids, nil
}

// AcceptBid назначает ставку победителем: в одной транзакции пишет награду,
// удаляет все остальные ставки и переводит листинг в awarded.
func (s *Service) AcceptBid(ctx context.Context, actor entities.Actor, listingID, bidID string) (*entities.Listing, error) {
	if !isValidID(listingID) {
		return nil, ErrInvalidListingID
	}
	if !isValidID(bidID) {
		return nil, ErrInvalidBidID
	}

	var (
		updated *entities.Listing
		winner  string
		losers  []string
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		listing, err := s.repository.GetByID(ctx, listingID)
		if err != nil {
			return fmt.Errorf("get listing: %w", err)
		}

		if !isOwner(actor, listing) {
			return ErrNotOwner
		}
		if err := checkOpenForAward(listing); err != nil {
			return err
		}

		bid, err := s.bidRepository.GetByID(ctx, bidID)
		if err != nil {
			return fmt.Errorf("get bid: %w", err)
		}
		if bid.ListingID != listingID {
			return fmt.Errorf("bid %s on listing %s: %w", bidID, listingID, entities.ErrBidNotFound)
		}

		bids, err := s.bidRepository.ListByListing(ctx, listingID)
		if err != nil {
			return fmt.Errorf("list bids: %w", err)
		}
		winner = bid.BuyerID
		losers = buyersOf(bids, winner)

		now := s.clock.Now()
		awarded := entities.ListingAwarded
		updated, err = s.repository.Update(ctx, entities.ListingModify{
			ID:              listing.ID,
			ExpectedVersion: listing.Version,
			Status:          &awarded,
			Award: &entities.Award{
				Kind:      entities.AwardKindBid,
				BidID:     &bid.ID,
				BuyerID:   bid.BuyerID,
				Amount:    bid.Amount,
				AwardedAt: now,
			},
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("update listing: %w", err)
		}

		_, err = s.bidRepository.DeleteOthers(ctx, listingID, bid.ID)
		if err != nil {
			return fmt.Errorf("delete losing bids: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, entities.TransitionBidAccepted, updated, actor.UserID, []string{winner})
	s.notify(ctx, entities.TransitionBidDeclined, updated, actor.UserID, losers)
	return updated, nil
}

// DeclineBid удаляет ровно одну ставку. Статус листинга не меняется.
func (s *Service) DeclineBid(ctx context.Context, actor entities.Actor, listingID, bidID string) error {
	if !isValidID(listingID) {
		return ErrInvalidListingID
	}
	if !isValidID(bidID) {
		return ErrInvalidBidID
	}

	var (
		listing *entities.Listing
		buyer   string
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		listing, err = s.repository.GetByID(ctx, listingID)
		if err != nil {
			return fmt.Errorf("get listing: %w", err)
		}

		if !isOwner(actor, listing) {
			return ErrNotOwner
		}

		bid, err := s.bidRepository.GetByID(ctx, bidID)
		if err != nil {
			return fmt.Errorf("get bid: %w", err)
		}
		if bid.ListingID != listingID {
			return fmt.Errorf("bid %s on listing %s: %w", bidID, listingID, entities.ErrBidNotFound)
		}
		if listing.Award != nil && listing.Award.BidID != nil && *listing.Award.BidID == bidID {
			return ErrBidAwarded
		}
		buyer = bid.BuyerID

		err = s.bidRepository.Delete(ctx, bidID)
		if err != nil {
			return fmt.Errorf("delete bid: %w", err)
		}

		_, err = s.repository.Update(ctx, entities.ListingModify{
			ID:              listing.ID,
			ExpectedVersion: listing.Version,
			UpdatedAt:       s.clock.Now(),
		})
		if err != nil {
			return fmt.Errorf("update listing: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notify(ctx, entities.TransitionBidDeclined, listing, actor.UserID, []string{buyer})
	return nil
}
