package listing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"marketplace/internal/entities"
)

type Service struct {
	repository    Repository
	bidRepository BidRepository
	txManager     TxManager
	clock         Clock
	notifier      Notifier
}

func New(
	repository Repository,
	bidRepository BidRepository,
	txManager TxManager,
	clock Clock,
	notifier Notifier,
) *Service {
	return &Service{
		repository:    repository,
		bidRepository: bidRepository,
		txManager:     txManager,
		clock:         clock,
		notifier:      notifier,
	}
}

func (s *Service) CreateListing(ctx context.Context, actor entities.Actor, create entities.ListingCreate) (*entities.Listing, error) {
	if actor.Role != entities.RoleFarmer {
		return nil, ErrNotFarmer
	}
	if err := validateCreate(create); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	biddingStart := create.BiddingStart
	if biddingStart.IsZero() {
		biddingStart = now
	}
	if biddingStart.Before(now.Add(-biddingStartSkew)) {
		return nil, ErrBiddingStartPast
	}
	if biddingStart.Before(now) {
		biddingStart = now
	}

	images := create.Images
	if images == nil {
		images = []string{}
	}

	listing, err := s.repository.Create(ctx, entities.Listing{
		ID:           uuid.NewString(),
		OwnerID:      actor.UserID,
		ItemName:     create.ItemName,
		Quantity:     create.Quantity,
		BasePrice:    create.BasePrice,
		BiddingStart: biddingStart,
		Images:       images,
		Status:       entities.ListingOpen,
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}
	return listing, nil
}

func (s *Service) GetListing(ctx context.Context, listingID string) (*entities.Listing, error) {
	if !isValidID(listingID) {
		return nil, ErrInvalidListingID
	}

	listing, err := s.repository.GetByID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	return listing, nil
}

// SetBiddingEnd фиксирует конец окна торгов. Допустимо только пока листинг открыт и без награды.
func (s *Service) SetBiddingEnd(ctx context.Context, actor entities.Actor, listingID string, end time.Time) (*entities.Listing, error) {
	if !isValidID(listingID) {
		return nil, ErrInvalidListingID
	}

	var updated *entities.Listing
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

		now := s.clock.Now()
		if !end.After(now) || !end.After(listing.BiddingStart) {
			return ErrInvalidBiddingEnd
		}

		end = end.UTC()
		updated, err = s.repository.Update(ctx, entities.ListingModify{
			ID:              listing.ID,
			ExpectedVersion: listing.Version,
			BiddingEnd:      &end,
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
	return updated, nil
}

// CloseListing снимает открытый листинг с торгов: open -> declined.
func (s *Service) CloseListing(ctx context.Context, actor entities.Actor, listingID string) (*entities.Listing, error) {
	if !isValidID(listingID) {
		return nil, ErrInvalidListingID
	}

	var (
		updated *entities.Listing
		bidders []string
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

		bids, err := s.bidRepository.ListByListing(ctx, listingID)
		if err != nil {
			return fmt.Errorf("list bids: %w", err)
		}
		bidders = buyersOf(bids, "")

		declined := entities.ListingDeclined
		updated, err = s.repository.Update(ctx, entities.ListingModify{
			ID:              listing.ID,
			ExpectedVersion: listing.Version,
			Status:          &declined,
			UpdatedAt:       s.clock.Now(),
		})
		if err != nil {
			return fmt.Errorf("update listing: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, entities.TransitionListingClosed, updated, actor.UserID, bidders)
	return updated, nil
}

// DeleteListing удаляет листинг, на который не ссылается ни одна ставка, оффер или оценка.
func (s *Service) DeleteListing(ctx context.Context, actor entities.Actor, listingID string) error {
	if !isValidID(listingID) {
		return ErrInvalidListingID
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		listing, err := s.repository.GetByID(ctx, listingID)
		if err != nil {
			return fmt.Errorf("get listing: %w", err)
		}

		if !isOwner(actor, listing) && !actor.IsAdmin() {
			return ErrNotOwner
		}

		referenced, err := s.repository.HasReferences(ctx, listingID)
		if err != nil {
			return fmt.Errorf("check listing references: %w", err)
		}
		if referenced {
			return ErrReferenced
		}

		err = s.repository.Delete(ctx, listingID)
		if err != nil {
			return fmt.Errorf("delete listing: %w", err)
		}
		return nil
	})
}

func (s *Service) CountExpiredOpenListings(ctx context.Context) (int64, error) {
	count, err := s.repository.CountExpiredOpen(ctx, s.clock.Now())
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("count expired listings timed out: %w", err)
		}
		return 0, fmt.Errorf("count expired listings: %w", err)
	}
	return count, nil
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

// buyersOf возвращает уникальных покупателей ставок, кроме exclude.
func buyersOf(bids []entities.Bid, exclude string) []string {
	seen := make(map[string]struct{}, len(bids))
	buyers := make([]string, 0, len(bids))
	for _, bid := range bids {
		if bid.BuyerID == exclude {
			continue
		}
		if _, ok := seen[bid.BuyerID]; ok {
			continue
		}
		seen[bid.BuyerID] = struct{}{}
		buyers = append(buyers, bid.BuyerID)
	}
	return buyers
}
