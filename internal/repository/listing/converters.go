package listing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"marketplace/internal/entities"
)

func ToDomain(l *ListingDB) (*entities.Listing, error) {
	if l == nil {
		return nil, nil
	}

	basePrice, err := decimal.NewFromString(l.BasePrice)
	if err != nil {
		return nil, fmt.Errorf("parse base price %q: %w", l.BasePrice, err)
	}

	images := l.Images
	if images == nil {
		images = []string{}
	}

	listing := &entities.Listing{
		ID:           l.ID,
		OwnerID:      l.OwnerID,
		ItemName:     l.ItemName,
		Quantity:     l.Quantity,
		BasePrice:    basePrice,
		BiddingStart: l.BiddingStart.UTC(),
		BiddingEnd:   utcPtr(l.BiddingEnd),
		Images:       images,
		Status:       entities.ListingStatusType(l.Status),
		Version:      l.Version,
		CreatedAt:    l.CreatedAt.UTC(),
		UpdatedAt:    l.UpdatedAt.UTC(),
	}

	if l.AwardKind != nil {
		award, err := awardToDomain(l)
		if err != nil {
			return nil, err
		}
		listing.Award = award
	}

	return listing, nil
}

func awardToDomain(l *ListingDB) (*entities.Award, error) {
	award := &entities.Award{
		Kind:       entities.AwardKind(*l.AwardKind),
		BidID:      l.AwardBidID,
		PaymentRef: l.AwardPaymentRef,
	}
	if l.AwardBuyerID != nil {
		award.BuyerID = *l.AwardBuyerID
	}
	if l.AwardedAt != nil {
		award.AwardedAt = l.AwardedAt.UTC()
	}
	if l.AwardAmount != nil {
		amount, err := decimal.NewFromString(*l.AwardAmount)
		if err != nil {
			return nil, fmt.Errorf("parse award amount %q: %w", *l.AwardAmount, err)
		}
		award.Amount = amount
	}
	return award, nil
}

func FromDomain(listing *entities.Listing) *ListingDB {
	if listing == nil {
		return nil
	}

	l := &ListingDB{
		ID:           listing.ID,
		OwnerID:      listing.OwnerID,
		ItemName:     listing.ItemName,
		Quantity:     listing.Quantity,
		BasePrice:    listing.BasePrice.String(),
		BiddingStart: listing.BiddingStart,
		BiddingEnd:   listing.BiddingEnd,
		Images:       listing.Images,
		Status:       listing.Status.String(),
		Version:      listing.Version,
		CreatedAt:    listing.CreatedAt,
		UpdatedAt:    listing.UpdatedAt,
	}
	if l.Images == nil {
		l.Images = []string{}
	}
	return l
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
