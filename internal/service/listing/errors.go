package listing

import (
	"fmt"

	"marketplace/internal/entities"
)

var (
	ErrInvalidListingID  = fmt.Errorf("%w: invalid listing id", entities.ErrValidation)
	ErrInvalidBidID      = fmt.Errorf("%w: invalid bid id", entities.ErrValidation)
	ErrInvalidItemName   = fmt.Errorf("%w: item name is required", entities.ErrValidation)
	ErrInvalidQuantity   = fmt.Errorf("%w: quantity must be positive", entities.ErrValidation)
	ErrInvalidBasePrice  = fmt.Errorf("%w: base price must be positive with at most two decimal places and below 1e12", entities.ErrValidation)
	ErrInvalidAmount     = fmt.Errorf("%w: bid amount must be positive with at most two decimal places and below 1e12", entities.ErrValidation)
	ErrBiddingStartPast  = fmt.Errorf("%w: bidding start is in the past", entities.ErrValidation)
	ErrInvalidBiddingEnd = fmt.Errorf("%w: bidding end must be in the future and after bidding start", entities.ErrValidation)
	ErrTooManyImages     = fmt.Errorf("%w: too many images", entities.ErrValidation)

	ErrNotFarmer    = fmt.Errorf("%w: only farmers can create listings", entities.ErrAuthorization)
	ErrNotBuyer     = fmt.Errorf("%w: only buyers can place bids", entities.ErrAuthorization)
	ErrNotOwner     = fmt.Errorf("%w: requestor is not the listing owner", entities.ErrAuthorization)
	ErrBidsHidden   = fmt.Errorf("%w: bids are visible to the owner only", entities.ErrAuthorization)
	ErrNotOpen      = fmt.Errorf("%w: listing is not open", entities.ErrInvalidState)
	ErrAlreadyAward = fmt.Errorf("%w: listing already has an award", entities.ErrInvalidState)
	ErrBiddingEnded = fmt.Errorf("%w: bidding window is closed", entities.ErrInvalidState)
	ErrBidAwarded   = fmt.Errorf("%w: bid is awarded and cannot be declined", entities.ErrInvalidState)
	ErrReferenced   = entities.ErrListingReferenced
)
