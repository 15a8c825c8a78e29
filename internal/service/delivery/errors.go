package delivery

import (
	"fmt"

	"marketplace/internal/entities"
)

var (
	ErrInvalidListingID = fmt.Errorf("%w: invalid listing id", entities.ErrValidation)
	ErrInvalidOfferID   = fmt.Errorf("%w: invalid delivery offer id", entities.ErrValidation)
	ErrInvalidAmount    = fmt.Errorf("%w: amount must be positive with at most two decimal places and below 1e12", entities.ErrValidation)

	ErrNotDeliveryPartner = fmt.Errorf("%w: only delivery partners can submit offers", entities.ErrAuthorization)
	ErrNotOwner           = fmt.Errorf("%w: requestor is not the listing owner", entities.ErrAuthorization)

	ErrNotAwarded              = fmt.Errorf("%w: listing is not awarded", entities.ErrInvalidState)
	ErrDeliveryAlreadyAccepted = fmt.Errorf("%w: delivery offer already accepted for listing", entities.ErrInvalidState)
)
