package order

import (
	"fmt"

	"marketplace/internal/entities"
)

var (
	ErrInvalidListingID        = fmt.Errorf("%w: invalid listing id", entities.ErrValidation)
	ErrInvalidPaymentRef       = fmt.Errorf("%w: payment reference is required", entities.ErrValidation)
	ErrPaymentNotConfirmed     = fmt.Errorf("%w: payment is not confirmed", entities.ErrValidation)
	ErrPaymentAmountMismatch   = fmt.Errorf("%w: payment amount does not match base price", entities.ErrValidation)
	ErrPaymentCurrencyMismatch = fmt.Errorf("%w: payment currency does not match settlement currency", entities.ErrValidation)

	ErrNotBuyer       = fmt.Errorf("%w: only buyers can purchase listings", entities.ErrAuthorization)
	ErrOrderForbidden = fmt.Errorf("%w: requestor is not a party of the order", entities.ErrAuthorization)

	ErrNotOpen      = fmt.Errorf("%w: listing is not open", entities.ErrInvalidState)
	ErrAlreadyAward = fmt.Errorf("%w: listing already has an award", entities.ErrInvalidState)

	ErrOrderNotFound = fmt.Errorf("%w: listing has no order", entities.ErrNotFound)
)
