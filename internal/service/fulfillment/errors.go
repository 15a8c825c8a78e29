package fulfillment

import (
	"fmt"

	"marketplace/internal/entities"
)

var (
	ErrInvalidListingID  = fmt.Errorf("%w: invalid listing id", entities.ErrValidation)
	ErrUnknownCheckpoint = fmt.Errorf("%w: unknown checkpoint", entities.ErrValidation)

	ErrNotAcceptedPartner = fmt.Errorf("%w: requestor is not the accepted delivery partner", entities.ErrAuthorization)

	ErrNoAcceptedOffer      = fmt.Errorf("%w: listing has no accepted delivery offer", entities.ErrInvalidState)
	ErrCheckpointOutOfOrder = fmt.Errorf("%w: checkpoint is not the immediate successor", entities.ErrInvalidState)
)
