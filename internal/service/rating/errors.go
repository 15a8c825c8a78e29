package rating

import (
	"fmt"

	"marketplace/internal/entities"
)

var (
	ErrInvalidListingID = fmt.Errorf("%w: invalid listing id", entities.ErrValidation)
	ErrInvalidPartnerID = fmt.Errorf("%w: invalid partner id", entities.ErrValidation)
	ErrInvalidScore     = fmt.Errorf("%w: score must be between %d and %d", entities.ErrValidation, entities.MinRatingScore, entities.MaxRatingScore)
	ErrCommentTooLong   = fmt.Errorf("%w: comment is too long", entities.ErrValidation)

	ErrNotOwner = fmt.Errorf("%w: only the listing owner can rate delivery", entities.ErrAuthorization)

	ErrNotDelivered = fmt.Errorf("%w: delivery is not completed", entities.ErrInvalidState)
	ErrAlreadyRated = entities.ErrListingAlreadyRated
)
