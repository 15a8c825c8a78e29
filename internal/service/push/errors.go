package push

import (
	"errors"
	"fmt"

	"marketplace/internal/entities"
)

var (
	ErrUnknownEventKind = errors.New("unknown transition event kind")
	ErrInvalidEvent     = fmt.Errorf("%w: transition event requires listing id and kind", entities.ErrValidation)
)
