package payment

import (
	"fmt"

	"marketplace/internal/entities"
)

var ErrPaymentNotFound = fmt.Errorf("%w: payment not found", entities.ErrValidation)
