package entities

import (
	"errors"
	"fmt"
)

// Категории ошибок. Сервисы оборачивают их своими sentinel-ошибками,
// транспорт мапит категорию в код ответа через errors.Is.
var (
	ErrValidation    = errors.New("validation error")
	ErrAuthorization = errors.New("authorization error")
	ErrInvalidState  = errors.New("invalid state")
	ErrConflict      = errors.New("conflict")
	ErrNotFound      = errors.New("not found")
)

// Ошибки уровня записей, общие для хранилищ.
var (
	ErrListingNotFound       = fmt.Errorf("%w: listing not found", ErrNotFound)
	ErrBidNotFound           = fmt.Errorf("%w: bid not found", ErrNotFound)
	ErrDeliveryOfferNotFound = fmt.Errorf("%w: delivery offer not found", ErrNotFound)
	ErrRatingNotFound        = fmt.Errorf("%w: rating not found", ErrNotFound)

	// Условия, которые хранилище проверяет в момент записи.
	ErrListingReferenced    = fmt.Errorf("%w: listing is referenced by bids, offers or ratings", ErrInvalidState)
	ErrListingClosedForBids = fmt.Errorf("%w: listing no longer accepts bids", ErrInvalidState)
	ErrListingNotAwarded    = fmt.Errorf("%w: listing is not awarded", ErrInvalidState)
	ErrListingAlreadyRated  = fmt.Errorf("%w: listing already rated", ErrInvalidState)

	ErrPaymentAlreadyUsed = fmt.Errorf("%w: payment reference already used", ErrValidation)

	// ErrAcceptedOfferExists: уникальный индекс принятого оффера отклонил вторую запись.
	ErrAcceptedOfferExists = fmt.Errorf("%w: listing already has an accepted delivery offer", ErrConflict)

	// ErrVersionConflict: условная запись не нашла ожидаемую версию листинга.
	ErrVersionConflict = fmt.Errorf("%w: listing was modified concurrently", ErrConflict)
)
