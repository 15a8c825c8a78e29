package listing

import (
	"strings"
	"time"

	"marketplace/internal/entities"
)

const (
	maxItemNameLength = 200
	maxImages         = 10

	// Допустимое отставание часов клиента для начала торгов.
	biddingStartSkew = time.Minute
)

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func validateCreate(create entities.ListingCreate) error {
	name := strings.TrimSpace(create.ItemName)
	if name == "" || len([]rune(name)) > maxItemNameLength {
		return ErrInvalidItemName
	}
	if create.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if !entities.IsValidMoney(create.BasePrice) {
		return ErrInvalidBasePrice
	}
	if len(create.Images) > maxImages {
		return ErrTooManyImages
	}
	return nil
}

func isOwner(actor entities.Actor, listing *entities.Listing) bool {
	return actor.UserID == listing.OwnerID
}

// checkOpenForAward: листинг принимает награду только открытым и без неё.
func checkOpenForAward(listing *entities.Listing) error {
	if listing.Award != nil {
		return ErrAlreadyAward
	}
	if listing.Status != entities.ListingOpen {
		return ErrNotOpen
	}
	return nil
}
