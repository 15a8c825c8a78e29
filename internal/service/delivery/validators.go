package delivery

import (
	"strings"

	"marketplace/internal/entities"
)

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isOwnerOrAdmin(actor entities.Actor, listing *entities.Listing) bool {
	return actor.IsAdmin() || actor.UserID == listing.OwnerID
}
