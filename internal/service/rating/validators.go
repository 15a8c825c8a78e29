package rating

import (
	"strings"
	"unicode/utf8"

	"marketplace/internal/entities"
)

const maxCommentLength = 1000

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func validateRating(score int, comment string) error {
	if score < entities.MinRatingScore || score > entities.MaxRatingScore {
		return ErrInvalidScore
	}
	if utf8.RuneCountInString(comment) > maxCommentLength {
		return ErrCommentTooLong
	}
	return nil
}
