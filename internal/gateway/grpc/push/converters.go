package push

import (
	"google.golang.org/protobuf/types/known/structpb"
	"marketplace/internal/entities"
)

func toProto(message entities.PushMessage) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"recipient_id": message.RecipientID,
		"title":        message.Title,
		"body":         message.Body,
		"data": map[string]any{
			"listing_id": message.ListingID,
			"kind":       message.Kind.String(),
		},
	})
}
