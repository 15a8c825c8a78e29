package push_message

import (
	"fmt"

	"marketplace/internal/entities"
	"marketplace/internal/service/push"
)

type MessageFactory struct{}

func New() *MessageFactory {
	return &MessageFactory{}
}

func (f *MessageFactory) GetBuilder(kind entities.TransitionKind) (push.BuildFn, error) {
	switch kind {
	case entities.TransitionBidAccepted:
		return f.bidAccepted, nil
	case entities.TransitionBidDeclined:
		return f.bidDeclined, nil
	case entities.TransitionListingPurchased:
		return f.listingPurchased, nil
	case entities.TransitionListingClosed:
		return f.listingClosed, nil
	case entities.TransitionDeliveryOfferAccepted:
		return f.deliveryOfferAccepted, nil
	case entities.TransitionCheckpointAdvanced:
		return f.checkpointAdvanced, nil
	case entities.TransitionRatingSubmitted:
		return f.ratingSubmitted, nil
	default:
		return nil, fmt.Errorf("%w: %s", push.ErrUnknownEventKind, kind)
	}
}

func (f *MessageFactory) bidAccepted(event entities.TransitionEvent, recipientID string) entities.PushMessage {
	return message(event, recipientID, "Your bid won", fmt.Sprintf("Your bid on %s was accepted.", itemName(event)))
}

func (f *MessageFactory) bidDeclined(event entities.TransitionEvent, recipientID string) entities.PushMessage {
	return message(event, recipientID, "Bid declined", fmt.Sprintf("Your bid on %s was not accepted.", itemName(event)))
}

func (f *MessageFactory) listingPurchased(event entities.TransitionEvent, recipientID string) entities.PushMessage {
	return message(event, recipientID, "Listing sold", fmt.Sprintf("%s was purchased at base price.", itemName(event)))
}

func (f *MessageFactory) listingClosed(event entities.TransitionEvent, recipientID string) entities.PushMessage {
	return message(event, recipientID, "Listing closed", fmt.Sprintf("The farmer closed %s.", itemName(event)))
}

func (f *MessageFactory) deliveryOfferAccepted(event entities.TransitionEvent, recipientID string) entities.PushMessage {
	return message(event, recipientID, "Delivery arranged", fmt.Sprintf("A delivery partner was selected for %s.", itemName(event)))
}

func (f *MessageFactory) checkpointAdvanced(event entities.TransitionEvent, recipientID string) entities.PushMessage {
	checkpoint := "updated"
	if event.Checkpoint != nil {
		checkpoint = event.Checkpoint.String()
	}
	return message(event, recipientID, "Delivery update", fmt.Sprintf("Delivery of %s: %s.", itemName(event), checkpoint))
}

func (f *MessageFactory) ratingSubmitted(event entities.TransitionEvent, recipientID string) entities.PushMessage {
	return message(event, recipientID, "New rating", fmt.Sprintf("You were rated for delivering %s.", itemName(event)))
}

func message(event entities.TransitionEvent, recipientID, title, body string) entities.PushMessage {
	return entities.PushMessage{
		RecipientID: recipientID,
		Title:       title,
		Body:        body,
		ListingID:   event.ListingID,
		Kind:        event.Kind,
	}
}

func itemName(event entities.TransitionEvent) string {
	if event.ItemName == "" {
		return "listing " + event.ListingID
	}
	return event.ItemName
}
