package entities

import "time"

type TransitionKind string

const (
	TransitionBidAccepted           TransitionKind = "bid_accepted"
	TransitionBidDeclined           TransitionKind = "bid_declined"
	TransitionListingPurchased      TransitionKind = "listing_purchased"
	TransitionListingClosed         TransitionKind = "listing_closed"
	TransitionDeliveryOfferAccepted TransitionKind = "delivery_offer_accepted"
	TransitionCheckpointAdvanced    TransitionKind = "checkpoint_advanced"
	TransitionRatingSubmitted       TransitionKind = "rating_submitted"
)

func (k TransitionKind) String() string {
	return string(k)
}

// TransitionEvent публикуется после коммита перехода и доставляется получателям пушем.
type TransitionEvent struct {
	Kind       TransitionKind
	ListingID  string
	ActorID    string
	Recipients []string
	ItemName   string
	Checkpoint *Checkpoint
	OccurredAt time.Time
}

// PushMessage: одно уведомление одному получателю.
type PushMessage struct {
	RecipientID string
	Title       string
	Body        string
	ListingID   string
	Kind        TransitionKind
}
