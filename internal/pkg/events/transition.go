package events

import (
	"encoding/json"
	"fmt"
	"time"

	"marketplace/internal/entities"
)

// transitionMessage: JSON-представление TransitionEvent в топике.
type transitionMessage struct {
	Kind       string    `json:"kind"`
	ListingID  string    `json:"listing_id"`
	ActorID    string    `json:"actor_id"`
	Recipients []string  `json:"recipients"`
	ItemName   string    `json:"item_name,omitempty"`
	Checkpoint *string   `json:"checkpoint,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func MarshalTransition(event entities.TransitionEvent) ([]byte, error) {
	msg := transitionMessage{
		Kind:       event.Kind.String(),
		ListingID:  event.ListingID,
		ActorID:    event.ActorID,
		Recipients: event.Recipients,
		ItemName:   event.ItemName,
		OccurredAt: event.OccurredAt.UTC(),
	}
	if event.Checkpoint != nil {
		name := event.Checkpoint.String()
		msg.Checkpoint = &name
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal transition event: %w", err)
	}
	return data, nil
}

func UnmarshalTransition(data []byte) (entities.TransitionEvent, error) {
	var msg transitionMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return entities.TransitionEvent{}, fmt.Errorf("unmarshal transition event: %w", err)
	}

	event := entities.TransitionEvent{
		Kind:       entities.TransitionKind(msg.Kind),
		ListingID:  msg.ListingID,
		ActorID:    msg.ActorID,
		Recipients: msg.Recipients,
		ItemName:   msg.ItemName,
		OccurredAt: msg.OccurredAt,
	}
	if msg.Checkpoint != nil {
		checkpoint, ok := entities.ParseCheckpoint(*msg.Checkpoint)
		if !ok {
			return entities.TransitionEvent{}, fmt.Errorf("unmarshal transition event: unknown checkpoint %q", *msg.Checkpoint)
		}
		event.Checkpoint = &checkpoint
	}
	return event, nil
}
