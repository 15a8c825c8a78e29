package entities

import "time"

// Checkpoint: позиция в строгой последовательности доставки.
// CheckpointCreated означает, что оффер принят, но партнёр ещё не выехал.
type Checkpoint int

const (
	CheckpointCreated Checkpoint = iota
	CheckpointEnRouteToFarmer
	CheckpointReachedFarmer
	CheckpointPickedUp
	CheckpointEnRouteToBuyer
	CheckpointReachedBuyer
	CheckpointDelivered
)

var checkpointNames = [...]string{
	CheckpointCreated:         "created",
	CheckpointEnRouteToFarmer: "enRouteToFarmer",
	CheckpointReachedFarmer:   "reachedFarmer",
	CheckpointPickedUp:        "pickedUp",
	CheckpointEnRouteToBuyer:  "enRouteToBuyer",
	CheckpointReachedBuyer:    "reachedBuyer",
	CheckpointDelivered:       "delivered",
}

// TrackedCheckpoints: шесть флагов трекинга в порядке прохождения.
var TrackedCheckpoints = []Checkpoint{
	CheckpointEnRouteToFarmer,
	CheckpointReachedFarmer,
	CheckpointPickedUp,
	CheckpointEnRouteToBuyer,
	CheckpointReachedBuyer,
	CheckpointDelivered,
}

func (c Checkpoint) String() string {
	if c < CheckpointCreated || c > CheckpointDelivered {
		return "unknown"
	}
	return checkpointNames[c]
}

func (c Checkpoint) IsValid() bool {
	return c >= CheckpointCreated && c <= CheckpointDelivered
}

// Next возвращает единственный допустимый следующий чекпоинт.
func (c Checkpoint) Next() (Checkpoint, bool) {
	if c >= CheckpointDelivered || c < CheckpointCreated {
		return c, false
	}
	return c + 1, true
}

func ParseCheckpoint(s string) (Checkpoint, bool) {
	for i, name := range checkpointNames {
		if name == s {
			return Checkpoint(i), true
		}
	}
	return CheckpointCreated, false
}

// TrackingEvent фиксирует момент достижения чекпоинта.
type TrackingEvent struct {
	OfferID    string
	Checkpoint Checkpoint
	ReachedAt  time.Time
}

type CheckpointStatus struct {
	Checkpoint Checkpoint
	Reached    bool
	ReachedAt  *time.Time
}

// BuildTrackingStatus разворачивает текущий чекпоинт в шесть упорядоченных флагов.
func BuildTrackingStatus(current Checkpoint, events []TrackingEvent) []CheckpointStatus {
	reachedAt := make(map[Checkpoint]time.Time, len(events))
	for _, e := range events {
		reachedAt[e.Checkpoint] = e.ReachedAt
	}

	result := make([]CheckpointStatus, 0, len(TrackedCheckpoints))
	for _, c := range TrackedCheckpoints {
		status := CheckpointStatus{
			Checkpoint: c,
			Reached:    c <= current,
		}
		if at, ok := reachedAt[c]; ok && status.Reached {
			status.ReachedAt = &at
		}
		result = append(result, status)
	}
	return result
}
