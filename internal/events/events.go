// Package events carries ledger change notifications to interested observers.
package events

import (
	"encoding/json"
	"time"
)

type Op string

const (
	OpCreated Op = "created"
	OpUpdated Op = "updated"
	OpDeleted Op = "deleted"
)

const (
	EntityAccount     = "account"
	EntityCategory    = "category"
	EntityAllocation  = "allocation"
	EntityTransaction = "transaction"
)

// Event describes one committed ledger mutation. Batch mutations (the payback
// pair) emit one event per affected transaction.
type Event struct {
	Entity    string    `json:"entity"`
	Op        Op        `json:"op"`
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

func New(entity string, op Op, id string) Event {
	return Event{Entity: entity, Op: op, ID: id, Timestamp: time.Now()}
}

func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func FromJSON(data []byte) (Event, error) {
	var e Event
	if err := json.Unmarshal(data, &e); err != nil {
		return Event{}, err
	}
	return e, nil
}
