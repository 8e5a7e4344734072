package kafka

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Message is a Kafka message plus the headers every Sudagala event carries.
type Message struct {
	Key       string
	Value     []byte
	Headers   map[string]string
	Topic     string
	Timestamp time.Time
}

const (
	HeaderEventID       = "event-id"
	HeaderEventType     = "event-type"
	HeaderSchemaVersion = "schema-version"
	HeaderSource        = "source"
	HeaderOriginalTopic = "original-topic"
)

// NewEvent builds a message carrying a JSON-encoded payload, keyed for
// partition ordering and stamped with a fresh event id.
func NewEvent(eventType, key string, payload any) (Message, error) {
	value, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}

	return Message{
		Key:       key,
		Value:     value,
		Timestamp: time.Now(),
		Headers: map[string]string{
			HeaderEventID:       uuid.NewString(),
			HeaderEventType:     eventType,
			HeaderSchemaVersion: "1",
		},
	}, nil
}

func (m Message) EventID() string {
	return m.Headers[HeaderEventID]
}

func (m Message) EventType() string {
	return m.Headers[HeaderEventType]
}
