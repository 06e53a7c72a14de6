package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/TemirB/bakeflow-admin/internal/domain"
)

// BatchEvent is one detected batch of new orders as it travels on the topic.
type BatchEvent struct {
	ID            string                `json:"id"`
	PublishedAt   time.Time             `json:"published_at"`
	Notifications []domain.Notification `json:"notifications"`
}

func NewBatchEvent(batch []domain.Notification, now time.Time) BatchEvent {
	return BatchEvent{
		ID:            uuid.NewString(),
		PublishedAt:   now.UTC(),
		Notifications: batch,
	}
}

func DecodeBatchEvent(data []byte) (BatchEvent, error) {
	var ev BatchEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return BatchEvent{}, err
	}
	if _, err := uuid.Parse(ev.ID); err != nil {
		return BatchEvent{}, fmt.Errorf("event id: %w", err)
	}
	if len(ev.Notifications) == 0 {
		return BatchEvent{}, fmt.Errorf("event %s carries no notifications", ev.ID)
	}
	return ev, nil
}
