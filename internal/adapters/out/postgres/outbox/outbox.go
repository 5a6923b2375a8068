// Package outbox stores domain events in the "outbox_events" table next to the
// aggregates that raised them. A relay drains pending rows later.
package outbox

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventDTO is one outbox row. DispatchedAt stays nil until a relay hands the event on.
type EventDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Kind         string     `gorm:"type:varchar(32);not null"`
	AggregateID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	OccurredAt   time.Time  `gorm:"type:timestamptz;not null"`
	Payload      string     `gorm:"type:jsonb;not null"`
	CreatedAt    time.Time  `gorm:"type:timestamptz;not null;autoCreateTime"`
	DispatchedAt *time.Time `gorm:"type:timestamptz;index"`
}

func (EventDTO) TableName() string {
	return "outbox_events"
}

// Envelope converts the row back into the wire form of the event.
func (dto EventDTO) Envelope() events.Envelope {
	return events.Envelope{
		Kind:        events.Kind(dto.Kind),
		AggregateID: dto.AggregateID.String(),
		OccurredAt:  dto.OccurredAt.UTC(),
		Payload:     []byte(dto.Payload),
	}
}

// GormOutbox implements ports.EventPublisher by appending to the outbox table.
type GormOutbox struct {
	db *gorm.DB
}

func NewGormOutbox(db *gorm.DB) *GormOutbox {
	return &GormOutbox{db: db}
}

func (o *GormOutbox) Publish(ctx context.Context, event events.Event) error {
	env, err := events.Wrap(event)
	if err != nil {
		return errs.NewRepositoryError("encode "+string(event.Kind()), err)
	}

	dto := EventDTO{
		ID:          uuid.New(),
		Kind:        string(env.Kind),
		AggregateID: event.AggregateID().UUID(),
		OccurredAt:  env.OccurredAt,
		Payload:     string(env.Payload),
	}
	if err := o.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewRepositoryError("publish "+string(event.Kind()), err)
	}
	return nil
}

// Pending returns up to limit undispatched rows in insertion order.
func (o *GormOutbox) Pending(ctx context.Context, limit int) ([]EventDTO, error) {
	var dtos []EventDTO
	if err := o.db.WithContext(ctx).
		Where("dispatched_at IS NULL").
		Order("created_at, id").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, errs.NewRepositoryError("read outbox", err)
	}
	return dtos, nil
}

// MarkDispatched stamps the given rows so Pending no longer returns them.
func (o *GormOutbox) MarkDispatched(ctx context.Context, ids []uuid.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	if err := o.db.WithContext(ctx).
		Model(&EventDTO{}).
		Where("id IN ?", ids).
		Update("dispatched_at", at).Error; err != nil {
		return errs.NewRepositoryError("mark outbox dispatched", err)
	}
	return nil
}
