// Package events публикует события об исходе бронирований
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/ChaletBookingService/internal/domain"
)

const (
	TypeReservationConfirmed = "reservation.confirmed"
	TypeReservationFailed    = "reservation.failed"
)

// ReservationEvent сообщение в топик бронирований
type ReservationEvent struct {
	Type          string    `json:"type"`
	ReservationID int64     `json:"reservationId"`
	ChaletID      int64     `json:"chaletId"`
	UserID        int64     `json:"userId"`
	StartDate     string    `json:"startDate"`
	EndDate       string    `json:"endDate"`
	Nights        int       `json:"nights"`
	GuestCount    int       `json:"guestCount"`
	TotalPrice    int64     `json:"totalPrice"`
	Status        string    `json:"status"`
	ExternalID    string    `json:"externalId,omitempty"`
	FailureReason string    `json:"failureReason,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// NewReservationEvent событие по итоговому статусу бронирования
func NewReservationEvent(r *domain.Reservation, occurredAt time.Time) ReservationEvent {
	event := ReservationEvent{
		Type:          TypeReservationFailed,
		ReservationID: r.ID,
		ChaletID:      r.ChaletID,
		UserID:        r.UserID,
		StartDate:     r.StartDate.Format(domain.DateFormat),
		EndDate:       r.EndDate.Format(domain.DateFormat),
		Nights:        r.Nights,
		GuestCount:    r.GuestCount,
		TotalPrice:    r.TotalPrice,
		Status:        string(r.Status),
		OccurredAt:    occurredAt.UTC(),
	}
	if r.Status == domain.ReservationConfirmed {
		event.Type = TypeReservationConfirmed
	}
	if r.ExternalID != nil {
		event.ExternalID = *r.ExternalID
	}
	if r.FailureReason != nil {
		event.FailureReason = *r.FailureReason
	}
	return event
}

// Producer kafka.Producer
type Producer interface {
	Publish(ctx context.Context, topic string, key string, payload []byte, headers map[string]string) error
}

// Publisher публикует события в топик; ключ сообщения - id шале, чтобы сохранить порядок по шале
type Publisher struct {
	producer Producer
	topic    string
}

func NewPublisher(producer Producer, topic string) *Publisher {
	return &Publisher{producer: producer, topic: topic}
}

func (p *Publisher) PublishReservation(ctx context.Context, event ReservationEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("events: encode %s: %w", event.Type, err)
	}

	headers := map[string]string{"event-type": event.Type}
	key := strconv.FormatInt(event.ChaletID, 10)

	if err := p.producer.Publish(ctx, p.topic, key, payload, headers); err != nil {
		return fmt.Errorf("events: publish %s: %w", event.Type, err)
	}
	return nil
}

// NoopPublisher используется, когда kafka выключена
type NoopPublisher struct{}

func (NoopPublisher) PublishReservation(context.Context, ReservationEvent) error { return nil }
