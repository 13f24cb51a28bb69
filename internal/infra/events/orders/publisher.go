package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
)

// Tipos de eventos de pedido publicados en Kafka
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
	EventOrderCancelled     = "order.cancelled"
)

// Event evento de pedido publicado en Kafka
type Event struct {
	Type          string             `json:"type"`
	OrderID       int64              `json:"orderId"`
	TourID        int64              `json:"tourId"`
	CustomerEmail string             `json:"customerEmail"`
	Status        domain.OrderStatus `json:"status"`
	OccurredAt    time.Time          `json:"occurredAt"`
}

// Publisher publica eventos de pedidos en Kafka. Si está deshabilitado
// en la configuración, todas las operaciones son no-op.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher crea un publicador conectado a los brokers dados
func NewPublisher(brokers []string, topic string) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}

	return &Publisher{writer: writer}
}

// NewDisabledPublisher crea un publicador no-op para entornos sin Kafka
func NewDisabledPublisher() *Publisher {
	return &Publisher{}
}

// PublishCreated publica un evento de pedido creado
func (p *Publisher) PublishCreated(ctx context.Context, order *domain.Order) error {
	return p.publish(ctx, Event{
		Type:          EventOrderCreated,
		OrderID:       order.ID,
		TourID:        order.Tour.TourID,
		CustomerEmail: order.Customer.Email,
		Status:        order.Status,
		OccurredAt:    time.Now().UTC(),
	})
}

// PublishStatusChanged publica un evento de cambio de estado
func (p *Publisher) PublishStatusChanged(ctx context.Context, order *domain.Order) error {
	return p.publish(ctx, Event{
		Type:          EventOrderStatusChanged,
		OrderID:       order.ID,
		TourID:        order.Tour.TourID,
		CustomerEmail: order.Customer.Email,
		Status:        order.Status,
		OccurredAt:    time.Now().UTC(),
	})
}

// PublishCancelled publica un evento de pedido cancelado
func (p *Publisher) PublishCancelled(ctx context.Context, order *domain.Order) error {
	return p.publish(ctx, Event{
		Type:          EventOrderCancelled,
		OrderID:       order.ID,
		TourID:        order.Tour.TourID,
		CustomerEmail: order.Customer.Email,
		Status:        domain.StatusCancelled,
		OccurredAt:    time.Now().UTC(),
	})
}

func (p *Publisher) publish(ctx context.Context, event Event) error {
	if p.writer == nil {
		return nil
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("orders.publisher: publish - marshal event: %v", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.OrderID, 10)),
		Value: value,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("orders.publisher: publish - write message: %v", err)
	}

	return nil
}

// Close cierra la conexión con Kafka
func (p *Publisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
