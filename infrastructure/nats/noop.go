package nats

import (
	"context"

	"austino-shop/domain/ports"
	"austino-shop/pkg/logger"
)

// NoopPublisher - publisher ที่ไม่ส่งอะไรเลย ใช้ตอนไม่มี NATS (dev/test)
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (p *NoopPublisher) PublishOrderPlaced(ctx context.Context, event *ports.OrderPlacedEvent) error {
	logger.DebugContext(ctx, "Order event (noop)", "order_number", event.OrderNumber)
	return nil
}

// Verify interface implementation
var _ ports.OrderEventPublisherPort = (*NoopPublisher)(nil)
