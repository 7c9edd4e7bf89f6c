package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"austino-shop/domain/ports"
	"austino-shop/pkg/logger"
)

// OrderEventPublisher publishes order events to JetStream
type OrderEventPublisher struct {
	client *Client
}

func NewOrderEventPublisher(client *Client) *OrderEventPublisher {
	return &OrderEventPublisher{client: client}
}

// PublishOrderPlaced ส่ง event หลัง order commit - best-effort
// caller เป็นคน log ความล้มเหลว ไม่มี retry ที่ชั้นนี้
func (p *OrderEventPublisher) PublishOrderPlaced(ctx context.Context, event *ports.OrderPlacedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ack, err := p.client.js.Publish(ctx, SubjectOrderPlaced, data)
	if err != nil {
		return fmt.Errorf("failed to publish order event: %w", err)
	}

	logger.InfoContext(ctx, "Order event published to JetStream",
		"order_number", event.OrderNumber,
		"stream", ack.Stream,
		"sequence", ack.Sequence,
	)

	return nil
}

// Verify interface implementation
var _ ports.OrderEventPublisherPort = (*OrderEventPublisher)(nil)
