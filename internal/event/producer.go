package event

import (
	"context"
	"fmt"
	"log/slog"

	pkgkafka "github.com/sakethreddy10/Mock-E-Commerce-Cart/pkg/kafka"

	"github.com/sakethreddy10/Mock-E-Commerce-Cart/internal/domain"
)

// Kafka topics for shop domain events.
const (
	TopicCartUpdated       = "shop.cart.updated"
	TopicCartCleared       = "shop.cart.cleared"
	TopicCheckoutCompleted = "shop.checkout.completed"
)

// Aggregate and source identifiers stamped on every event.
const (
	AggregateTypeCart     = "cart"
	AggregateTypeCheckout = "checkout"
	SourceShopAPI         = "shop-api"
)

// The cart is process-wide, so cart events all share one aggregate ID.
const cartAggregateID = "cart"

// CartUpdatedData is the payload for a cart.updated event.
type CartUpdatedData struct {
	EntryID   string `json:"entry_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Merged    bool   `json:"merged"`
}

// CheckoutCompletedData is the payload for a checkout.completed event.
type CheckoutCompletedData struct {
	ReceiptID     string  `json:"receipt_id"`
	CustomerEmail string  `json:"customer_email"`
	ItemCount     int     `json:"item_count"`
	Total         float64 `json:"total"`
}

// Producer publishes shop domain events to Kafka. A nil kafka producer
// disables publishing entirely, which is the default when no brokers are
// configured; every Publish* method is then a no-op.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer. Pass a nil kafka producer to
// disable event publishing.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// Enabled reports whether events are actually published.
func (p *Producer) Enabled() bool {
	return p.kafka != nil
}

// PublishCartUpdated publishes a cart.updated event.
func (p *Producer) PublishCartUpdated(ctx context.Context, entry *domain.CartEntry, merged bool) error {
	if p.kafka == nil {
		return nil
	}

	data := CartUpdatedData{
		EntryID:   entry.ID,
		ProductID: entry.ProductID,
		Quantity:  entry.Quantity,
		Merged:    merged,
	}

	event, err := pkgkafka.NewEvent(TopicCartUpdated, cartAggregateID, AggregateTypeCart, SourceShopAPI, data)
	if err != nil {
		return fmt.Errorf("create cart.updated event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCartUpdated, event); err != nil {
		return fmt.Errorf("publish cart.updated event: %w", err)
	}

	p.logger.DebugContext(ctx, "published cart.updated event",
		slog.String("entry_id", entry.ID),
		slog.String("product_id", entry.ProductID),
	)

	return nil
}

// PublishCartCleared publishes a cart.cleared event.
func (p *Producer) PublishCartCleared(ctx context.Context) error {
	if p.kafka == nil {
		return nil
	}

	event, err := pkgkafka.NewEvent(TopicCartCleared, cartAggregateID, AggregateTypeCart, SourceShopAPI, struct{}{})
	if err != nil {
		return fmt.Errorf("create cart.cleared event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCartCleared, event); err != nil {
		return fmt.Errorf("publish cart.cleared event: %w", err)
	}

	return nil
}

// PublishCheckoutCompleted publishes a checkout.completed event.
func (p *Producer) PublishCheckoutCompleted(ctx context.Context, receipt *domain.Receipt) error {
	if p.kafka == nil {
		return nil
	}

	data := CheckoutCompletedData{
		ReceiptID:     receipt.ID,
		CustomerEmail: receipt.CustomerInfo.Email,
		ItemCount:     len(receipt.Items),
		Total:         receipt.Total(),
	}

	event, err := pkgkafka.NewEvent(TopicCheckoutCompleted, receipt.ID, AggregateTypeCheckout, SourceShopAPI, data)
	if err != nil {
		return fmt.Errorf("create checkout.completed event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCheckoutCompleted, event); err != nil {
		return fmt.Errorf("publish checkout.completed event: %w", err)
	}

	p.logger.DebugContext(ctx, "published checkout.completed event",
		slog.String("receipt_id", receipt.ID),
	)

	return nil
}
