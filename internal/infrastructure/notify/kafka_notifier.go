package notify

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/tino-ryan/restaurant-app/internal/domain/entities"
	"github.com/tino-ryan/restaurant-app/internal/usecase/interfaces"
)

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
	EventWaiterCalled       = "waiter.called"
	EventTableSettled       = "table.settled"
)

// changeEvent is the envelope every dashboard notification shares. Payload is
// the entity (or partial entity) the event is about.
type changeEvent struct {
	Type      string      `json:"type"`
	Table     string      `json:"table"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// KafkaNotifier publishes change events so dashboard clients can refresh
// without polling the store. One topic, keyed by table, so per-table ordering
// holds within a partition.

type KafkaNotifier struct {
	writer *kafka.Writer
}

var _ interfaces.IChangeNotifier = (*KafkaNotifier)(nil)

func NewKafkaNotifier(brokers []string, topic string) *KafkaNotifier {
	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers: brokers,
		Topic:   topic,
	})
	return &KafkaNotifier{writer: writer}
}

// NewKafkaNotifierFromEnv builds a notifier from KAFKA_BROKERS and
// KAFKA_EVENTS_TOPIC, or returns nil when brokers are not configured so
// callers can run without messaging locally.
func NewKafkaNotifierFromEnv() *KafkaNotifier {
	brokers := strings.TrimSpace(getenv("KAFKA_BROKERS", ""))
	if brokers == "" {
		return nil
	}
	topic := getenv("KAFKA_EVENTS_TOPIC", "restaurant.events")
	log.Printf("[notify] kafka notifier enabled brokers=%s topic=%s", brokers, topic)
	return NewKafkaNotifier(strings.Split(brokers, ","), topic)
}

func (n *KafkaNotifier) OrderCreated(ctx context.Context, o entities.Order) error {
	return n.publish(ctx, changeEvent{
		Type:      EventOrderCreated,
		Table:     o.Table,
		Timestamp: time.Now().UTC(),
		Payload:   o,
	})
}

func (n *KafkaNotifier) OrderStatusChanged(ctx context.Context, orderID string, status entities.OrderStatus) error {
	return n.publish(ctx, changeEvent{
		Type:      EventOrderStatusChanged,
		Timestamp: time.Now().UTC(),
		Payload: map[string]string{
			"orderId": orderID,
			"status":  string(status),
		},
	})
}

func (n *KafkaNotifier) WaiterCalled(ctx context.Context, c entities.WaiterCall) error {
	return n.publish(ctx, changeEvent{
		Type:      EventWaiterCalled,
		Table:     c.Table,
		Timestamp: time.Now().UTC(),
		Payload:   c,
	})
}

func (n *KafkaNotifier) TableSettled(ctx context.Context, f entities.BillingFact) error {
	return n.publish(ctx, changeEvent{
		Type:      EventTableSettled,
		Table:     f.Table,
		Timestamp: time.Now().UTC(),
		Payload:   f,
	})
}

func (n *KafkaNotifier) publish(ctx context.Context, ev changeEvent) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.Table),
		Value: value,
	})
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
