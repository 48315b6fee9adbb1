package bundlequeue

import (
	"context"
	"sync"

	"pawcare-service/internal/pkg/constvars"
	"pawcare-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	// Encoded bundles land here for downstream interoperability sync.
	SyncQueueName       = "fhir_bundle_sync_queue"
	DeadLetterQueueName = "fhir_bundle_sync_dlq"
)

// BundleQueueMessage is the payload stored in RabbitMQ.
type BundleQueueMessage struct {
	ID           string          `json:"id"`
	ResourceType string          `json:"resource_type"`
	Body         json.RawMessage `json:"body"`
}

// Service publishes encoded FHIR payloads to the sync queue with
// persistence and publisher confirms.
type Service struct {
	ch       *amqp.Channel
	log      *zap.Logger
	confirms chan amqp.Confirmation
	mu       sync.Mutex
}

// NewService declares the durable queues, enables confirms, and returns the
// publisher.
func NewService(conn *amqp.Connection, log *zap.Logger) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	for _, queueName := range []string{SyncQueueName, DeadLetterQueueName} {
		if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
			return nil, err
		}
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &Service{
		ch:       ch,
		log:      log,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}, nil
}

// PublishBundle marshals the payload and publishes it to the sync queue,
// waiting for the broker confirm.
func (s *Service) PublishBundle(ctx context.Context, resourceType string, payload interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("BundleQueue.PublishBundle called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceTypeKey, resourceType),
	)

	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	message, err := json.Marshal(BundleQueueMessage{
		ID:           uuid.NewString(),
		ResourceType: resourceType,
		Body:         body,
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	publishing := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         message,
		DeliveryMode: amqp.Persistent,
	}
	if err := s.ch.PublishWithContext(ctx, "", SyncQueueName, false, false, publishing); err != nil {
		return exceptions.ErrQueuePublish(err, SyncQueueName)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrQueuePublishNotConfirmed(SyncQueueName)
		}
	case <-ctx.Done():
		return exceptions.ErrQueuePublish(ctx.Err(), SyncQueueName)
	}
	return nil
}
