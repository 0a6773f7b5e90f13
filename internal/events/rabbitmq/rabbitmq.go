package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/streadway/amqp"

	"github.com/vbonduro/citygrid/internal/events"
)

// channel is the subset of *amqp.Channel the publisher requires.
type channel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher sends import events as JSON messages to a single durable queue
// on the default exchange.
type Publisher struct {
	mu    sync.Mutex
	ch    channel
	conn  *amqp.Connection
	queue string
}

var _ events.Publisher = (*Publisher)(nil)

// Dial connects to the broker at url and declares queue.
func Dial(url, queue string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		if cerr := conn.Close(); cerr != nil {
			return nil, errors.Join(fmt.Errorf("failed to open RabbitMQ channel: %w", err), cerr)
		}
		return nil, fmt.Errorf("failed to open RabbitMQ channel: %w", err)
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare queue %q: %w", queue, err)
	}

	return &Publisher{ch: ch, conn: conn, queue: queue}, nil
}

func (p *Publisher) PublishImportCompleted(ctx context.Context, ev events.ImportCompleted) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal import event: %w", err)
	}

	// amqp channels are not safe for concurrent publishing.
	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.Publish("", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    ev.At,
		Type:         "import.completed",
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish message to RabbitMQ: %w", err)
	}
	return nil
}

// Close closes the channel and then the connection.
func (p *Publisher) Close() error {
	var errs []error
	if err := p.ch.Close(); err != nil {
		errs = append(errs, fmt.Errorf("error closing RabbitMQ channel: %w", err))
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing RabbitMQ connection: %w", err))
		}
	}
	return errors.Join(errs...)
}
