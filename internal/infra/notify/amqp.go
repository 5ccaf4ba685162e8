package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"barbershop-booking/internal/pkg/config"
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	defaultDialTimeout    = 2 * time.Second
	defaultPublishTimeout = 2 * time.Second
	defaultRedialBackoff  = 10 * time.Second
	defaultBufferSize     = 256
)

var (
	ErrQueueFull = errs.New("notification buffer full")
	ErrClosed    = errs.New("notifier closed")
	errBackoff   = errs.New("broker redial backoff")
)

// Observer counts delivery results.
type Observer interface {
	ObserveNotification(event string, delivered bool)
}

type envelope struct {
	Event      string                 `json:"event"`
	OccurredAt time.Time              `json:"occurred_at"`
	Booking    commands.BookingNotice `json:"booking"`
}

type job struct {
	event commands.Event
	body  []byte
}

// AMQPNotifier publishes persistent JSON messages to one durable queue on the
// default exchange. Notify only enqueues; a single worker owns the broker
// connection, so a slow or silent broker never reaches the request path.
type AMQPNotifier struct {
	url            string
	queue          string
	dialTimeout    time.Duration
	publishTimeout time.Duration
	redialBackoff  time.Duration
	observer       Observer

	mu     sync.RWMutex
	closed bool
	jobs   chan job
	done   chan struct{}

	// owned by the worker goroutine
	conn        *amqp.Connection
	ch          *amqp.Channel
	redialAfter time.Time
}

func NewAMQPNotifier(cfg config.AMQPConfig, observer Observer) *AMQPNotifier {
	n := &AMQPNotifier{
		url:            cfg.URL,
		queue:          cfg.Queue,
		dialTimeout:    orDefault(cfg.DialTimeout, defaultDialTimeout),
		publishTimeout: orDefault(cfg.PublishTimeout, defaultPublishTimeout),
		redialBackoff:  orDefault(cfg.RedialBackoff, defaultRedialBackoff),
		observer:       observer,
		done:           make(chan struct{}),
	}
	size := cfg.BufferSize
	if size <= 0 {
		size = defaultBufferSize
	}
	n.jobs = make(chan job, size)
	go n.run()
	return n
}

// Notify hands the notice to the worker and returns at once.
func (n *AMQPNotifier) Notify(_ context.Context, event commands.Event, notice commands.BookingNotice) bool {
	body, err := json.Marshal(envelope{Event: string(event), OccurredAt: time.Now().UTC(), Booking: notice})
	if err != nil {
		return n.failed(event, "marshal", err)
	}

	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.closed {
		return n.failed(event, "enqueue", ErrClosed)
	}
	select {
	case n.jobs <- job{event: event, body: body}:
		return true
	default:
		return n.failed(event, "enqueue", ErrQueueFull)
	}
}

// Close stops accepting notices and waits for the buffer to drain or ctx to end.
func (n *AMQPNotifier) Close(ctx context.Context) error {
	n.mu.Lock()
	if !n.closed {
		n.closed = true
		close(n.jobs)
	}
	n.mu.Unlock()

	select {
	case <-n.done:
		return nil
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), "drain notifications")
	}
}

func (n *AMQPNotifier) run() {
	defer close(n.done)
	defer n.reset()

	for j := range n.jobs {
		if err := n.publish(j); err != nil {
			n.failed(j.event, "publish", err)
			continue
		}
		n.observe(j.event, true)
	}
}

func (n *AMQPNotifier) publish(j job) error {
	if err := n.ensureChannel(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), n.publishTimeout)
	defer cancel()
	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         string(j.event),
		Body:         j.body,
	}
	if err := n.ch.PublishWithContext(ctx, "", n.queue, false, false, pub); err != nil {
		n.reset()
		return err
	}
	return nil
}

func (n *AMQPNotifier) ensureChannel() error {
	if n.ch != nil && !n.ch.IsClosed() {
		return nil
	}
	n.reset()
	if time.Now().Before(n.redialAfter) {
		return errBackoff
	}

	// DefaultDial bounds both the TCP connect and the AMQP handshake.
	conn, err := amqp.DialConfig(n.url, amqp.Config{
		Dial:      amqp.DefaultDial(n.dialTimeout),
		Heartbeat: 10 * time.Second,
	})
	if err != nil {
		n.redialAfter = time.Now().Add(n.redialBackoff)
		return errs.Wrap(err, "dial broker")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		n.redialAfter = time.Now().Add(n.redialBackoff)
		return errs.Wrap(err, "open channel")
	}
	if _, err := ch.QueueDeclare(n.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		n.redialAfter = time.Now().Add(n.redialBackoff)
		return errs.Wrapf(err, "declare queue %s", n.queue)
	}
	n.conn, n.ch = conn, ch
	return nil
}

func (n *AMQPNotifier) reset() {
	if n.ch != nil {
		_ = n.ch.Close()
		n.ch = nil
	}
	if n.conn != nil {
		_ = n.conn.Close()
		n.conn = nil
	}
}

func (n *AMQPNotifier) failed(event commands.Event, stage string, err error) bool {
	slog.Warn("booking notification failed",
		"event", string(event),
		"stage", stage,
		"queue", n.queue,
		"error", err.Error())
	n.observe(event, false)
	return false
}

func (n *AMQPNotifier) observe(event commands.Event, delivered bool) {
	if n.observer != nil {
		n.observer.ObserveNotification(string(event), delivered)
	}
}

func orDefault(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}
