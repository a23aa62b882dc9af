// Package notify delivers assignment notifications to an outbound webhook.
// Delivery is fire-and-forget: messages are queued and posted by a single
// background worker, and failures are only logged.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktrack-backend/internal/config"
)

// Message is the JSON body posted to the webhook.
type Message struct {
	To      string            `json:"to,omitempty"`
	UserID  string            `json:"userId"`
	Subject string            `json:"subject"`
	Body    string            `json:"body"`
	Data    map[string]string `json:"data,omitempty"`
}

// Assignment describes a request that was assigned to a team member.
type Assignment struct {
	RecipientID    uuid.UUID
	RecipientEmail string
	RecipientName  string
	RequestID      uuid.UUID
	RequestNumber  string
	RequestTitle   string
	DueDate        *time.Time
}

// Dispatcher queues messages and posts them from a worker goroutine.
type Dispatcher struct {
	log    *slog.Logger
	cfg    config.NotifyConfig
	client *http.Client

	queue chan Message
	done  chan struct{}

	// ctx is cancelled when Stop gives up waiting. In-flight posts are
	// cancelled with it and the remaining queue is dropped.
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.RWMutex
	started bool
	stopped bool
}

// New creates a Dispatcher. When cfg has no webhook URL the dispatcher
// accepts and drops every message.
func New(log *slog.Logger, cfg config.NotifyConfig) *Dispatcher {
	size := max(cfg.QueueSize, 1)
	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		log:    log.With("component", "notify"),
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		queue:  make(chan Message, size),
		done:   make(chan struct{}),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start launches the delivery worker. It is a no-op when dispatch is
// disabled or the worker already runs.
func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.started || d.stopped || !d.cfg.Enabled() {
		return
	}
	d.started = true
	go d.run()
}

// Stop closes the queue and waits for queued messages to be delivered.
// If ctx expires first, the in-flight post is cancelled, messages still
// queued are dropped, and ctx.Err() is returned.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return nil
	}
	d.stopped = true
	started := d.started
	close(d.queue)
	d.mu.Unlock()
	defer d.cancel()

	if !started {
		return nil
	}

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("notify: drain queue: %w", ctx.Err())
	}
}

// Enqueue queues m for delivery without blocking. It returns false when
// the message was dropped: dispatch is disabled, stopped, or the queue is full.
func (d *Dispatcher) Enqueue(m Message) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped || !d.cfg.Enabled() {
		return false
	}

	select {
	case d.queue <- m:
		return true
	default:
		d.log.Warn("notification queue full, dropping message",
			slog.String("user_id", m.UserID),
			slog.String("subject", m.Subject),
		)
		return false
	}
}

// Enabled reports whether messages are delivered at all.
func (d *Dispatcher) Enabled() bool {
	return d.cfg.Enabled()
}

// Pending returns the number of queued, undelivered messages.
func (d *Dispatcher) Pending() int {
	return len(d.queue)
}

// NotifyAssignment queues the assignment message for a.
func (d *Dispatcher) NotifyAssignment(ctx context.Context, a Assignment) {
	m := AssignmentMessage(a)
	if !d.Enqueue(m) {
		d.log.DebugContext(ctx, "assignment notification not queued",
			slog.String("request_number", a.RequestNumber),
			slog.String("user_id", m.UserID),
		)
	}
}

// AssignmentMessage renders the notification sent when a request is
// assigned to a team member.
func AssignmentMessage(a Assignment) Message {
	name := a.RecipientName
	if name == "" {
		name = a.RecipientEmail
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", name)
	b.WriteString("You have been assigned to a new request:\n\n")
	fmt.Fprintf(&b, "Request #%s\n", a.RequestNumber)
	fmt.Fprintf(&b, "Title: %s\n", a.RequestTitle)
	if a.DueDate != nil {
		fmt.Fprintf(&b, "Due Date: %s\n", a.DueDate.Format("January 2, 2006"))
	}
	b.WriteString("\nPlease log in to the tracking system to view more details.")

	data := map[string]string{
		"requestId":     a.RequestID.String(),
		"requestNumber": a.RequestNumber,
	}
	if a.DueDate != nil {
		data["dueDate"] = a.DueDate.Format(time.DateOnly)
	}

	return Message{
		To:      a.RecipientEmail,
		UserID:  a.RecipientID.String(),
		Subject: "New Request Assignment - #" + a.RequestNumber,
		Body:    b.String(),
		Data:    data,
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for m := range d.queue {
		if d.ctx.Err() != nil {
			d.log.Error("notifications dropped on shutdown", slog.Int("count", len(d.queue)+1))
			return
		}
		d.deliver(m)
	}
}

func (d *Dispatcher) deliver(m Message) {
	payload, err := json.Marshal(m)
	if err != nil {
		d.log.Error("marshal notification", slog.String("error", err.Error()))
		return
	}

	start := time.Now()
	attempts := max(d.cfg.MaxAttempts, 1)
	for attempt := 1; attempt <= attempts; attempt++ {
		status, err := d.post(payload)
		if err == nil {
			d.log.Info("notification sent",
				slog.String("user_id", m.UserID),
				slog.Int("status", status),
				slog.Int("attempt", attempt),
				slog.Duration("duration", time.Since(start)),
			)
			return
		}

		d.log.Warn("notification POST failed",
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()),
		)
		if attempt == attempts {
			break
		}

		select {
		case <-time.After(d.cfg.RetryDelay):
		case <-d.ctx.Done():
			d.log.Error("notification abandoned on shutdown", slog.String("user_id", m.UserID))
			return
		}
	}

	d.log.Error("notification failed",
		slog.String("user_id", m.UserID),
		slog.String("subject", m.Subject),
		slog.Int("attempts", attempts),
	)
}

func (d *Dispatcher) post(payload []byte) (int, error) {
	req, err := http.NewRequestWithContext(d.ctx, http.MethodPost, d.cfg.WebhookURL, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return resp.StatusCode, nil
}
