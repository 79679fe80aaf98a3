package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

// Event subjects published by the back office.
const (
	SubjectOrderCreated       = "backoffice.order.created"
	SubjectOrderStatusChanged = "backoffice.order.status_changed"
	SubjectOrderIssued        = "backoffice.order.issued"
	SubjectPromocodeApplied   = "backoffice.promocode.applied"
	SubjectClientCreated      = "backoffice.client.created"
)

// Publisher pushes domain events to NATS JetStream. When NATS is not
// configured the publisher degrades to a no-op so the API keeps working.
type Publisher struct {
	conn   *nats.Conn
	js     nats.JetStreamContext
	logger *logrus.Logger
}

// NewPublisher connects to NATS. An empty URL returns a disabled publisher.
func NewPublisher(url string, logger *logrus.Logger) *Publisher {
	if url == "" {
		logger.Info("NATS URL not configured, event publishing disabled")
		return &Publisher{logger: logger}
	}

	conn, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		logger.WithError(err).Warn("Failed to connect to NATS, event publishing disabled")
		return &Publisher{logger: logger}
	}

	js, err := conn.JetStream()
	if err != nil {
		logger.WithError(err).Warn("Failed to get JetStream context, event publishing disabled")
		conn.Close()
		return &Publisher{logger: logger}
	}

	logger.WithField("url", url).Info("Connected to NATS")
	return &Publisher{conn: conn, js: js, logger: logger}
}

// Publish sends an event asynchronously. Failures are logged, never
// surfaced to the request path.
func (p *Publisher) Publish(subject string, payload interface{}) {
	if p.js == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		data, err := json.Marshal(payload)
		if err != nil {
			p.logger.WithError(err).WithField("subject", subject).Error("Failed to marshal event")
			return
		}
		if _, err := p.js.Publish(subject, data, nats.Context(ctx)); err != nil {
			p.logger.WithError(err).WithField("subject", subject).Error("Failed to publish event")
			return
		}
		p.logger.WithField("subject", subject).Debug("Event published")
	}()
}

// Close drains the NATS connection.
func (p *Publisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}
