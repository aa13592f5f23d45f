package alert

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/vitalapp/api/internal/platform/notification"
)

// Events receives alert state changes after they are stored.
type Events interface {
	AlertCreated(ctx context.Context, a *Alert)
	AlertRead(ctx context.Context, a *Alert)
}

type nopEvents struct{}

func (nopEvents) AlertCreated(context.Context, *Alert) {}
func (nopEvents) AlertRead(context.Context, *Alert)    {}

const publishTimeout = 2 * time.Second

// Notifier publishes alert changes as JSON on
// <prefix>/alerts/<patientId> and <prefix>/alerts/<patientId>/read.
// Failures are logged and never reach the caller.
type Notifier struct {
	pub    notification.Publisher
	prefix string
	logger zerolog.Logger
}

func NewNotifier(pub notification.Publisher, prefix string, logger zerolog.Logger) *Notifier {
	return &Notifier{pub: pub, prefix: prefix, logger: logger}
}

// CreatedTopic returns the topic a new alert for patientID is published on.
func (n *Notifier) CreatedTopic(patientID string) string {
	return fmt.Sprintf("%s/alerts/%s", n.prefix, patientID)
}

// ReadTopic returns the topic read alerts for patientID are published on.
func (n *Notifier) ReadTopic(patientID string) string {
	return n.CreatedTopic(patientID) + "/read"
}

func (n *Notifier) AlertCreated(ctx context.Context, a *Alert) {
	n.publish(ctx, n.CreatedTopic(a.PatientID), a)
}

func (n *Notifier) AlertRead(ctx context.Context, a *Alert) {
	n.publish(ctx, n.ReadTopic(a.PatientID), a)
}

func (n *Notifier) publish(ctx context.Context, topic string, a *Alert) {
	payload, err := json.Marshal(a)
	if err != nil {
		n.logger.Error().Err(err).Str("alert_id", a.ID).Msg("encode alert event")
		return
	}
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := n.pub.Publish(ctx, topic, payload); err != nil {
		n.logger.Warn().Err(err).Str("topic", topic).Str("alert_id", a.ID).Msg("publish alert event")
	}
}
