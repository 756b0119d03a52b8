package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"

	appoutbox "villastay/internal/app/outbox"
)

var ErrPublisherNotConfigured = errors.New("outbox: publisher missing producer")

type Producer interface {
	Publish(ctx context.Context, topic string, key string, payload []byte, headers map[string]string) error
}

// Publisher turns buffered event records into CloudEvents messages on the
// broker. Topic names derive from the event name prefix: a
// "reservation.confirmed" event lands on "reservation.events.v1".
type Publisher struct {
	Producer    Producer
	TopicPrefix string
	Source      string
}

func (p *Publisher) PublishRecords(ctx context.Context, records []appoutbox.EventRecord) error {
	if p.Producer == nil {
		return ErrPublisherNotConfigured
	}
	for _, rec := range records {
		payload, headers, err := p.format(rec)
		if err != nil {
			return err
		}
		if err := p.Producer.Publish(ctx, p.topicFor(rec.Name), rec.Aggregate, payload, headers); err != nil {
			return err
		}
	}
	return nil
}

func (p *Publisher) format(rec appoutbox.EventRecord) ([]byte, map[string]string, error) {
	data := map[string]any{}
	if err := json.Unmarshal(rec.Payload, &data); err != nil {
		return nil, nil, err
	}
	evt := map[string]any{
		"specversion":     "1.0",
		"id":              uuid.NewString(),
		"type":            rec.Name + ".v1",
		"source":          p.source(),
		"time":            rec.OccurredAt,
		"datacontenttype": "application/json",
		"data":            data,
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return nil, nil, err
	}
	headers := map[string]string{
		"content-type": "application/cloudevents+json",
	}
	for k, v := range rec.Headers {
		headers[k] = v
	}
	return payload, headers, nil
}

func (p *Publisher) topicFor(name string) string {
	base := name
	if idx := strings.IndexRune(name, '.'); idx > 0 {
		base = name[:idx]
	}
	topic := base + ".events.v1"
	if p.TopicPrefix != "" {
		topic = p.TopicPrefix + topic
	}
	return topic
}

func (p *Publisher) source() string {
	if p.Source != "" {
		return p.Source
	}
	return "app://villastay"
}
