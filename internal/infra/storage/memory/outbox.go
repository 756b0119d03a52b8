package memory

import (
	"context"
	"sync"

	appoutbox "villastay/internal/app/outbox"
)

// Outbox buffers event records in memory. Flush hands them to the configured
// publisher; without one the records are simply dropped, which is what demo
// mode wants.
type Outbox struct {
	mu      sync.Mutex
	records []appoutbox.EventRecord

	Publisher func(ctx context.Context, records []appoutbox.EventRecord) error
}

func NewOutbox() *Outbox {
	return &Outbox{}
}

func (o *Outbox) Add(ctx context.Context, record appoutbox.EventRecord) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.records = append(o.records, record)
	return nil
}

func (o *Outbox) Flush(ctx context.Context) error {
	o.mu.Lock()
	pending := o.records
	o.records = nil
	o.mu.Unlock()

	if o.Publisher == nil || len(pending) == 0 {
		return nil
	}
	return o.Publisher(ctx, pending)
}

// Pending returns a snapshot of buffered records.
func (o *Outbox) Pending() []appoutbox.EventRecord {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]appoutbox.EventRecord, len(o.records))
	copy(out, o.records)
	return out
}

var _ appoutbox.Outbox = (*Outbox)(nil)
