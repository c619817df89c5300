// Package telemetry records operational audit events for arena writes.
//
// The emitter is a thin layer over the audit store: callers describe what
// happened and the emitter fills in when and, when a trace is active,
// under which trace and span ids. Audit rows carry no foreign keys, so
// the trail survives the deletions it describes.
package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/ludus/internal/storage"
)

// Severity describes the audit severity level.
type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityWarn  Severity = "warn"
	SeverityError Severity = "error"
)

// Emitter records operational audit events.
type Emitter struct {
	store storage.AuditStore
	clock func() time.Time
}

// NewEmitter creates a new audit emitter.
func NewEmitter(store storage.AuditStore) *Emitter {
	return &Emitter{store: store, clock: time.Now}
}

// Emit records an audit event. It is a no-op when the store is nil.
// Missing timestamps default to now and missing trace fields are taken
// from the active span, if any.
func (e *Emitter) Emit(ctx context.Context, record storage.AuditEvent) error {
	if e == nil || e.store == nil {
		return nil
	}
	if record.Severity == "" {
		record.Severity = string(SeverityInfo)
	}
	if record.OccurredAt.IsZero() {
		if e.clock == nil {
			record.OccurredAt = time.Now().UTC()
		} else {
			record.OccurredAt = e.clock().UTC()
		}
	}
	if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.IsValid() {
		if record.TraceID == "" {
			record.TraceID = spanCtx.TraceID().String()
		}
		if record.SpanID == "" {
			record.SpanID = spanCtx.SpanID().String()
		}
	}
	_, err := e.store.AppendAuditEvent(ctx, record)
	return err
}
