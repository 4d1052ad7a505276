package ports

import (
	"context"

	"github.com/ledgerkeep/ledgerkeep/internal/core/domain"
)

// AuditSink accepts audit events for asynchronous persistence. Record must
// never block the request path; events may be dropped under backpressure.
type AuditSink interface {
	Record(event domain.AuditEvent)
}

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event domain.AuditEvent) error
}
