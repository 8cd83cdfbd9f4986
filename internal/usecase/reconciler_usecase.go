// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"crewdir/internal/domain/entity"

	"github.com/google/uuid"
)

// ReconcileResult is the outcome of one membership reconciliation.
type ReconcileResult struct {
	// Members is the final membership ordered by display name. Empty when
	// the desired set was empty.
	Members []*entity.Reference

	// AuditWritten reports whether the audit row for this call was
	// successfully appended. Audit is best-effort; false does not imply the
	// reconciliation failed.
	AuditWritten bool
}

// ReconcilerUsecase diffs a caller-supplied desired membership set against
// the stored join rows of one agency relation and applies the minimal
// add/remove delta, appending one audit row per call.
type ReconcilerUsecase interface {
	// Reconcile validates desiredIDs against the reference table
	// (all-or-nothing admission), upserts the desired join rows, prunes
	// orphans, and appends an audit entry attributed to editorID. An empty
	// desiredIDs clears the relation without an admission read.
	Reconcile(ctx context.Context, agencyID uuid.UUID, kind entity.RelationKind, desiredIDs []uuid.UUID, editorID uuid.UUID) (*ReconcileResult, error)
}
