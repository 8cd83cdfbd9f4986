// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"crewdir/internal/domain/entity"
	domainerrors "crewdir/internal/domain/errors"
	"crewdir/internal/domain/repository"
	"crewdir/internal/usecase"

	"github.com/google/uuid"
)

// reconcilerService implements the ReconcilerUsecase interface.
type reconcilerService struct {
	refRepo    repository.ReferenceRepository
	memberRepo repository.MembershipRepository
	editRepo   repository.ProfileEditRepository
	logger     *slog.Logger
}

// NewReconcilerService is the constructor for reconcilerService.
func NewReconcilerService(
	refRepo repository.ReferenceRepository,
	memberRepo repository.MembershipRepository,
	editRepo repository.ProfileEditRepository,
	logger *slog.Logger,
) usecase.ReconcilerUsecase {
	return &reconcilerService{
		refRepo:    refRepo,
		memberRepo: memberRepo,
		editRepo:   editRepo,
		logger:     logger,
	}
}

// Reconcile makes the stored membership of one agency relation match
// desiredIDs. The admission check is all-or-nothing: any unknown reference ID
// fails the call before a single row is written. The apply step is
// idempotent; the audit row is appended per call, not per change.
func (srv *reconcilerService) Reconcile(
	ctx context.Context,
	agencyID uuid.UUID,
	kind entity.RelationKind,
	desiredIDs []uuid.UUID,
	editorID uuid.UUID,
) (*usecase.ReconcileResult, error) {
	if !kind.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithMessage("unknown relation kind")
	}

	desired := dedupeIDs(desiredIDs)
	srv.logger.Debug("Reconciling relation membership",
		"agencyID", agencyID, "kind", kind, "desired", len(desired))

	// 1. Admission check: every desired ID must exist as a reference row.
	//    Skipped entirely for clear-all, where there is nothing to validate.
	var desiredRefs []*entity.Reference
	if len(desired) > 0 {
		refs, err := srv.refRepo.FindByIDs(ctx, kind, desired)
		if err != nil {
			return nil, domainerrors.NewStoreError(err, "failed to read reference rows")
		}

		if len(refs) != len(desired) {
			invalid := missingIDs(desired, refs)

			return nil, domainerrors.NewValidationError(
				"one or more "+kind.String()+" do not exist",
				map[string]any{invalidIDsKey(kind): invalid},
			)
		}
		desiredRefs = refs
	}

	// 2. Read the current membership and its display names for the audit
	//    old value. Still pre-mutation, so any failure here is fatal.
	currentIDs, err := srv.memberRepo.CurrentIDs(ctx, agencyID, kind)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to read current membership")
	}

	currentRefs, err := srv.refRepo.FindByIDs(ctx, kind, currentIDs)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to read current member names")
	}

	// 3. Assert the desired join rows. Upsert keyed by the (agency,
	//    reference) pair makes re-asserting an existing membership a no-op.
	if len(desired) > 0 {
		if err := srv.memberRepo.Upsert(ctx, agencyID, kind, desired); err != nil {
			return nil, domainerrors.NewStoreError(err, "failed to upsert membership rows")
		}
	}

	// 4. Prune orphans, scoped by agency. The upsert half already reflects
	//    the administrator's intent; a stray extra membership is less harmful
	//    than rolling back a partially applied change, so failure here is
	//    logged and the request proceeds.
	if orphans := subtractIDs(currentIDs, desired); len(orphans) > 0 {
		if err := srv.memberRepo.Delete(ctx, agencyID, kind, orphans); err != nil {
			srv.logger.Warn("failed to prune orphaned membership rows",
				"agencyID", agencyID, "kind", kind, "count", len(orphans), "error", err)
		}
	}

	// 5. Append the audit row. Best-effort observability, attempted even if
	//    orphan pruning failed.
	edit := &entity.AgencyProfileEdit{
		AgencyID:  agencyID,
		EditorID:  editorID,
		FieldName: kind.String(),
		OldValue:  entity.ReferenceNames(currentRefs),
		NewValue:  entity.ReferenceNames(desiredRefs),
		CreatedAt: time.Now(),
	}

	auditWritten := true
	if err := srv.editRepo.Create(ctx, edit); err != nil {
		srv.logger.Warn("failed to append profile edit audit row",
			"agencyID", agencyID, "kind", kind, "error", err)
		auditWritten = false
	}

	// 6. The final membership equals the admitted desired set; desiredRefs
	//    is already ordered by display name, so no re-read is needed.
	members := desiredRefs
	if members == nil {
		members = []*entity.Reference{}
	}

	return &usecase.ReconcileResult{
		Members:      members,
		AuditWritten: auditWritten,
	}, nil
}

// invalidIDsKey names the validation details entry for the relation.
func invalidIDsKey(kind entity.RelationKind) string {
	if kind == entity.RelationRegions {
		return "invalid_region_ids"
	}

	return "invalid_trade_ids"
}

// dedupeIDs preserves first-seen order while dropping duplicates, giving
// desiredIDs set semantics.
func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}

// missingIDs computes desired minus the IDs present in refs.
func missingIDs(desired []uuid.UUID, refs []*entity.Reference) []uuid.UUID {
	found := make(map[uuid.UUID]struct{}, len(refs))
	for _, ref := range refs {
		found[ref.ID] = struct{}{}
	}

	missing := make([]uuid.UUID, 0, len(desired)-len(refs))
	for _, id := range desired {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}

	return missing
}

// subtractIDs computes current minus desired.
func subtractIDs(current, desired []uuid.UUID) []uuid.UUID {
	keep := make(map[uuid.UUID]struct{}, len(desired))
	for _, id := range desired {
		keep[id] = struct{}{}
	}

	var orphans []uuid.UUID
	for _, id := range current {
		if _, ok := keep[id]; !ok {
			orphans = append(orphans, id)
		}
	}

	return orphans
}
