package usecase

import (
	"context"

	"crewdir/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateAgencyInput is the sparse admin edit command. Nil pointers mean "not
// part of this request". TradeIDs/RegionIDs being non-nil but empty means
// "clear the relation".
type UpdateAgencyInput struct {
	AgencyID uuid.UUID
	EditorID uuid.UUID

	Name        *string
	About       *string
	Phone       *string
	Email       *string
	Website     *string
	FoundedYear *int
	SizeClass   *string
	IsActive    *bool
	IsFeatured  *bool
	IsClaimed   *bool

	TradeIDs  *[]uuid.UUID
	RegionIDs *[]uuid.UUID
}

// HasScalarFields reports whether any scalar profile field is part of the
// request.
func (in *UpdateAgencyInput) HasScalarFields() bool {
	return in.Name != nil || in.About != nil || in.Phone != nil || in.Email != nil ||
		in.Website != nil || in.FoundedYear != nil || in.SizeClass != nil ||
		in.IsActive != nil || in.IsFeatured != nil || in.IsClaimed != nil
}

// UpdateAgencyOutput returns the updated agency plus, for each relation that
// was part of the input, the resulting membership ordered by display name.
// A nil relation slice pointer means the relation was not touched and must be
// omitted from the response.
type UpdateAgencyOutput struct {
	Agency  *entity.Agency
	Trades  *[]*entity.Reference
	Regions *[]*entity.Reference
}

// AgencyAdminUsecase is the partial-update orchestrator: it decides, per
// admin request, which of scalar-field update and relation reconciliation to
// invoke, and assembles the combined response.
type AgencyAdminUsecase interface {
	// UpdateAgency applies a sparse edit. At least one of the scalar fields
	// or relation arrays must be present.
	UpdateAgency(ctx context.Context, input UpdateAgencyInput) (*UpdateAgencyOutput, error)

	// GetEditHistory returns the agency's audit trail, newest first.
	GetEditHistory(ctx context.Context, agencyID uuid.UUID, limit int) ([]*entity.AgencyProfileEdit, error)
}
