package postgres

import (
	"context"

	"crewdir/internal/domain/entity"
	"crewdir/internal/domain/repository"
	"crewdir/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileEditRepository implements the repository.ProfileEditRepository interface.
type profileEditRepository struct {
	db *gorm.DB
}

// NewProfileEditRepository is the constructor for profileEditRepository.
func NewProfileEditRepository(db *gorm.DB) repository.ProfileEditRepository {
	return &profileEditRepository{
		db: db,
	}
}

// Create appends one audit row. The trail is append-only; there is no update
// or delete path.
func (repo *profileEditRepository) Create(ctx context.Context, edit *entity.AgencyProfileEdit) error {
	editM := fromProfileEditDomain(edit)

	if err := repo.db.WithContext(ctx).Create(editM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAgencyNotFound
		}

		return errors.Wrap(err, "failed to create profile edit")
	}

	edit.ID = editM.ID
	edit.CreatedAt = editM.CreatedAt

	return nil
}

// ListByAgency returns the audit trail newest-first.
func (repo *profileEditRepository) ListByAgency(ctx context.Context, agencyID uuid.UUID, limit int) ([]*entity.AgencyProfileEdit, error) {
	var editModels []*model.AgencyProfileEditModel

	query := repo.db.WithContext(ctx).
		Where("agency_id = ?", agencyID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&editModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list profile edits")
	}

	edits := make([]*entity.AgencyProfileEdit, 0, len(editModels))
	for _, editM := range editModels {
		edits = append(edits, toProfileEditDomain(editM))
	}

	return edits, nil
}

// --- Mapper Functions ---

func toProfileEditDomain(data *model.AgencyProfileEditModel) *entity.AgencyProfileEdit {
	if data == nil {
		return nil
	}

	return &entity.AgencyProfileEdit{
		ID:        data.ID,
		AgencyID:  data.AgencyID,
		EditorID:  data.EditorID,
		FieldName: data.FieldName,
		OldValue:  []string(data.OldValue),
		NewValue:  []string(data.NewValue),
		CreatedAt: data.CreatedAt,
	}
}

func fromProfileEditDomain(data *entity.AgencyProfileEdit) *model.AgencyProfileEditModel {
	if data == nil {
		return nil
	}

	return &model.AgencyProfileEditModel{
		ID:        data.ID,
		AgencyID:  data.AgencyID,
		EditorID:  data.EditorID,
		FieldName: data.FieldName,
		OldValue:  model.StringList(data.OldValue),
		NewValue:  model.StringList(data.NewValue),
		CreatedAt: data.CreatedAt,
	}
}
