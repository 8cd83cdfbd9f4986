package postgres

import (
	"context"

	"crewdir/internal/domain/entity"
	"crewdir/internal/domain/repository"
	"crewdir/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// complianceRepository implements the repository.ComplianceRepository interface.
type complianceRepository struct {
	db *gorm.DB
}

// NewComplianceRepository is the constructor for complianceRepository.
func NewComplianceRepository(db *gorm.DB) repository.ComplianceRepository {
	return &complianceRepository{
		db: db,
	}
}

// FindByAgencyAndType retrieves the status row for one (agency, type) pair.
func (repo *complianceRepository) FindByAgencyAndType(ctx context.Context, agencyID uuid.UUID, complianceType entity.ComplianceType) (*entity.AgencyCompliance, error) {
	var complianceM model.AgencyComplianceModel

	if err := repo.db.WithContext(ctx).
		Where("agency_id = ? AND compliance_type = ?", agencyID, string(complianceType)).
		First(&complianceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrComplianceNotFound
		}

		return nil, errors.Wrap(err, "failed to find compliance by agency and type")
	}

	return toComplianceDomain(&complianceM), nil
}

// FindByAgency retrieves all compliance rows of an agency ordered by type.
func (repo *complianceRepository) FindByAgency(ctx context.Context, agencyID uuid.UUID) ([]*entity.AgencyCompliance, error) {
	var complianceModels []*model.AgencyComplianceModel

	if err := repo.db.WithContext(ctx).
		Where("agency_id = ?", agencyID).
		Order("compliance_type ASC").
		Find(&complianceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find compliances by agency")
	}

	compliances := make([]*entity.AgencyCompliance, 0, len(complianceModels))
	for _, complianceM := range complianceModels {
		compliances = append(compliances, toComplianceDomain(complianceM))
	}

	return compliances, nil
}

// Upsert inserts or updates the row keyed by the (agency_id, compliance_type)
// uniqueness constraint, in a single statement.
func (repo *complianceRepository) Upsert(ctx context.Context, compliance *entity.AgencyCompliance) error {
	complianceM := fromComplianceDomain(compliance)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "agency_id"}, {Name: "compliance_type"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"document_url", "is_verified", "verified_by", "verified_at", "notes", "updated_at",
			}),
		}).
		Create(complianceM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAgencyNotFound
		}

		return errors.Wrap(err, "failed to upsert compliance")
	}

	// Reflect generated values back onto the entity.
	compliance.ID = complianceM.ID
	compliance.CreatedAt = complianceM.CreatedAt
	compliance.UpdatedAt = complianceM.UpdatedAt

	return nil
}

// Update persists changes to an existing row.
func (repo *complianceRepository) Update(ctx context.Context, compliance *entity.AgencyCompliance) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AgencyComplianceModel{}).
		Where("id = ?", compliance.ID).
		Updates(map[string]any{
			"document_url": compliance.DocumentURL,
			"is_verified":  compliance.IsVerified,
			"verified_by":  compliance.VerifiedBy,
			"verified_at":  compliance.VerifiedAt,
			"is_active":    compliance.IsActive,
			"notes":        compliance.Notes,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update compliance")
	}

	if result.RowsAffected == 0 {
		return repository.ErrComplianceNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toComplianceDomain converts a GORM AgencyComplianceModel to a domain AgencyCompliance entity.
func toComplianceDomain(data *model.AgencyComplianceModel) *entity.AgencyCompliance {
	if data == nil {
		return nil
	}

	return &entity.AgencyCompliance{
		ID:             data.ID,
		AgencyID:       data.AgencyID,
		ComplianceType: entity.ComplianceType(data.ComplianceType),
		DocumentURL:    data.DocumentURL,
		IsVerified:     data.IsVerified,
		VerifiedBy:     data.VerifiedBy,
		VerifiedAt:     data.VerifiedAt,
		IsActive:       data.IsActive,
		Notes:          data.Notes,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromComplianceDomain converts a domain AgencyCompliance entity to a GORM AgencyComplianceModel.
func fromComplianceDomain(data *entity.AgencyCompliance) *model.AgencyComplianceModel {
	if data == nil {
		return nil
	}

	return &model.AgencyComplianceModel{
		ID:             data.ID,
		AgencyID:       data.AgencyID,
		ComplianceType: string(data.ComplianceType),
		DocumentURL:    data.DocumentURL,
		IsVerified:     data.IsVerified,
		VerifiedBy:     data.VerifiedBy,
		VerifiedAt:     data.VerifiedAt,
		IsActive:       data.IsActive,
		Notes:          data.Notes,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
