// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"crewdir/internal/domain/entity"
	"crewdir/internal/domain/repository"
	"crewdir/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// agencyRepository implements the repository.AgencyRepository interface.
type agencyRepository struct {
	db *gorm.DB
}

// NewAgencyRepository is the constructor for agencyRepository.
func NewAgencyRepository(db *gorm.DB) repository.AgencyRepository {
	return &agencyRepository{
		db: db,
	}
}

// FindByID retrieves an agency by its unique ID.
func (repo *agencyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Agency, error) {
	var agencyM model.AgencyModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&agencyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAgencyNotFound
		}

		return nil, errors.Wrap(err, "failed to find agency by ID")
	}

	return toAgencyDomain(&agencyM), nil
}

// FindBySlug retrieves an agency by its public slug.
func (repo *agencyRepository) FindBySlug(ctx context.Context, slug string) (*entity.Agency, error) {
	var agencyM model.AgencyModel

	if err := repo.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&agencyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAgencyNotFound
		}

		return nil, errors.Wrap(err, "failed to find agency by slug")
	}

	return toAgencyDomain(&agencyM), nil
}

// List returns active agencies matching the filter, ordered by name. Browse
// traffic is the read-heavy path, so it is pinned to the replica pool when
// replicas are configured.
func (repo *agencyRepository) List(ctx context.Context, filter repository.AgencyListFilter) ([]*entity.Agency, error) {
	var agencyModels []*model.AgencyModel

	query := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.AgencyModel{}).
		Where("agencies.is_active = ?", true)

	if filter.Query != "" {
		query = query.Where("agencies.name ILIKE ?", "%"+filter.Query+"%")
	}
	if filter.SizeClass != "" {
		query = query.Where("agencies.size_class = ?", filter.SizeClass)
	}
	if filter.TradeSlug != "" {
		query = query.
			Joins("JOIN agency_trades ON agency_trades.agency_id = agencies.id").
			Joins("JOIN trades ON trades.id = agency_trades.trade_id").
			Where("trades.slug = ?", filter.TradeSlug)
	}
	if filter.RegionSlug != "" {
		query = query.
			Joins("JOIN agency_regions ON agency_regions.agency_id = agencies.id").
			Joins("JOIN regions ON regions.id = agency_regions.region_id").
			Where("regions.slug = ?", filter.RegionSlug)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.
		Order("agencies.name ASC").
		Find(&agencyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list agencies")
	}

	agencies := make([]*entity.Agency, 0, len(agencyModels))
	for _, agencyM := range agencyModels {
		agencies = append(agencies, toAgencyDomain(agencyM))
	}

	return agencies, nil
}

// Update persists the agency's mutable profile fields in a single statement.
func (repo *agencyRepository) Update(ctx context.Context, agency *entity.Agency) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AgencyModel{}).
		Where("id = ?", agency.ID).
		Updates(map[string]any{
			"name":           agency.Name,
			"about":          agency.About,
			"phone":          agency.Phone,
			"email":          agency.Email,
			"website":        agency.Website,
			"founded_year":   agency.FoundedYear,
			"size_class":     string(agency.SizeClass),
			"is_active":      agency.IsActive,
			"is_featured":    agency.IsFeatured,
			"is_claimed":     agency.IsClaimed,
			"last_edited_at": agency.LastEditedAt,
			"last_edited_by": agency.LastEditedBy,
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return errors.Wrap(result.Error, "agency update violates a check constraint")
		}

		return errors.Wrap(result.Error, "failed to update agency")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAgencyNotFound
	}

	return nil
}

// TouchLastEdited stamps the audit attribution columns without touching any
// other field.
func (repo *agencyRepository) TouchLastEdited(ctx context.Context, id, editorID uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AgencyModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"last_edited_at": at,
			"last_edited_by": editorID,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to touch agency audit fields")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAgencyNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAgencyDomain converts a GORM AgencyModel to a domain Agency entity.
func toAgencyDomain(data *model.AgencyModel) *entity.Agency {
	if data == nil {
		return nil
	}

	return &entity.Agency{
		ID:           data.ID,
		Name:         data.Name,
		Slug:         data.Slug,
		About:        data.About,
		Phone:        data.Phone,
		Email:        data.Email,
		Website:      data.Website,
		FoundedYear:  data.FoundedYear,
		SizeClass:    entity.SizeClass(data.SizeClass),
		IsActive:     data.IsActive,
		IsFeatured:   data.IsFeatured,
		IsClaimed:    data.IsClaimed,
		LastEditedAt: data.LastEditedAt,
		LastEditedBy: data.LastEditedBy,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
