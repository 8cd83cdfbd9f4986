package postgres

import (
	"context"

	"crewdir/internal/domain/entity"
	"crewdir/internal/domain/repository"
	"crewdir/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// referenceRepository implements the repository.ReferenceRepository interface
// over both reference tables, selected by relation kind.
type referenceRepository struct {
	db *gorm.DB
}

// NewReferenceRepository is the constructor for referenceRepository.
func NewReferenceRepository(db *gorm.DB) repository.ReferenceRepository {
	return &referenceRepository{
		db: db,
	}
}

// FindByIDs returns the references whose IDs are in ids, ordered by display
// name. Unknown IDs are silently absent from the result.
func (repo *referenceRepository) FindByIDs(ctx context.Context, kind entity.RelationKind, ids []uuid.UUID) ([]*entity.Reference, error) {
	if len(ids) == 0 {
		return []*entity.Reference{}, nil
	}

	switch kind {
	case entity.RelationTrades:
		var tradeModels []*model.TradeModel
		if err := repo.db.WithContext(ctx).
			Where("id IN ?", ids).
			Order("name ASC").
			Find(&tradeModels).Error; err != nil {
			return nil, errors.Wrap(err, "failed to find trades by IDs")
		}

		refs := make([]*entity.Reference, 0, len(tradeModels))
		for _, tradeM := range tradeModels {
			refs = append(refs, &entity.Reference{ID: tradeM.ID, Name: tradeM.Name, Slug: tradeM.Slug})
		}

		return refs, nil
	case entity.RelationRegions:
		var regionModels []*model.RegionModel
		if err := repo.db.WithContext(ctx).
			Where("id IN ?", ids).
			Order("name ASC").
			Find(&regionModels).Error; err != nil {
			return nil, errors.Wrap(err, "failed to find regions by IDs")
		}

		refs := make([]*entity.Reference, 0, len(regionModels))
		for _, regionM := range regionModels {
			refs = append(refs, &entity.Reference{ID: regionM.ID, Name: regionM.Name, Slug: regionM.Slug})
		}

		return refs, nil
	default:
		return nil, errors.Errorf("unknown relation kind: %s", kind)
	}
}

// tradeRepository implements the repository.TradeRepository interface.
type tradeRepository struct {
	db *gorm.DB
}

// NewTradeRepository is the constructor for tradeRepository.
func NewTradeRepository(db *gorm.DB) repository.TradeRepository {
	return &tradeRepository{
		db: db,
	}
}

// FindAll returns every trade ordered by name.
func (repo *tradeRepository) FindAll(ctx context.Context) ([]*entity.Trade, error) {
	var tradeModels []*model.TradeModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Order("name ASC").
		Find(&tradeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all trades")
	}

	trades := make([]*entity.Trade, 0, len(tradeModels))
	for _, tradeM := range tradeModels {
		trades = append(trades, toTradeDomain(tradeM))
	}

	return trades, nil
}

// FindBySlug retrieves one trade by its slug.
func (repo *tradeRepository) FindBySlug(ctx context.Context, slug string) (*entity.Trade, error) {
	var tradeM model.TradeModel

	if err := repo.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&tradeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTradeNotFound
		}

		return nil, errors.Wrap(err, "failed to find trade by slug")
	}

	return toTradeDomain(&tradeM), nil
}

// regionRepository implements the repository.RegionRepository interface.
type regionRepository struct {
	db *gorm.DB
}

// NewRegionRepository is the constructor for regionRepository.
func NewRegionRepository(db *gorm.DB) repository.RegionRepository {
	return &regionRepository{
		db: db,
	}
}

// FindAll returns every region ordered by name.
func (repo *regionRepository) FindAll(ctx context.Context) ([]*entity.Region, error) {
	var regionModels []*model.RegionModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Order("name ASC").
		Find(&regionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all regions")
	}

	regions := make([]*entity.Region, 0, len(regionModels))
	for _, regionM := range regionModels {
		regions = append(regions, toRegionDomain(regionM))
	}

	return regions, nil
}

// FindBySlug retrieves one region by its slug.
func (repo *regionRepository) FindBySlug(ctx context.Context, slug string) (*entity.Region, error) {
	var regionM model.RegionModel

	if err := repo.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&regionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRegionNotFound
		}

		return nil, errors.Wrap(err, "failed to find region by slug")
	}

	return toRegionDomain(&regionM), nil
}

// --- Mapper Functions ---

func toTradeDomain(data *model.TradeModel) *entity.Trade {
	if data == nil {
		return nil
	}

	return &entity.Trade{
		ID:   data.ID,
		Name: data.Name,
		Slug: data.Slug,
	}
}

func toRegionDomain(data *model.RegionModel) *entity.Region {
	if data == nil {
		return nil
	}

	return &entity.Region{
		ID:        data.ID,
		Name:      data.Name,
		Slug:      data.Slug,
		StateCode: data.StateCode,
	}
}
