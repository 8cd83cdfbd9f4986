package postgres

import (
	"context"

	"crewdir/internal/domain/entity"
	domainerrors "crewdir/internal/domain/errors"
	"crewdir/internal/domain/repository"
	"crewdir/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// membershipRepository implements the repository.MembershipRepository
// interface over both join tables, selected by relation kind.
type membershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository is the constructor for membershipRepository.
func NewMembershipRepository(db *gorm.DB) repository.MembershipRepository {
	return &membershipRepository{
		db: db,
	}
}

// CurrentIDs returns the reference IDs currently joined to the agency.
func (repo *membershipRepository) CurrentIDs(ctx context.Context, agencyID uuid.UUID, kind entity.RelationKind) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	switch kind {
	case entity.RelationTrades:
		if err := repo.db.WithContext(ctx).
			Model(&model.AgencyTradeModel{}).
			Where("agency_id = ?", agencyID).
			Pluck("trade_id", &ids).Error; err != nil {
			return nil, errors.Wrap(err, "failed to read current trade memberships")
		}
	case entity.RelationRegions:
		if err := repo.db.WithContext(ctx).
			Model(&model.AgencyRegionModel{}).
			Where("agency_id = ?", agencyID).
			Pluck("region_id", &ids).Error; err != nil {
			return nil, errors.Wrap(err, "failed to read current region memberships")
		}
	default:
		return nil, errors.Errorf("unknown relation kind: %s", kind)
	}

	return ids, nil
}

// Upsert asserts one join row per reference ID. ON CONFLICT DO NOTHING on the
// composite primary key makes re-asserting an existing membership a no-op.
func (repo *membershipRepository) Upsert(ctx context.Context, agencyID uuid.UUID, kind entity.RelationKind, refIDs []uuid.UUID) error {
	if len(refIDs) == 0 {
		return nil
	}

	onConflict := clause.OnConflict{DoNothing: true}

	var err error
	switch kind {
	case entity.RelationTrades:
		rows := make([]*model.AgencyTradeModel, 0, len(refIDs))
		for _, refID := range refIDs {
			rows = append(rows, &model.AgencyTradeModel{AgencyID: agencyID, TradeID: refID})
		}
		err = repo.db.WithContext(ctx).Clauses(onConflict).Create(&rows).Error
	case entity.RelationRegions:
		rows := make([]*model.AgencyRegionModel, 0, len(refIDs))
		for _, refID := range refIDs {
			rows = append(rows, &model.AgencyRegionModel{AgencyID: agencyID, RegionID: refID})
		}
		err = repo.db.WithContext(ctx).Clauses(onConflict).Create(&rows).Error
	default:
		return errors.Errorf("unknown relation kind: %s", kind)
	}

	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("membership references a missing agency or reference row")
		}

		return errors.Wrapf(err, "failed to upsert %s memberships", kind)
	}

	return nil
}

// Delete removes exactly the given join rows, scoped by agency.
func (repo *membershipRepository) Delete(ctx context.Context, agencyID uuid.UUID, kind entity.RelationKind, refIDs []uuid.UUID) error {
	if len(refIDs) == 0 {
		return nil
	}

	var err error
	switch kind {
	case entity.RelationTrades:
		err = repo.db.WithContext(ctx).
			Where("agency_id = ? AND trade_id IN ?", agencyID, refIDs).
			Delete(&model.AgencyTradeModel{}).Error
	case entity.RelationRegions:
		err = repo.db.WithContext(ctx).
			Where("agency_id = ? AND region_id IN ?", agencyID, refIDs).
			Delete(&model.AgencyRegionModel{}).Error
	default:
		return errors.Errorf("unknown relation kind: %s", kind)
	}

	if err != nil {
		return errors.Wrapf(err, "failed to delete %s memberships", kind)
	}

	return nil
}
