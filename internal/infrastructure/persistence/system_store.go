package persistence

import (
	"context"

	"github.com/estateops/backend/internal/application/system"
	"github.com/estateops/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSystemStore implements the system DataStore on GORM
type GormSystemStore struct {
	db *gorm.DB
}

// NewGormSystemStore creates a new GormSystemStore
func NewGormSystemStore(db *gorm.DB) *GormSystemStore {
	return &GormSystemStore{db: db}
}

func upsertAll(tx *gorm.DB, rows any) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(rows).Error
}

// ImportTenantData upserts every record of the payload in one transaction,
// parents before children so foreign keys hold.
func (s *GormSystemStore) ImportTenantData(ctx context.Context, tenantID uuid.UUID, payload *system.ImportPayload) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(payload.Safes) > 0 {
			rows := make([]*models.SafeModel, len(payload.Safes))
			for i := range payload.Safes {
				rows[i] = models.SafeModelFromDomain(&payload.Safes[i])
			}
			if err := upsertAll(tx, rows); err != nil {
				return err
			}
		}
		if len(payload.Units) > 0 {
			rows := make([]*models.UnitModel, len(payload.Units))
			for i := range payload.Units {
				rows[i] = models.UnitModelFromDomain(&payload.Units[i])
			}
			if err := upsertAll(tx, rows); err != nil {
				return err
			}
		}
		if len(payload.Customers) > 0 {
			rows := make([]*models.CustomerModel, len(payload.Customers))
			for i := range payload.Customers {
				rows[i] = models.CustomerModelFromDomain(&payload.Customers[i])
			}
			if err := upsertAll(tx, rows); err != nil {
				return err
			}
		}
		if len(payload.Brokers) > 0 {
			rows := make([]*models.BrokerModel, len(payload.Brokers))
			for i := range payload.Brokers {
				rows[i] = models.BrokerModelFromDomain(&payload.Brokers[i])
			}
			if err := upsertAll(tx, rows); err != nil {
				return err
			}
		}
		if len(payload.Partners) > 0 {
			rows := make([]*models.PartnerModel, len(payload.Partners))
			for i := range payload.Partners {
				rows[i] = models.PartnerModelFromDomain(&payload.Partners[i])
			}
			if err := upsertAll(tx, rows); err != nil {
				return err
			}
		}
		if len(payload.Vouchers) > 0 {
			rows := make([]*models.VoucherModel, len(payload.Vouchers))
			for i := range payload.Vouchers {
				rows[i] = models.VoucherModelFromDomain(&payload.Vouchers[i])
			}
			if err := upsertAll(tx, rows); err != nil {
				return err
			}
		}
		if len(payload.Transfers) > 0 {
			rows := make([]*models.TransferModel, len(payload.Transfers))
			for i := range payload.Transfers {
				rows[i] = models.TransferModelFromDomain(&payload.Transfers[i])
			}
			if err := upsertAll(tx, rows); err != nil {
				return err
			}
		}
		if len(payload.Contracts) > 0 {
			rows := make([]*models.ContractModel, len(payload.Contracts))
			for i := range payload.Contracts {
				rows[i] = models.ContractModelFromDomain(&payload.Contracts[i])
			}
			if err := upsertAll(tx, rows); err != nil {
				return err
			}
		}
		if len(payload.Installments) > 0 {
			rows := make([]*models.InstallmentModel, len(payload.Installments))
			for i := range payload.Installments {
				rows[i] = models.InstallmentModelFromDomain(&payload.Installments[i])
			}
			if err := upsertAll(tx, rows); err != nil {
				return err
			}
		}
		if len(payload.BrokerDues) > 0 {
			rows := make([]*models.BrokerDueModel, len(payload.BrokerDues))
			for i := range payload.BrokerDues {
				rows[i] = models.BrokerDueModelFromDomain(&payload.BrokerDues[i])
			}
			if err := upsertAll(tx, rows); err != nil {
				return err
			}
		}
		if len(payload.PartnerDebts) > 0 {
			rows := make([]*models.PartnerDebtModel, len(payload.PartnerDebts))
			for i := range payload.PartnerDebts {
				rows[i] = models.PartnerDebtModelFromDomain(&payload.PartnerDebts[i])
			}
			if err := upsertAll(tx, rows); err != nil {
				return err
			}
		}
		return nil
	})
}

// ResetTenantData hard deletes every row belonging to the tenant in one
// transaction, children before parents.
func (s *GormSystemStore) ResetTenantData(ctx context.Context, tenantID uuid.UUID) error {
	ordered := []any{
		&models.InstallmentModel{},
		&models.BrokerDueModel{},
		&models.ContractModel{},
		&models.PartnerDebtModel{},
		&models.VoucherModel{},
		&models.TransferModel{},
		&models.UnitModel{},
		&models.CustomerModel{},
		&models.BrokerModel{},
		&models.PartnerModel{},
		&models.SafeModel{},
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range ordered {
			if err := tx.Unscoped().Where("tenant_id = ?", tenantID).Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Ensure GormSystemStore implements the interface
var _ system.DataStore = (*GormSystemStore)(nil)
