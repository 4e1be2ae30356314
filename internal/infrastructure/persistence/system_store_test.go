package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/estateops/backend/internal/application/system"
	"github.com/estateops/backend/internal/domain/partner"
	"github.com/estateops/backend/internal/domain/property"
	"github.com/estateops/backend/internal/domain/treasury"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func importPayload(t *testing.T, tenantID uuid.UUID) *system.ImportPayload {
	t.Helper()
	safe, err := treasury.NewSafe(tenantID, "الخزنة الرئيسية", decimal.NewFromInt(1000))
	require.NoError(t, err)
	voucher, err := treasury.NewVoucher(tenantID, treasury.VoucherTypeReceipt,
		time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), decimal.NewFromInt(500), safe.ID, "رصيد مرحل")
	require.NoError(t, err)
	unit, err := property.NewUnit(tenantID, "A-101", "شقة", decimal.NewFromInt(700_000))
	require.NoError(t, err)
	customer, err := partner.NewCustomer(tenantID, "أحمد محمد", "01000000000")
	require.NoError(t, err)

	return &system.ImportPayload{
		Safes:     []treasury.Safe{*safe},
		Vouchers:  []treasury.Voucher{*voucher},
		Units:     []property.Unit{*unit},
		Customers: []partner.Customer{*customer},
	}
}

func TestGormSystemStore_ImportWritesAllTables(t *testing.T) {
	db := setupTestDB(t)
	store := NewGormSystemStore(db)
	ctx := context.Background()
	tenantID := uuid.New()
	payload := importPayload(t, tenantID)

	require.NoError(t, store.ImportTenantData(ctx, tenantID, payload))

	safe, err := NewGormSafeRepository(db).FindByIDForTenant(ctx, tenantID, payload.Safes[0].ID)
	require.NoError(t, err)
	require.NotNil(t, safe)
	assert.True(t, decimal.NewFromInt(1000).Equal(safe.Balance))

	voucher, err := NewGormVoucherRepository(db).FindByIDForTenant(ctx, tenantID, payload.Vouchers[0].ID)
	require.NoError(t, err)
	require.NotNil(t, voucher)

	unit, err := NewGormUnitRepository(db).FindByIDForTenant(ctx, tenantID, payload.Units[0].ID)
	require.NoError(t, err)
	require.NotNil(t, unit)
	assert.Equal(t, "A-101", unit.Code)

	customer, err := NewGormCustomerRepository(db).FindByIDForTenant(ctx, tenantID, payload.Customers[0].ID)
	require.NoError(t, err)
	require.NotNil(t, customer)
}

func TestGormSystemStore_ImportUpsertsByID(t *testing.T) {
	db := setupTestDB(t)
	store := NewGormSystemStore(db)
	ctx := context.Background()
	tenantID := uuid.New()
	payload := importPayload(t, tenantID)

	require.NoError(t, store.ImportTenantData(ctx, tenantID, payload))

	// Importing the same IDs again overwrites instead of duplicating.
	payload.Safes[0].Name = "الخزنة الرئيسية الجديدة"
	payload.Safes[0].Balance = decimal.NewFromInt(2500)
	require.NoError(t, store.ImportTenantData(ctx, tenantID, payload))

	repo := NewGormSafeRepository(db)
	count, err := repo.CountForTenant(ctx, tenantID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	safe, err := repo.FindByIDForTenant(ctx, tenantID, payload.Safes[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "الخزنة الرئيسية الجديدة", safe.Name)
	assert.True(t, decimal.NewFromInt(2500).Equal(safe.Balance))
}

func TestGormSystemStore_ResetWipesOnlyTenant(t *testing.T) {
	db := setupTestDB(t)
	store := NewGormSystemStore(db)
	ctx := context.Background()
	tenantID := uuid.New()
	otherTenant := uuid.New()

	require.NoError(t, store.ImportTenantData(ctx, tenantID, importPayload(t, tenantID)))
	require.NoError(t, store.ImportTenantData(ctx, otherTenant, importPayload(t, otherTenant)))

	require.NoError(t, store.ResetTenantData(ctx, tenantID))

	repo := NewGormSafeRepository(db)
	count, err := repo.CountForTenant(ctx, tenantID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	otherCount, err := repo.CountForTenant(ctx, otherTenant)
	require.NoError(t, err)
	assert.Equal(t, int64(1), otherCount)
}

func TestGormSystemStore_ResetRemovesSoftDeletedRows(t *testing.T) {
	db := setupTestDB(t)
	store := NewGormSystemStore(db)
	ctx := context.Background()
	tenantID := uuid.New()
	payload := importPayload(t, tenantID)

	require.NoError(t, store.ImportTenantData(ctx, tenantID, payload))
	repo := NewGormSafeRepository(db)
	require.NoError(t, repo.Delete(ctx, tenantID, payload.Safes[0].ID))

	require.NoError(t, store.ResetTenantData(ctx, tenantID))

	// The reset hard deletes rows the soft delete had only hidden.
	var raw int64
	require.NoError(t, db.WithContext(ctx).
		Table("safes").
		Unscoped().
		Where("tenant_id = ?", tenantID).
		Count(&raw).Error)
	assert.Equal(t, int64(0), raw)
}
