package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/estateops/backend/internal/domain/sales"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustContract(t *testing.T, tenantID, unitID, customerID uuid.UUID) *sales.Contract {
	t.Helper()
	contract, err := sales.NewContract(
		tenantID, unitID, customerID,
		time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		decimal.NewFromInt(800_000), decimal.Zero, decimal.Zero, nil, 12,
	)
	require.NoError(t, err)
	return contract
}

func TestGormContractRepository_FindActiveByUnit(t *testing.T) {
	repo := NewGormContractRepository(setupTestDB(t))
	ctx := context.Background()
	tenantID := uuid.New()
	unitID := uuid.New()

	active, err := repo.FindActiveByUnit(ctx, tenantID, unitID)
	require.NoError(t, err)
	assert.Nil(t, active)

	contract := mustContract(t, tenantID, unitID, uuid.New())
	require.NoError(t, repo.Save(ctx, contract))

	active, err = repo.FindActiveByUnit(ctx, tenantID, unitID)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, contract.ID, active.ID)

	// A cancelled contract frees the unit for a new one.
	require.NoError(t, repo.Delete(ctx, tenantID, contract.ID))
	active, err = repo.FindActiveByUnit(ctx, tenantID, unitID)
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestGormContractRepository_SaveRoundTrip(t *testing.T) {
	repo := NewGormContractRepository(setupTestDB(t))
	ctx := context.Background()
	tenantID := uuid.New()
	brokerID := uuid.New()

	contract, err := sales.NewContract(
		tenantID, uuid.New(), uuid.New(),
		time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		decimal.NewFromInt(1_000_000), decimal.NewFromInt(50_000), decimal.NewFromInt(2), nil, 24,
	)
	require.NoError(t, err)
	contract.BrokerID = &brokerID
	require.NoError(t, repo.Save(ctx, contract))

	found, err := repo.FindByIDForTenant(ctx, tenantID, contract.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.True(t, decimal.NewFromInt(50_000).Equal(found.DiscountAmount))
	assert.True(t, decimal.NewFromInt(20_000).Equal(found.BrokerAmount))
	assert.Equal(t, 24, found.InstallmentCount)
	require.NotNil(t, found.BrokerID)
	assert.Equal(t, brokerID, *found.BrokerID)
}

func TestGormContractRepository_CountByParty(t *testing.T) {
	repo := NewGormContractRepository(setupTestDB(t))
	ctx := context.Background()
	tenantID := uuid.New()
	customerID := uuid.New()
	brokerID := uuid.New()

	first := mustContract(t, tenantID, uuid.New(), customerID)
	first.BrokerID = &brokerID
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, mustContract(t, tenantID, uuid.New(), customerID)))
	require.NoError(t, repo.Save(ctx, mustContract(t, tenantID, uuid.New(), uuid.New())))

	byCustomer, err := repo.CountByCustomer(ctx, tenantID, customerID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), byCustomer)

	byBroker, err := repo.CountByBroker(ctx, tenantID, brokerID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), byBroker)
}

func TestGormInstallmentRepository_ScheduleQueries(t *testing.T) {
	repo := NewGormInstallmentRepository(setupTestDB(t))
	ctx := context.Background()
	tenantID := uuid.New()
	unitID := uuid.New()
	contractID := uuid.New()
	base := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	var batch []*sales.Installment
	for i := 0; i < 3; i++ {
		inst, err := sales.NewInstallment(tenantID, unitID, contractID, decimal.NewFromInt(10_000), base.AddDate(0, i, 0))
		require.NoError(t, err)
		batch = append(batch, inst)
	}
	require.NoError(t, repo.SaveAll(ctx, batch))

	all, err := repo.FindAllForTenant(ctx, tenantID, sales.InstallmentFilter{ContractID: &contractID})
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Ordered by due date.
	assert.Equal(t, base, all[0].DueDate.UTC())
	assert.Equal(t, base.AddDate(0, 2, 0), all[2].DueDate.UTC())

	require.NoError(t, all[0].MarkPaid(""))
	require.NoError(t, repo.Save(ctx, &all[0]))

	pending, err := repo.CountPendingByUnit(ctx, tenantID, unitID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), pending)

	total, err := repo.CountByUnit(ctx, tenantID, unitID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestGormInstallmentRepository_CountOverdue(t *testing.T) {
	repo := NewGormInstallmentRepository(setupTestDB(t))
	ctx := context.Background()
	tenantID := uuid.New()
	now := time.Now().UTC()

	late, err := sales.NewInstallment(tenantID, uuid.New(), uuid.New(), decimal.NewFromInt(100), now.AddDate(0, 0, -10))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, late))

	latePaid, err := sales.NewInstallment(tenantID, uuid.New(), uuid.New(), decimal.NewFromInt(100), now.AddDate(0, 0, -10))
	require.NoError(t, err)
	require.NoError(t, latePaid.MarkPaid(""))
	require.NoError(t, repo.Save(ctx, latePaid))

	upcoming, err := sales.NewInstallment(tenantID, uuid.New(), uuid.New(), decimal.NewFromInt(100), now.AddDate(0, 1, 0))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, upcoming))

	overdue, err := repo.CountOverdue(ctx, tenantID, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), overdue)
}

func TestGormInstallmentRepository_SoftDelete(t *testing.T) {
	repo := NewGormInstallmentRepository(setupTestDB(t))
	ctx := context.Background()
	tenantID := uuid.New()
	unitID := uuid.New()

	inst, err := sales.NewInstallment(tenantID, unitID, uuid.New(), decimal.NewFromInt(100), time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, inst))

	require.NoError(t, repo.Delete(ctx, tenantID, inst.ID))

	found, err := repo.FindByIDForTenant(ctx, tenantID, inst.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	count, err := repo.CountByUnit(ctx, tenantID, unitID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
