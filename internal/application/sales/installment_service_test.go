package sales

import (
	"context"
	"testing"
	"time"

	"github.com/estateops/backend/internal/domain/property"
	"github.com/estateops/backend/internal/domain/sales"
	"github.com/estateops/backend/internal/domain/treasury"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// installmentFixture builds a reserved unit with a live contract and schedule.
type installmentFixture struct {
	*salesFixture
	unitID     uuid.UUID
	contractID uuid.UUID
	schedule   []InstallmentResponse
}

func newInstallmentFixture(t *testing.T, installmentCount int) *installmentFixture {
	t.Helper()
	f := newSalesFixture(t)
	ctx := context.Background()
	unit := f.addUnit(t, "B-201")
	customer := f.addCustomer(t)

	resp, err := f.contracts.CreateContract(ctx, f.tenantID, CreateContractRequest{
		UnitID:           unit.ID,
		CustomerID:       customer.ID,
		ContractDate:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		TotalPrice:       decimal.NewFromInt(int64(installmentCount) * 10_000),
		InstallmentCount: installmentCount,
	})
	require.NoError(t, err)

	contractID := resp.ID
	schedule, _, err := f.installments.ListInstallments(ctx, f.tenantID, InstallmentListFilter{ContractID: &contractID})
	require.NoError(t, err)
	require.Len(t, schedule, installmentCount)

	return &installmentFixture{
		salesFixture: f,
		unitID:       unit.ID,
		contractID:   contractID,
		schedule:     schedule,
	}
}

func (f *installmentFixture) addSafe(t *testing.T, balance int64) *treasury.Safe {
	t.Helper()
	safe, err := treasury.NewSafe(f.tenantID, "خزنة التحصيل", decimal.NewFromInt(balance))
	require.NoError(t, err)
	require.NoError(t, f.safeRepo.Save(context.Background(), safe))
	return safe
}

func TestInstallmentService_MarkPaidPostsReceiptVoucher(t *testing.T) {
	f := newInstallmentFixture(t, 3)
	ctx := context.Background()
	safe := f.addSafe(t, 0)

	resp, err := f.installments.PatchStatus(ctx, f.tenantID, f.schedule[0].ID, PatchInstallmentStatusRequest{
		Status: "PAID",
		SafeID: &safe.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, "PAID", resp.Status)
	require.NotNil(t, resp.PaidAt)

	// A linked receipt voucher landed in the safe with the installment amount.
	assert.True(t, decimal.NewFromInt(10_000).Equal(f.safeRepo.safes[safe.ID].Balance))
	require.Len(t, f.voucherRepo.vouchers, 1)
	for _, v := range f.voucherRepo.vouchers {
		assert.Equal(t, treasury.VoucherTypeReceipt, v.Type)
		require.NotNil(t, v.UnitID)
		assert.Equal(t, f.unitID, *v.UnitID)
	}

	// Two installments still pending: the unit stays reserved.
	assert.Equal(t, property.UnitStatusReserved, f.unitRepo.units[f.unitID].Status)
}

func TestInstallmentService_MarkPaidWithoutSafeSkipsVoucher(t *testing.T) {
	f := newInstallmentFixture(t, 2)
	ctx := context.Background()

	_, err := f.installments.PatchStatus(ctx, f.tenantID, f.schedule[0].ID, PatchInstallmentStatusRequest{Status: "PAID"})

	require.NoError(t, err)
	assert.Empty(t, f.voucherRepo.vouchers)
}

func TestInstallmentService_LastPaymentSellsUnit(t *testing.T) {
	f := newInstallmentFixture(t, 2)
	ctx := context.Background()

	_, err := f.installments.PatchStatus(ctx, f.tenantID, f.schedule[0].ID, PatchInstallmentStatusRequest{Status: "PAID"})
	require.NoError(t, err)
	assert.Equal(t, property.UnitStatusReserved, f.unitRepo.units[f.unitID].Status)

	_, err = f.installments.PatchStatus(ctx, f.tenantID, f.schedule[1].ID, PatchInstallmentStatusRequest{Status: "PAID"})
	require.NoError(t, err)
	assert.Equal(t, property.UnitStatusSold, f.unitRepo.units[f.unitID].Status)
}

func TestInstallmentService_MarkPaidTwiceRejected(t *testing.T) {
	f := newInstallmentFixture(t, 1)
	ctx := context.Background()

	_, err := f.installments.PatchStatus(ctx, f.tenantID, f.schedule[0].ID, PatchInstallmentStatusRequest{Status: "PAID"})
	require.NoError(t, err)

	_, err = f.installments.PatchStatus(ctx, f.tenantID, f.schedule[0].ID, PatchInstallmentStatusRequest{Status: "PAID"})
	requireDomainCode(t, err, "INVALID_STATE")
}

func TestInstallmentService_MarkPendingReverts(t *testing.T) {
	f := newInstallmentFixture(t, 1)
	ctx := context.Background()

	_, err := f.installments.PatchStatus(ctx, f.tenantID, f.schedule[0].ID, PatchInstallmentStatusRequest{Status: "PAID"})
	require.NoError(t, err)

	resp, err := f.installments.PatchStatus(ctx, f.tenantID, f.schedule[0].ID, PatchInstallmentStatusRequest{Status: "PENDING"})
	require.NoError(t, err)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Nil(t, resp.PaidAt)
}

func TestInstallmentService_MarkPaidOnMissingSafe(t *testing.T) {
	f := newInstallmentFixture(t, 1)
	ctx := context.Background()
	missing := uuid.New()

	_, err := f.installments.PatchStatus(ctx, f.tenantID, f.schedule[0].ID, PatchInstallmentStatusRequest{
		Status: "PAID",
		SafeID: &missing,
	})

	requireDomainCode(t, err, "NOT_FOUND")
	assert.Empty(t, f.voucherRepo.vouchers)
}

func TestInstallmentService_CreateManualInstallment(t *testing.T) {
	f := newInstallmentFixture(t, 1)
	ctx := context.Background()

	resp, err := f.installments.CreateInstallment(ctx, f.tenantID, CreateInstallmentRequest{
		ContractID: f.contractID,
		Amount:     decimal.NewFromInt(5_000),
		DueDate:    time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Notes:      "قسط مقدم",
	})

	require.NoError(t, err)
	assert.Equal(t, f.unitID, resp.UnitID)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, "قسط مقدم", resp.Notes)
}

func TestInstallmentService_CreateOnMissingContract(t *testing.T) {
	f := newSalesFixture(t)

	_, err := f.installments.CreateInstallment(context.Background(), f.tenantID, CreateInstallmentRequest{
		ContractID: uuid.New(),
		Amount:     decimal.NewFromInt(100),
		DueDate:    time.Now(),
	})

	requireDomainCode(t, err, "NOT_FOUND")
}

func TestInstallmentService_UpdatePaidInstallmentRejected(t *testing.T) {
	f := newInstallmentFixture(t, 1)
	ctx := context.Background()

	_, err := f.installments.PatchStatus(ctx, f.tenantID, f.schedule[0].ID, PatchInstallmentStatusRequest{Status: "PAID"})
	require.NoError(t, err)

	newAmount := decimal.NewFromInt(1)
	_, err = f.installments.UpdateInstallment(ctx, f.tenantID, f.schedule[0].ID, UpdateInstallmentRequest{Amount: &newAmount})
	requireDomainCode(t, err, "INVALID_STATE")
}

func TestInstallmentService_ListFiltersByStatus(t *testing.T) {
	f := newInstallmentFixture(t, 3)
	ctx := context.Background()

	_, err := f.installments.PatchStatus(ctx, f.tenantID, f.schedule[0].ID, PatchInstallmentStatusRequest{Status: "PAID"})
	require.NoError(t, err)

	paid, total, err := f.installments.ListInstallments(ctx, f.tenantID, InstallmentListFilter{Status: "PAID"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, paid, 1)

	pending, total, err := f.installments.ListInstallments(ctx, f.tenantID, InstallmentListFilter{Status: "PENDING"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, pending, 2)

	// Overdue is derived from the due date, never stored.
	for _, inst := range pending {
		if inst.DueDate.Before(time.Now().UTC()) {
			assert.True(t, inst.Overdue)
		}
	}
}

func TestInstallmentService_DeleteInstallment(t *testing.T) {
	f := newInstallmentFixture(t, 2)
	ctx := context.Background()

	require.NoError(t, f.installments.DeleteInstallment(ctx, f.tenantID, f.schedule[0].ID))
	assert.Len(t, f.installmentRepo.installments, 1)

	requireDomainCode(t, f.installments.DeleteInstallment(ctx, f.tenantID, uuid.New()), "NOT_FOUND")
}

func TestInstallmentFixture_ScheduleBelongsToContract(t *testing.T) {
	f := newInstallmentFixture(t, 4)
	for _, inst := range f.schedule {
		assert.Equal(t, f.contractID, inst.ContractID)
		assert.Equal(t, sales.InstallmentStatusPending.String(), inst.Status)
	}
}
