package report

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

// ============================================================
// In-memory fakes. Only the aggregate queries carry state; the
// dashboard never goes through the CRUD paths.
// ============================================================

type fakeSafeRepo struct {
	safes map[uuid.UUID]*treasury.Safe
}

func newFakeSafeRepo() *fakeSafeRepo {
	return &fakeSafeRepo{safes: make(map[uuid.UUID]*treasury.Safe)}
}

func (r *fakeSafeRepo) FindByID(_ context.Context, id uuid.UUID) (*treasury.Safe, error) {
	return r.safes[id], nil
}

func (r *fakeSafeRepo) FindByIDForTenant(_ context.Context, tenantID, id uuid.UUID) (*treasury.Safe, error) {
	safe, ok := r.safes[id]
	if !ok || safe.TenantID != tenantID {
		return nil, nil
	}
	return safe, nil
}

func (r *fakeSafeRepo) FindByName(_ context.Context, tenantID uuid.UUID, name string) (*treasury.Safe, error) {
	for _, safe := range r.safes {
		if safe.TenantID == tenantID && safe.Name == name {
			return safe, nil
		}
	}
	return nil, nil
}

func (r *fakeSafeRepo) FindAllForTenant(_ context.Context, tenantID uuid.UUID, _, _ int) ([]treasury.Safe, error) {
	var out []treasury.Safe
	for _, safe := range r.safes {
		if safe.TenantID == tenantID {
			out = append(out, *safe)
		}
	}
	return out, nil
}

func (r *fakeSafeRepo) CountForTenant(_ context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64
	for _, safe := range r.safes {
		if safe.TenantID == tenantID {
			count++
		}
	}
	return count, nil
}

func (r *fakeSafeRepo) Save(_ context.Context, safe *treasury.Safe) error {
	r.safes[safe.ID] = safe
	return nil
}

func (r *fakeSafeRepo) Delete(_ context.Context, tenantID, id uuid.UUID) error {
	safe, ok := r.safes[id]
	if ok && safe.TenantID == tenantID {
		delete(r.safes, id)
	}
	return nil
}

func (r *fakeSafeRepo) ExistsByName(ctx context.Context, tenantID uuid.UUID, name string) (bool, error) {
	safe, err := r.FindByName(ctx, tenantID, name)
	return safe != nil, err
}

func (r *fakeSafeRepo) AdjustBalance(_ context.Context, tenantID, id uuid.UUID, delta decimal.Decimal) error {
	safe, ok := r.safes[id]
	if ok && safe.TenantID == tenantID {
		safe.Balance = safe.Balance.Add(delta)
	}
	return nil
}

func (r *fakeSafeRepo) TotalBalance(_ context.Context, tenantID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, safe := range r.safes {
		if safe.TenantID == tenantID {
			total = total.Add(safe.Balance)
		}
	}
	return total, nil
}

type fakeVoucherRepo struct {
	vouchers map[uuid.UUID]*treasury.Voucher
}

func newFakeVoucherRepo() *fakeVoucherRepo {
	return &fakeVoucherRepo{vouchers: make(map[uuid.UUID]*treasury.Voucher)}
}

func (r *fakeVoucherRepo) FindByID(_ context.Context, id uuid.UUID) (*treasury.Voucher, error) {
	return r.vouchers[id], nil
}

func (r *fakeVoucherRepo) FindByIDForTenant(_ context.Context, tenantID, id uuid.UUID) (*treasury.Voucher, error) {
	v, ok := r.vouchers[id]
	if !ok || v.TenantID != tenantID {
		return nil, nil
	}
	return v, nil
}

func (r *fakeVoucherRepo) FindAllForTenant(_ context.Context, tenantID uuid.UUID, _ treasury.VoucherFilter) ([]treasury.Voucher, error) {
	var out []treasury.Voucher
	for _, v := range r.vouchers {
		if v.TenantID == tenantID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *fakeVoucherRepo) CountForTenant(_ context.Context, tenantID uuid.UUID, _ treasury.VoucherFilter) (int64, error) {
	var count int64
	for _, v := range r.vouchers {
		if v.TenantID == tenantID {
			count++
		}
	}
	return count, nil
}

func (r *fakeVoucherRepo) Save(_ context.Context, v *treasury.Voucher) error {
	r.vouchers[v.ID] = v
	return nil
}

func (r *fakeVoucherRepo) Delete(_ context.Context, tenantID, id uuid.UUID) error {
	v, ok := r.vouchers[id]
	if ok && v.TenantID == tenantID {
		delete(r.vouchers, id)
	}
	return nil
}

func (r *fakeVoucherRepo) CountBySafe(_ context.Context, tenantID, safeID uuid.UUID) (int64, error) {
	var count int64
	for _, v := range r.vouchers {
		if v.TenantID == tenantID && v.SafeID == safeID {
			count++
		}
	}
	return count, nil
}

func (r *fakeVoucherRepo) SumByType(_ context.Context, tenantID uuid.UUID, voucherType treasury.VoucherType, from, to *time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, v := range r.vouchers {
		if v.TenantID != tenantID || v.Type != voucherType {
			continue
		}
		if from != nil && v.Date.Before(*from) {
			continue
		}
		if to != nil && !v.Date.Before(*to) {
			continue
		}
		total = total.Add(v.Amount)
	}
	return total, nil
}

type fakeUnitRepo struct {
	units map[uuid.UUID]*property.Unit
}

func newFakeUnitRepo() *fakeUnitRepo {
	return &fakeUnitRepo{units: make(map[uuid.UUID]*property.Unit)}
}

func (r *fakeUnitRepo) FindByID(_ context.Context, id uuid.UUID) (*property.Unit, error) {
	return r.units[id], nil
}

func (r *fakeUnitRepo) FindByIDForTenant(_ context.Context, tenantID, id uuid.UUID) (*property.Unit, error) {
	unit, ok := r.units[id]
	if !ok || unit.TenantID != tenantID {
		return nil, nil
	}
	return unit, nil
}

func (r *fakeUnitRepo) FindByCode(_ context.Context, tenantID uuid.UUID, code string) (*property.Unit, error) {
	for _, unit := range r.units {
		if unit.TenantID == tenantID && unit.Code == code {
			return unit, nil
		}
	}
	return nil, nil
}

func (r *fakeUnitRepo) FindAllForTenant(_ context.Context, tenantID uuid.UUID, _ property.UnitFilter) ([]property.Unit, error) {
	var out []property.Unit
	for _, unit := range r.units {
		if unit.TenantID == tenantID {
			out = append(out, *unit)
		}
	}
	return out, nil
}

func (r *fakeUnitRepo) CountForTenant(_ context.Context, tenantID uuid.UUID, _ property.UnitFilter) (int64, error) {
	var count int64
	for _, unit := range r.units {
		if unit.TenantID == tenantID {
			count++
		}
	}
	return count, nil
}

func (r *fakeUnitRepo) CountByStatus(_ context.Context, tenantID uuid.UUID, status property.UnitStatus) (int64, error) {
	var count int64
	for _, unit := range r.units {
		if unit.TenantID == tenantID && unit.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *fakeUnitRepo) Save(_ context.Context, unit *property.Unit) error {
	r.units[unit.ID] = unit
	return nil
}

func (r *fakeUnitRepo) Delete(_ context.Context, tenantID, id uuid.UUID) error {
	unit, ok := r.units[id]
	if ok && unit.TenantID == tenantID {
		delete(r.units, id)
	}
	return nil
}

func (r *fakeUnitRepo) ExistsByCode(ctx context.Context, tenantID uuid.UUID, code string) (bool, error) {
	unit, err := r.FindByCode(ctx, tenantID, code)
	return unit != nil, err
}

type fakeInstallmentRepo struct {
	installments map[uuid.UUID]*sales.Installment
}

func newFakeInstallmentRepo() *fakeInstallmentRepo {
	return &fakeInstallmentRepo{installments: make(map[uuid.UUID]*sales.Installment)}
}

func (r *fakeInstallmentRepo) FindByID(_ context.Context, id uuid.UUID) (*sales.Installment, error) {
	return r.installments[id], nil
}

func (r *fakeInstallmentRepo) FindByIDForTenant(_ context.Context, tenantID, id uuid.UUID) (*sales.Installment, error) {
	inst, ok := r.installments[id]
	if !ok || inst.TenantID != tenantID {
		return nil, nil
	}
	return inst, nil
}

func (r *fakeInstallmentRepo) FindAllForTenant(_ context.Context, tenantID uuid.UUID, _ sales.InstallmentFilter) ([]sales.Installment, error) {
	var out []sales.Installment
	for _, inst := range r.installments {
		if inst.TenantID == tenantID {
			out = append(out, *inst)
		}
	}
	return out, nil
}

func (r *fakeInstallmentRepo) CountForTenant(_ context.Context, tenantID uuid.UUID, _ sales.InstallmentFilter) (int64, error) {
	var count int64
	for _, inst := range r.installments {
		if inst.TenantID == tenantID {
			count++
		}
	}
	return count, nil
}

func (r *fakeInstallmentRepo) CountByUnit(_ context.Context, tenantID, unitID uuid.UUID) (int64, error) {
	var count int64
	for _, inst := range r.installments {
		if inst.TenantID == tenantID && inst.UnitID == unitID {
			count++
		}
	}
	return count, nil
}

func (r *fakeInstallmentRepo) CountPendingByUnit(_ context.Context, tenantID, unitID uuid.UUID) (int64, error) {
	var count int64
	for _, inst := range r.installments {
		if inst.TenantID == tenantID && inst.UnitID == unitID && inst.Status == sales.InstallmentStatusPending {
			count++
		}
	}
	return count, nil
}

func (r *fakeInstallmentRepo) CountOverdue(_ context.Context, tenantID uuid.UUID, now time.Time) (int64, error) {
	var count int64
	for _, inst := range r.installments {
		if inst.TenantID == tenantID && inst.Status == sales.InstallmentStatusPending && inst.DueDate.Before(now) {
			count++
		}
	}
	return count, nil
}

func (r *fakeInstallmentRepo) Save(_ context.Context, inst *sales.Installment) error {
	r.installments[inst.ID] = inst
	return nil
}

func (r *fakeInstallmentRepo) SaveAll(ctx context.Context, installments []*sales.Installment) error {
	for _, inst := range installments {
		if err := r.Save(ctx, inst); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeInstallmentRepo) Delete(_ context.Context, tenantID, id uuid.UUID) error {
	inst, ok := r.installments[id]
	if ok && inst.TenantID == tenantID {
		delete(r.installments, id)
	}
	return nil
}

// ============================================================
// Fixture
// ============================================================

type dashboardFixture struct {
	tenantID        uuid.UUID
	safeRepo        *fakeSafeRepo
	voucherRepo     *fakeVoucherRepo
	unitRepo        *fakeUnitRepo
	installmentRepo *fakeInstallmentRepo
	dashboard       *DashboardService
}

func newDashboardFixture(t *testing.T) *dashboardFixture {
	t.Helper()
	f := &dashboardFixture{
		tenantID:        uuid.New(),
		safeRepo:        newFakeSafeRepo(),
		voucherRepo:     newFakeVoucherRepo(),
		unitRepo:        newFakeUnitRepo(),
		installmentRepo: newFakeInstallmentRepo(),
	}
	f.dashboard = NewDashboardService(f.safeRepo, f.voucherRepo, f.unitRepo, f.installmentRepo)
	return f
}

func (f *dashboardFixture) addSafe(t *testing.T, name string, balance int64) {
	t.Helper()
	safe, err := treasury.NewSafe(f.tenantID, name, decimal.NewFromInt(balance))
	require.NoError(t, err)
	require.NoError(t, f.safeRepo.Save(context.Background(), safe))
}

func (f *dashboardFixture) addUnit(t *testing.T, code string, status property.UnitStatus) {
	t.Helper()
	unit, err := property.NewUnit(f.tenantID, code, "شقة", decimal.NewFromInt(500_000))
	require.NoError(t, err)
	unit.Status = status
	require.NoError(t, f.unitRepo.Save(context.Background(), unit))
}

func (f *dashboardFixture) addVoucher(t *testing.T, voucherType treasury.VoucherType, amount int64, date time.Time) {
	t.Helper()
	voucher, err := treasury.NewVoucher(f.tenantID, voucherType, date, decimal.NewFromInt(amount), uuid.New(), "حركة")
	require.NoError(t, err)
	require.NoError(t, f.voucherRepo.Save(context.Background(), voucher))
}

// ============================================================
// Tests
// ============================================================

func TestDashboardService_Summary(t *testing.T) {
	f := newDashboardFixture(t)
	ctx := context.Background()
	now := time.Now().UTC()

	f.addSafe(t, "الخزنة الرئيسية", 10_000)
	f.addSafe(t, "خزنة الفرع", 5_000)

	f.addUnit(t, "A-101", property.UnitStatusAvailable)
	f.addUnit(t, "A-102", property.UnitStatusAvailable)
	f.addUnit(t, "A-103", property.UnitStatusReserved)
	f.addUnit(t, "A-104", property.UnitStatusSold)

	f.addVoucher(t, treasury.VoucherTypeReceipt, 3_000, now)
	f.addVoucher(t, treasury.VoucherTypePayment, 1_000, now)
	// Vouchers outside the current month stay out of the monthly figures.
	f.addVoucher(t, treasury.VoucherTypeReceipt, 9_000, now.AddDate(0, -2, 0))

	overdue, err := sales.NewInstallment(f.tenantID, uuid.New(), uuid.New(), decimal.NewFromInt(100), now.AddDate(0, 0, -5))
	require.NoError(t, err)
	require.NoError(t, f.installmentRepo.Save(ctx, overdue))
	upcoming, err := sales.NewInstallment(f.tenantID, uuid.New(), uuid.New(), decimal.NewFromInt(100), now.AddDate(0, 1, 0))
	require.NoError(t, err)
	require.NoError(t, f.installmentRepo.Save(ctx, upcoming))

	summary, err := f.dashboard.Summary(ctx, f.tenantID)

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(15_000).Equal(summary.TotalBalance))
	assert.Equal(t, int64(2), summary.AvailableUnits)
	assert.Equal(t, int64(1), summary.ReservedUnits)
	assert.Equal(t, int64(1), summary.SoldUnits)
	assert.True(t, decimal.NewFromInt(3_000).Equal(summary.MonthReceipts))
	assert.True(t, decimal.NewFromInt(1_000).Equal(summary.MonthPayments))
	assert.Equal(t, int64(1), summary.OverdueInstallments)
}

func TestDashboardService_EmptyTenant(t *testing.T) {
	f := newDashboardFixture(t)

	summary, err := f.dashboard.Summary(context.Background(), f.tenantID)

	require.NoError(t, err)
	assert.True(t, summary.TotalBalance.IsZero())
	assert.Equal(t, int64(0), summary.AvailableUnits)
	assert.Equal(t, int64(0), summary.OverdueInstallments)
}

func TestDashboardService_IgnoresOtherTenants(t *testing.T) {
	f := newDashboardFixture(t)
	ctx := context.Background()

	other, err := treasury.NewSafe(uuid.New(), "خزنة أخرى", decimal.NewFromInt(7_000))
	require.NoError(t, err)
	require.NoError(t, f.safeRepo.Save(ctx, other))
	f.addSafe(t, "الخزنة الرئيسية", 1_000)

	summary, err := f.dashboard.Summary(ctx, f.tenantID)

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1_000).Equal(summary.TotalBalance))
}
