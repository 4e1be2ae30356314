package system

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/estateops/backend/internal/domain/partner"
	"github.com/estateops/backend/internal/domain/property"
	"github.com/estateops/backend/internal/domain/sales"
	"github.com/estateops/backend/internal/domain/shared"
	"github.com/estateops/backend/internal/domain/treasury"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeDataStore records the calls the service makes so tests can inspect the
// payload after stamping.
type fakeDataStore struct {
	imported    *ImportPayload
	importedFor uuid.UUID
	resetFor    uuid.UUID
	importErr   error
	resetErr    error
}

func (s *fakeDataStore) ImportTenantData(_ context.Context, tenantID uuid.UUID, payload *ImportPayload) error {
	if s.importErr != nil {
		return s.importErr
	}
	s.imported = payload
	s.importedFor = tenantID
	return nil
}

func (s *fakeDataStore) ResetTenantData(_ context.Context, tenantID uuid.UUID) error {
	if s.resetErr != nil {
		return s.resetErr
	}
	s.resetFor = tenantID
	return nil
}

func buildPayload(t *testing.T) *ImportPayload {
	t.Helper()
	foreign := uuid.New()

	safe, err := treasury.NewSafe(foreign, "الخزنة الرئيسية", decimal.NewFromInt(1000))
	require.NoError(t, err)
	voucher, err := treasury.NewVoucher(foreign, treasury.VoucherTypeReceipt, time.Now(), decimal.NewFromInt(500), safe.ID, "دفعة")
	require.NoError(t, err)
	unit, err := property.NewUnit(foreign, "A-101", "شقة", decimal.NewFromInt(900_000))
	require.NoError(t, err)
	customer, err := partner.NewCustomer(foreign, "أحمد", "")
	require.NoError(t, err)
	contract, err := sales.NewContract(
		foreign, unit.ID, customer.ID,
		time.Now(), decimal.NewFromInt(900_000), decimal.Zero, decimal.Zero, nil, 12,
	)
	require.NoError(t, err)
	installment, err := sales.NewInstallment(foreign, unit.ID, contract.ID, decimal.NewFromInt(75_000), time.Now().AddDate(0, 1, 0))
	require.NoError(t, err)

	return &ImportPayload{
		Safes:        []treasury.Safe{*safe},
		Vouchers:     []treasury.Voucher{*voucher},
		Units:        []property.Unit{*unit},
		Customers:    []partner.Customer{*customer},
		Contracts:    []sales.Contract{*contract},
		Installments: []sales.Installment{*installment},
	}
}

func TestSystemService_ImportStampsTenant(t *testing.T) {
	store := &fakeDataStore{}
	svc := NewSystemService(store, zap.NewNop())
	tenantID := uuid.New()
	payload := buildPayload(t)

	result, err := svc.Import(context.Background(), tenantID, payload)

	require.NoError(t, err)
	assert.Equal(t, 6, result.Imported)
	assert.Equal(t, tenantID, store.importedFor)

	// Every record lands under the importing tenant regardless of the
	// tenant IDs the payload carried.
	require.NotNil(t, store.imported)
	assert.Equal(t, tenantID, store.imported.Safes[0].TenantID)
	assert.Equal(t, tenantID, store.imported.Vouchers[0].TenantID)
	assert.Equal(t, tenantID, store.imported.Units[0].TenantID)
	assert.Equal(t, tenantID, store.imported.Customers[0].TenantID)
	assert.Equal(t, tenantID, store.imported.Contracts[0].TenantID)
	assert.Equal(t, tenantID, store.imported.Installments[0].TenantID)
}

func TestSystemService_ImportKeepsRecordIDs(t *testing.T) {
	store := &fakeDataStore{}
	svc := NewSystemService(store, zap.NewNop())
	payload := buildPayload(t)
	safeID := payload.Safes[0].ID
	voucherSafeID := payload.Vouchers[0].SafeID

	_, err := svc.Import(context.Background(), uuid.New(), payload)

	require.NoError(t, err)
	assert.Equal(t, safeID, store.imported.Safes[0].ID)
	assert.Equal(t, safeID, voucherSafeID)
}

func TestSystemService_ImportPropagatesStoreError(t *testing.T) {
	store := &fakeDataStore{importErr: shared.NewDomainError("CONFLICT", "تعذر استيراد البيانات")}
	svc := NewSystemService(store, zap.NewNop())

	_, err := svc.Import(context.Background(), uuid.New(), buildPayload(t))

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "CONFLICT", domainErr.Code)
}

func TestSystemService_Reset(t *testing.T) {
	store := &fakeDataStore{}
	svc := NewSystemService(store, zap.NewNop())
	tenantID := uuid.New()

	require.NoError(t, svc.Reset(context.Background(), tenantID))
	assert.Equal(t, tenantID, store.resetFor)
}

func TestSystemService_ResetPropagatesStoreError(t *testing.T) {
	store := &fakeDataStore{resetErr: errors.New("database unavailable")}
	svc := NewSystemService(store, zap.NewNop())

	err := svc.Reset(context.Background(), uuid.New())
	require.Error(t, err)
}

func TestImportPayload_Count(t *testing.T) {
	payload := buildPayload(t)
	assert.Equal(t, 6, payload.Count())
	assert.Equal(t, 0, (&ImportPayload{}).Count())
}
