package treasury

import (
	"errors"
	"testing"
	"time"

	"github.com/estateops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertDomainErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, code, domainErr.Code)
}

func createTestVoucher(t *testing.T, voucherType VoucherType) *Voucher {
	v, err := NewVoucher(
		uuid.New(),
		voucherType,
		time.Now(),
		decimal.NewFromInt(500),
		uuid.New(),
		"دفعة مقدمة",
	)
	require.NoError(t, err)
	return v
}

// ============================================
// VoucherType Tests
// ============================================

func TestVoucherType_IsValid(t *testing.T) {
	tests := []struct {
		voucherType VoucherType
		isValid     bool
	}{
		{VoucherTypeReceipt, true},
		{VoucherTypePayment, true},
		{VoucherType("TRANSFER"), false},
		{VoucherType(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.voucherType), func(t *testing.T) {
			assert.Equal(t, tt.isValid, tt.voucherType.IsValid())
		})
	}
}

func TestVoucherType_DisplayName(t *testing.T) {
	assert.Equal(t, "سند قبض", VoucherTypeReceipt.DisplayName())
	assert.Equal(t, "سند صرف", VoucherTypePayment.DisplayName())
}

// ============================================
// NewVoucher Tests
// ============================================

func TestNewVoucher_Success(t *testing.T) {
	tenantID := uuid.New()
	safeID := uuid.New()

	v, err := NewVoucher(tenantID, VoucherTypeReceipt, time.Now(), decimal.NewFromInt(1000), safeID, "حجز وحدة")

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, v.ID)
	assert.Equal(t, tenantID, v.TenantID)
	assert.Equal(t, safeID, v.SafeID)
	assert.Equal(t, VoucherTypeReceipt, v.Type)
	assert.True(t, decimal.NewFromInt(1000).Equal(v.Amount))
	assert.Nil(t, v.UnitID)
	assert.Equal(t, 1, v.Version)
}

func TestNewVoucher_ValidationErrors(t *testing.T) {
	tenantID := uuid.New()
	safeID := uuid.New()
	now := time.Now()
	amount := decimal.NewFromInt(100)

	tests := []struct {
		name        string
		voucherType VoucherType
		date        time.Time
		amount      decimal.Decimal
		safeID      uuid.UUID
		description string
		wantCode    string
	}{
		{"invalid type", VoucherType("BAD"), now, amount, safeID, "بيان", "INVALID_TYPE"},
		{"zero date", VoucherTypeReceipt, time.Time{}, amount, safeID, "بيان", "INVALID_DATE"},
		{"zero amount", VoucherTypeReceipt, now, decimal.Zero, safeID, "بيان", "INVALID_AMOUNT"},
		{"negative amount", VoucherTypePayment, now, decimal.NewFromInt(-5), safeID, "بيان", "INVALID_AMOUNT"},
		{"nil safe", VoucherTypeReceipt, now, amount, uuid.Nil, "بيان", "INVALID_SAFE"},
		{"empty description", VoucherTypeReceipt, now, amount, safeID, "", "INVALID_DESCRIPTION"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewVoucher(tenantID, tt.voucherType, tt.date, tt.amount, tt.safeID, tt.description)
			require.Error(t, err)
			assertDomainErrorCode(t, err, tt.wantCode)
		})
	}
}

// ============================================
// SignedAmount Tests
// ============================================

func TestVoucher_SignedAmount(t *testing.T) {
	receipt := createTestVoucher(t, VoucherTypeReceipt)
	payment := createTestVoucher(t, VoucherTypePayment)

	assert.True(t, decimal.NewFromInt(500).Equal(receipt.SignedAmount()))
	assert.True(t, decimal.NewFromInt(-500).Equal(payment.SignedAmount()))
}

// ============================================
// Apply Tests
// ============================================

func TestVoucher_Apply_AmountChange(t *testing.T) {
	v := createTestVoucher(t, VoucherTypeReceipt)
	originalSafe := v.SafeID
	newAmount := decimal.NewFromInt(750)

	oldSigned, oldSafeID, err := v.Apply(VoucherPatch{Amount: &newAmount})

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(500).Equal(oldSigned))
	assert.Equal(t, originalSafe, oldSafeID)
	assert.True(t, newAmount.Equal(v.Amount))
	assert.Equal(t, 2, v.Version)
}

func TestVoucher_Apply_TypeFlip(t *testing.T) {
	v := createTestVoucher(t, VoucherTypeReceipt)
	payment := VoucherTypePayment

	oldSigned, _, err := v.Apply(VoucherPatch{Type: &payment})

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(500).Equal(oldSigned))
	assert.True(t, decimal.NewFromInt(-500).Equal(v.SignedAmount()))
}

func TestVoucher_Apply_SafeMove(t *testing.T) {
	v := createTestVoucher(t, VoucherTypePayment)
	originalSafe := v.SafeID
	newSafe := uuid.New()

	oldSigned, oldSafeID, err := v.Apply(VoucherPatch{SafeID: &newSafe})

	require.NoError(t, err)
	assert.Equal(t, originalSafe, oldSafeID)
	assert.True(t, decimal.NewFromInt(-500).Equal(oldSigned))
	assert.Equal(t, newSafe, v.SafeID)
}

func TestVoucher_Apply_ValidationErrors(t *testing.T) {
	badType := VoucherType("BAD")
	zeroDate := time.Time{}
	negAmount := decimal.NewFromInt(-1)
	nilSafe := uuid.Nil
	empty := ""

	tests := []struct {
		name     string
		patch    VoucherPatch
		wantCode string
	}{
		{"invalid type", VoucherPatch{Type: &badType}, "INVALID_TYPE"},
		{"zero date", VoucherPatch{Date: &zeroDate}, "INVALID_DATE"},
		{"negative amount", VoucherPatch{Amount: &negAmount}, "INVALID_AMOUNT"},
		{"nil safe", VoucherPatch{SafeID: &nilSafe}, "INVALID_SAFE"},
		{"empty description", VoucherPatch{Description: &empty}, "INVALID_DESCRIPTION"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := createTestVoucher(t, VoucherTypeReceipt)
			_, _, err := v.Apply(tt.patch)
			require.Error(t, err)
			assertDomainErrorCode(t, err, tt.wantCode)
			// Failed patches must not bump the version.
			assert.Equal(t, 1, v.Version)
		})
	}
}

func TestVoucher_LinkUnit(t *testing.T) {
	v := createTestVoucher(t, VoucherTypeReceipt)
	unitID := uuid.New()

	v.LinkUnit(unitID)

	require.NotNil(t, v.UnitID)
	assert.Equal(t, unitID, *v.UnitID)
}

func TestVoucher_SetParties(t *testing.T) {
	v := createTestVoucher(t, VoucherTypePayment)

	v.SetParties("أحمد علي", "شركة المقاولات")

	assert.Equal(t, "أحمد علي", v.Payer)
	assert.Equal(t, "شركة المقاولات", v.Beneficiary)
}
