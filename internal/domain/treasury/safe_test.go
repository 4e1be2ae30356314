package treasury

import (
	"errors"
	"strings"
	"testing"

	"github.com/estateops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSafe_Success(t *testing.T) {
	tenantID := uuid.New()

	s, err := NewSafe(tenantID, "الخزنة الرئيسية", decimal.NewFromInt(1000))

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.Equal(t, tenantID, s.TenantID)
	assert.Equal(t, "الخزنة الرئيسية", s.Name)
	assert.True(t, decimal.NewFromInt(1000).Equal(s.Balance))
	assert.Equal(t, 1, s.Version)
}

func TestNewSafe_ZeroOpeningBalance(t *testing.T) {
	s, err := NewSafe(uuid.New(), "خزنة فرعية", decimal.Zero)

	require.NoError(t, err)
	assert.True(t, s.Balance.IsZero())
}

func TestNewSafe_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		safeName string
		balance  decimal.Decimal
		wantCode string
	}{
		{"empty name", "", decimal.Zero, "INVALID_NAME"},
		{"name too long", strings.Repeat("x", 101), decimal.Zero, "INVALID_NAME"},
		{"negative opening balance", "خزنة", decimal.NewFromInt(-1), "INVALID_AMOUNT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSafe(uuid.New(), tt.safeName, tt.balance)
			require.Error(t, err)
			assertDomainErrorCode(t, err, tt.wantCode)
		})
	}
}

func TestSafe_Rename(t *testing.T) {
	s, err := NewSafe(uuid.New(), "قديم", decimal.Zero)
	require.NoError(t, err)

	require.NoError(t, s.Rename("جديد"))
	assert.Equal(t, "جديد", s.Name)
	assert.Equal(t, 2, s.Version)

	assert.Error(t, s.Rename(""))
}

func TestSafe_CanBeDeleted(t *testing.T) {
	tests := []struct {
		name       string
		balance    decimal.Decimal
		references int64
		wantErr    error
	}{
		{"zero balance no references", decimal.Zero, 0, nil},
		{"positive balance", decimal.NewFromInt(50), 0, shared.ErrSafeHasBalance},
		{"negative balance", decimal.NewFromInt(-50), 0, shared.ErrSafeHasBalance},
		{"referenced by ledger rows", decimal.Zero, 3, shared.ErrSafeHasReferences},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSafe(uuid.New(), "خزنة", decimal.Zero)
			require.NoError(t, err)
			s.Balance = tt.balance

			err = s.CanBeDeleted(tt.references)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, tt.wantErr))
			}
		})
	}
}

func TestSafe_HasFunds(t *testing.T) {
	s, err := NewSafe(uuid.New(), "خزنة", decimal.NewFromInt(500))
	require.NoError(t, err)

	assert.True(t, s.HasFunds(decimal.NewFromInt(500)))
	assert.True(t, s.HasFunds(decimal.NewFromInt(499)))
	assert.False(t, s.HasFunds(decimal.NewFromInt(501)))
}
