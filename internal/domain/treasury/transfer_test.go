package treasury

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransfer_Success(t *testing.T) {
	tenantID := uuid.New()
	from := uuid.New()
	to := uuid.New()

	tr, err := NewTransfer(tenantID, from, to, decimal.NewFromInt(300), "تغذية الخزنة الفرعية")

	require.NoError(t, err)
	assert.Equal(t, tenantID, tr.TenantID)
	assert.Equal(t, from, tr.FromSafeID)
	assert.Equal(t, to, tr.ToSafeID)
	assert.True(t, decimal.NewFromInt(300).Equal(tr.Amount))
}

func TestNewTransfer_ValidationErrors(t *testing.T) {
	from := uuid.New()
	to := uuid.New()

	tests := []struct {
		name     string
		from     uuid.UUID
		to       uuid.UUID
		amount   decimal.Decimal
		wantCode string
	}{
		{"nil source", uuid.Nil, to, decimal.NewFromInt(10), "INVALID_SAFE"},
		{"nil destination", from, uuid.Nil, decimal.NewFromInt(10), "INVALID_SAFE"},
		{"same safe", from, from, decimal.NewFromInt(10), "INVALID_SAFE"},
		{"zero amount", from, to, decimal.Zero, "INVALID_AMOUNT"},
		{"negative amount", from, to, decimal.NewFromInt(-10), "INVALID_AMOUNT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTransfer(uuid.New(), tt.from, tt.to, tt.amount, "")
			require.Error(t, err)
			assertDomainErrorCode(t, err, tt.wantCode)
		})
	}
}
