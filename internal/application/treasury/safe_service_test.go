package treasury

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeService_CreateSafe(t *testing.T) {
	f := newTreasuryFixture(t)

	resp, err := f.safes.CreateSafe(context.Background(), f.tenantID, CreateSafeRequest{
		Name:           "الخزنة الرئيسية",
		OpeningBalance: decimal.NewFromInt(1000),
	})

	require.NoError(t, err)
	assert.Equal(t, "الخزنة الرئيسية", resp.Name)
	assert.True(t, decimal.NewFromInt(1000).Equal(resp.Balance))
}

func TestSafeService_CreateDuplicateName(t *testing.T) {
	f := newTreasuryFixture(t)
	ctx := context.Background()
	f.addSafe(t, "الخزنة الرئيسية", 0)

	_, err := f.safes.CreateSafe(ctx, f.tenantID, CreateSafeRequest{Name: "الخزنة الرئيسية"})

	requireDomainCode(t, err, "ALREADY_EXISTS")
}

func TestSafeService_DeleteThenRecreateSameName(t *testing.T) {
	f := newTreasuryFixture(t)
	ctx := context.Background()
	safe := f.addSafe(t, "خزنة مؤقتة", 0)

	require.NoError(t, f.safes.DeleteSafe(ctx, f.tenantID, safe.ID))

	// The name is free again after deletion.
	_, err := f.safes.CreateSafe(ctx, f.tenantID, CreateSafeRequest{Name: "خزنة مؤقتة"})
	require.NoError(t, err)
}

func TestSafeService_DeleteGuards(t *testing.T) {
	f := newTreasuryFixture(t)
	ctx := context.Background()

	t.Run("nonzero balance", func(t *testing.T) {
		safe := f.addSafe(t, "خزنة برصيد", 100)
		requireDomainCode(t, f.safes.DeleteSafe(ctx, f.tenantID, safe.ID), "HAS_BALANCE")
	})

	t.Run("referenced by voucher", func(t *testing.T) {
		safe := f.addSafe(t, "خزنة مرتبطة", 0)
		_, err := f.vouchers.CreateVoucher(ctx, f.tenantID, CreateVoucherRequest{
			Type:        "RECEIPT",
			Date:        time.Now(),
			Amount:      decimal.NewFromInt(100),
			SafeID:      safe.ID,
			Description: "دفعة",
		})
		require.NoError(t, err)

		// Balance is now 100: blocked on balance first.
		requireDomainCode(t, f.safes.DeleteSafe(ctx, f.tenantID, safe.ID), "HAS_BALANCE")

		// Drain the balance with a payment; still blocked on references.
		_, err = f.vouchers.CreateVoucher(ctx, f.tenantID, CreateVoucherRequest{
			Type:        "PAYMENT",
			Date:        time.Now(),
			Amount:      decimal.NewFromInt(100),
			SafeID:      safe.ID,
			Description: "سحب",
		})
		require.NoError(t, err)
		requireDomainCode(t, f.safes.DeleteSafe(ctx, f.tenantID, safe.ID), "HAS_REFERENCES")
	})

	t.Run("missing safe", func(t *testing.T) {
		requireDomainCode(t, f.safes.DeleteSafe(ctx, f.tenantID, uuid.New()), "NOT_FOUND")
	})
}

func TestSafeService_UpdateSafe(t *testing.T) {
	f := newTreasuryFixture(t)
	ctx := context.Background()
	safe := f.addSafe(t, "قديم", 0)
	f.addSafe(t, "محجوز", 0)

	resp, err := f.safes.UpdateSafe(ctx, f.tenantID, safe.ID, UpdateSafeRequest{Name: "جديد", Notes: "ملاحظة"})
	require.NoError(t, err)
	assert.Equal(t, "جديد", resp.Name)
	assert.Equal(t, "ملاحظة", resp.Notes)

	// Renaming onto an existing safe name is rejected.
	_, err = f.safes.UpdateSafe(ctx, f.tenantID, safe.ID, UpdateSafeRequest{Name: "محجوز"})
	requireDomainCode(t, err, "ALREADY_EXISTS")

	// Keeping the current name only touches the notes.
	_, err = f.safes.UpdateSafe(ctx, f.tenantID, safe.ID, UpdateSafeRequest{Name: "جديد", Notes: "أخرى"})
	require.NoError(t, err)
}

func TestSafeService_ListSafes(t *testing.T) {
	f := newTreasuryFixture(t)
	ctx := context.Background()
	f.addSafe(t, "أ", 10)
	f.addSafe(t, "ب", 20)

	safes, total, err := f.safes.ListSafes(ctx, f.tenantID, 1, 20)

	require.NoError(t, err)
	assert.Len(t, safes, 2)
	assert.Equal(t, int64(2), total)
}
