package treasury

import (
	"github.com/estateops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transfer records a balance movement between two safes: the source safe is
// debited and the destination safe credited by the same amount.
type Transfer struct {
	shared.TenantAggregateRoot
	FromSafeID  uuid.UUID       `json:"from_safe_id"`
	ToSafeID    uuid.UUID       `json:"to_safe_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// NewTransfer creates a new transfer between two distinct safes
func NewTransfer(tenantID, fromSafeID, toSafeID uuid.UUID, amount decimal.Decimal, description string) (*Transfer, error) {
	if fromSafeID == uuid.Nil || toSafeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SAFE", "خزنتا التحويل مطلوبتان")
	}
	if fromSafeID == toSafeID {
		return nil, shared.NewDomainError("INVALID_SAFE", "لا يمكن التحويل من الخزنة إلى نفسها")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "مبلغ التحويل يجب أن يكون أكبر من صفر")
	}

	return &Transfer{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		FromSafeID:          fromSafeID,
		ToSafeID:            toSafeID,
		Amount:              amount,
		Description:         description,
	}, nil
}
