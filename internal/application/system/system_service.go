package system

import (
	"context"

	"github.com/estateops/backend/internal/domain/partner"
	"github.com/estateops/backend/internal/domain/property"
	"github.com/estateops/backend/internal/domain/sales"
	"github.com/estateops/backend/internal/domain/treasury"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ImportPayload is the bulk JSON document accepted by the import endpoint.
// Records carry their own IDs; existing rows are overwritten (upsert).
type ImportPayload struct {
	Safes        []treasury.Safe       `json:"safes"`
	Vouchers     []treasury.Voucher    `json:"vouchers"`
	Transfers    []treasury.Transfer   `json:"transfers"`
	Units        []property.Unit       `json:"units"`
	Customers    []partner.Customer    `json:"customers"`
	Brokers      []partner.Broker      `json:"brokers"`
	Partners     []partner.Partner     `json:"partners"`
	Contracts    []sales.Contract      `json:"contracts"`
	Installments []sales.Installment   `json:"installments"`
	BrokerDues   []partner.BrokerDue   `json:"broker_dues"`
	PartnerDebts []partner.PartnerDebt `json:"partner_debts"`
}

// Count returns the total number of records in the payload
func (p *ImportPayload) Count() int {
	return len(p.Safes) + len(p.Vouchers) + len(p.Transfers) + len(p.Units) +
		len(p.Customers) + len(p.Brokers) + len(p.Partners) + len(p.Contracts) +
		len(p.Installments) + len(p.BrokerDues) + len(p.PartnerDebts)
}

// stamp forces every record onto the importing tenant so a crafted payload
// cannot write into another tenant's data.
func (p *ImportPayload) stamp(tenantID uuid.UUID) {
	for i := range p.Safes {
		p.Safes[i].TenantID = tenantID
	}
	for i := range p.Vouchers {
		p.Vouchers[i].TenantID = tenantID
	}
	for i := range p.Transfers {
		p.Transfers[i].TenantID = tenantID
	}
	for i := range p.Units {
		p.Units[i].TenantID = tenantID
	}
	for i := range p.Customers {
		p.Customers[i].TenantID = tenantID
	}
	for i := range p.Brokers {
		p.Brokers[i].TenantID = tenantID
	}
	for i := range p.Partners {
		p.Partners[i].TenantID = tenantID
	}
	for i := range p.Contracts {
		p.Contracts[i].TenantID = tenantID
	}
	for i := range p.Installments {
		p.Installments[i].TenantID = tenantID
	}
	for i := range p.BrokerDues {
		p.BrokerDues[i].TenantID = tenantID
	}
	for i := range p.PartnerDebts {
		p.PartnerDebts[i].TenantID = tenantID
	}
}

// ImportResult reports what a bulk import wrote
type ImportResult struct {
	Imported int `json:"imported"`
}

// DataStore is the persistence contract for the system operations. Both
// methods run their writes in a single transaction.
type DataStore interface {
	// ImportTenantData upserts every record in the payload for the tenant
	ImportTenantData(ctx context.Context, tenantID uuid.UUID, payload *ImportPayload) error
	// ResetTenantData hard deletes all rows belonging to the tenant,
	// children before parents
	ResetTenantData(ctx context.Context, tenantID uuid.UUID) error
}

// SystemService provides the admin-only bulk import and reset operations
type SystemService struct {
	store  DataStore
	logger *zap.Logger
}

// NewSystemService creates a new SystemService
func NewSystemService(store DataStore, logger *zap.Logger) *SystemService {
	return &SystemService{store: store, logger: logger}
}

// Import bulk loads a JSON payload for the tenant, upserting by ID
func (s *SystemService) Import(ctx context.Context, tenantID uuid.UUID, payload *ImportPayload) (*ImportResult, error) {
	payload.stamp(tenantID)
	if err := s.store.ImportTenantData(ctx, tenantID, payload); err != nil {
		return nil, err
	}
	count := payload.Count()
	s.logger.Info("tenant data imported",
		zap.String("tenant_id", tenantID.String()),
		zap.Int("records", count))
	return &ImportResult{Imported: count}, nil
}

// Reset wipes all data belonging to the tenant
func (s *SystemService) Reset(ctx context.Context, tenantID uuid.UUID) error {
	if err := s.store.ResetTenantData(ctx, tenantID); err != nil {
		return err
	}
	s.logger.Warn("tenant data reset", zap.String("tenant_id", tenantID.String()))
	return nil
}
