package property

import (
	"time"

	"github.com/estateops/backend/internal/domain/property"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnitResponse represents a property unit in API responses
type UnitResponse struct {
	ID         uuid.UUID       `json:"id"`
	TenantID   uuid.UUID       `json:"tenant_id"`
	Code       string          `json:"code"`
	Name       string          `json:"name,omitempty"`
	UnitType   string          `json:"unit_type"`
	Address    string          `json:"address,omitempty"`
	Area       decimal.Decimal `json:"area"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Status     string          `json:"status"`
	StatusName string          `json:"status_name"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	Version    int             `json:"version"`
}

func toUnitResponse(unit *property.Unit) *UnitResponse {
	return &UnitResponse{
		ID:         unit.ID,
		TenantID:   unit.TenantID,
		Code:       unit.Code,
		Name:       unit.Name,
		UnitType:   unit.UnitType,
		Address:    unit.Address,
		Area:       unit.Area,
		TotalPrice: unit.TotalPrice,
		Status:     unit.Status.String(),
		StatusName: unit.Status.DisplayName(),
		Notes:      unit.Notes,
		CreatedAt:  unit.CreatedAt,
		UpdatedAt:  unit.UpdatedAt,
		Version:    unit.Version,
	}
}

// CreateUnitRequest represents a request to create a unit
type CreateUnitRequest struct {
	Code       string          `json:"code" binding:"required,max=50"`
	Name       string          `json:"name"`
	UnitType   string          `json:"unit_type" binding:"required"`
	Address    string          `json:"address"`
	Area       decimal.Decimal `json:"area"`
	TotalPrice decimal.Decimal `json:"total_price" binding:"required"`
	Notes      string          `json:"notes"`
}

// UpdateUnitRequest represents a request to update a unit's descriptive fields
type UpdateUnitRequest struct {
	Name       string          `json:"name"`
	UnitType   string          `json:"unit_type" binding:"required"`
	Address    string          `json:"address"`
	Area       decimal.Decimal `json:"area"`
	TotalPrice decimal.Decimal `json:"total_price" binding:"required"`
	Notes      string          `json:"notes"`
}

// UnitListFilter defines filtering options for unit list queries
type UnitListFilter struct {
	Status   string `form:"status"`
	UnitType string `form:"unit_type"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

func (f UnitListFilter) toDomain() property.UnitFilter {
	filter := property.UnitFilter{
		UnitType: f.UnitType,
		Search:   f.Search,
		Page:     f.Page,
		PageSize: f.PageSize,
	}
	if f.Status != "" {
		status := property.UnitStatus(f.Status)
		filter.Status = &status
	}
	return filter
}
