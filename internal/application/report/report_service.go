package report

import (
	"context"
	"time"

	"github.com/estateops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Report slugs
const (
	SlugInstallments = "installments"
	SlugPayments     = "payments"
	SlugAging        = "aging"
)

// ReportQuery carries the shared filter parameters for all report slugs
type ReportQuery struct {
	UnitID *uuid.UUID `form:"unit_id" json:"unit_id"`
	From   *time.Time `form:"from" json:"from" time_format:"2006-01-02"`
	To     *time.Time `form:"to" json:"to" time_format:"2006-01-02"`
	Status string     `form:"status" json:"status"`
	Search string     `form:"q" json:"q"`
}

// InstallmentReportRow is one line of the installments report
type InstallmentReportRow struct {
	ID       uuid.UUID       `json:"id"`
	UnitCode string          `json:"unit_code"`
	UnitName string          `json:"unit_name"`
	Amount   decimal.Decimal `json:"amount"`
	DueDate  time.Time       `json:"due_date"`
	Status   string          `json:"status"`
	PaidAt   *time.Time      `json:"paid_at,omitempty"`
	Notes    string          `json:"notes,omitempty"`
}

// InstallmentReport is the installments report payload
type InstallmentReport struct {
	Rows         []InstallmentReportRow `json:"rows"`
	TotalAmount  decimal.Decimal        `json:"total_amount"`
	PaidAmount   decimal.Decimal        `json:"paid_amount"`
	PendingCount int64                  `json:"pending_count"`
}

// PaymentReportRow is one line of the payments report
type PaymentReportRow struct {
	ID          uuid.UUID       `json:"id"`
	Type        string          `json:"type"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	SafeName    string          `json:"safe_name"`
	UnitCode    *string         `json:"unit_code,omitempty"`
	Description string          `json:"description"`
}

// PaymentReport is the payments report payload
type PaymentReport struct {
	Rows          []PaymentReportRow `json:"rows"`
	TotalReceipts decimal.Decimal    `json:"total_receipts"`
	TotalPayments decimal.Decimal    `json:"total_payments"`
	Net           decimal.Decimal    `json:"net"`
}

// AgingBucket groups overdue pending installments by days late
type AgingBucket struct {
	Bucket string          `json:"bucket"`
	Count  int64           `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// AgingReport is the aging report payload
type AgingReport struct {
	Buckets      []AgingBucket   `json:"buckets"`
	TotalOverdue decimal.Decimal `json:"total_overdue"`
}

// ReportService runs parameterized read-only report queries. Reports go
// through raw SQL rather than repositories because they join and aggregate
// across tables.
type ReportService struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewReportService creates a new ReportService
func NewReportService(db *gorm.DB, logger *zap.Logger) *ReportService {
	return &ReportService{db: db, logger: logger}
}

// Run executes the report for the given slug
func (s *ReportService) Run(ctx context.Context, tenantID uuid.UUID, slug string, query ReportQuery) (any, error) {
	switch slug {
	case SlugInstallments:
		return s.Installments(ctx, tenantID, query)
	case SlugPayments:
		return s.Payments(ctx, tenantID, query)
	case SlugAging:
		return s.Aging(ctx, tenantID, query)
	default:
		return nil, shared.NewDomainError("NOT_FOUND", "التقرير المطلوب غير موجود")
	}
}

// Installments lists installments joined with their unit, with totals
func (s *ReportService) Installments(ctx context.Context, tenantID uuid.UUID, query ReportQuery) (*InstallmentReport, error) {
	sql := `SELECT i.id, u.code AS unit_code, COALESCE(u.name, '') AS unit_name, i.amount, i.due_date, i.status, i.paid_at, i.notes FROM installments i JOIN units u ON u.id = i.unit_id WHERE i.tenant_id = ? AND i.deleted_at IS NULL AND u.deleted_at IS NULL`
	args := []any{tenantID}

	if query.UnitID != nil {
		sql += " AND i.unit_id = ?"
		args = append(args, *query.UnitID)
	}
	if query.From != nil {
		sql += " AND i.due_date >= ?"
		args = append(args, *query.From)
	}
	if query.To != nil {
		sql += " AND i.due_date <= ?"
		args = append(args, *query.To)
	}
	if query.Status != "" {
		sql += " AND i.status = ?"
		args = append(args, query.Status)
	}
	if query.Search != "" {
		sql += " AND (u.code LIKE ? OR u.name LIKE ? OR i.notes LIKE ?)"
		pattern := "%" + query.Search + "%"
		args = append(args, pattern, pattern, pattern)
	}
	sql += " ORDER BY i.due_date ASC"

	var rows []InstallmentReportRow
	if err := s.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	report := &InstallmentReport{
		Rows:        rows,
		TotalAmount: decimal.Zero,
		PaidAmount:  decimal.Zero,
	}
	for i := range rows {
		report.TotalAmount = report.TotalAmount.Add(rows[i].Amount)
		if rows[i].Status == "PAID" {
			report.PaidAmount = report.PaidAmount.Add(rows[i].Amount)
		} else {
			report.PendingCount++
		}
	}
	return report, nil
}

// Payments lists vouchers joined with their safe and optional unit, with
// receipt and payment totals
func (s *ReportService) Payments(ctx context.Context, tenantID uuid.UUID, query ReportQuery) (*PaymentReport, error) {
	sql := `SELECT v.id, v.type, v.date, v.amount, s.name AS safe_name, u.code AS unit_code, v.description FROM vouchers v JOIN safes s ON s.id = v.safe_id LEFT JOIN units u ON u.id = v.unit_id AND u.deleted_at IS NULL WHERE v.tenant_id = ? AND v.deleted_at IS NULL`
	args := []any{tenantID}

	if query.UnitID != nil {
		sql += " AND v.unit_id = ?"
		args = append(args, *query.UnitID)
	}
	if query.From != nil {
		sql += " AND v.date >= ?"
		args = append(args, *query.From)
	}
	if query.To != nil {
		sql += " AND v.date <= ?"
		args = append(args, *query.To)
	}
	if query.Status != "" {
		sql += " AND v.type = ?"
		args = append(args, query.Status)
	}
	if query.Search != "" {
		sql += " AND (v.description LIKE ? OR v.payer LIKE ? OR v.beneficiary LIKE ?)"
		pattern := "%" + query.Search + "%"
		args = append(args, pattern, pattern, pattern)
	}
	sql += " ORDER BY v.date DESC"

	var rows []PaymentReportRow
	if err := s.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	report := &PaymentReport{
		Rows:          rows,
		TotalReceipts: decimal.Zero,
		TotalPayments: decimal.Zero,
	}
	for i := range rows {
		if rows[i].Type == "RECEIPT" {
			report.TotalReceipts = report.TotalReceipts.Add(rows[i].Amount)
		} else {
			report.TotalPayments = report.TotalPayments.Add(rows[i].Amount)
		}
	}
	report.Net = report.TotalReceipts.Sub(report.TotalPayments)
	return report, nil
}

// Aging buckets overdue pending installments by days late
// (1-30 / 31-60 / 61-90 / 90+)
func (s *ReportService) Aging(ctx context.Context, tenantID uuid.UUID, query ReportQuery) (*AgingReport, error) {
	now := time.Now().UTC()

	sql := `SELECT id, amount, due_date FROM installments WHERE tenant_id = ? AND deleted_at IS NULL AND status = 'PENDING' AND due_date < ?`
	args := []any{tenantID, now}
	if query.UnitID != nil {
		sql += " AND unit_id = ?"
		args = append(args, *query.UnitID)
	}

	var overdue []struct {
		ID      uuid.UUID
		Amount  decimal.Decimal
		DueDate time.Time
	}
	if err := s.db.WithContext(ctx).Raw(sql, args...).Scan(&overdue).Error; err != nil {
		return nil, err
	}

	buckets := []AgingBucket{
		{Bucket: "1-30", Amount: decimal.Zero},
		{Bucket: "31-60", Amount: decimal.Zero},
		{Bucket: "61-90", Amount: decimal.Zero},
		{Bucket: "90+", Amount: decimal.Zero},
	}
	report := &AgingReport{TotalOverdue: decimal.Zero}

	for i := range overdue {
		daysLate := int(now.Sub(overdue[i].DueDate).Hours() / 24)
		var idx int
		switch {
		case daysLate <= 30:
			idx = 0
		case daysLate <= 60:
			idx = 1
		case daysLate <= 90:
			idx = 2
		default:
			idx = 3
		}
		buckets[idx].Count++
		buckets[idx].Amount = buckets[idx].Amount.Add(overdue[i].Amount)
		report.TotalOverdue = report.TotalOverdue.Add(overdue[i].Amount)
	}
	report.Buckets = buckets
	return report, nil
}
