package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/estateops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockedService(t *testing.T) (*ReportService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return NewReportService(gormDB, zap.NewNop()), mock
}

func TestReportService_RunUnknownSlug(t *testing.T) {
	svc, _ := newMockedService(t)

	_, err := svc.Run(context.Background(), uuid.New(), "no-such-report", ReportQuery{})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestReportService_InstallmentsTotals(t *testing.T) {
	svc, mock := newMockedService(t)
	tenantID := uuid.New()
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	paidAt := due.AddDate(0, 0, -3)

	mock.ExpectQuery(`SELECT i.id, u.code AS unit_code`).
		WithArgs(tenantID).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "unit_code", "unit_name", "amount", "due_date", "status", "paid_at", "notes"}).
			AddRow(uuid.New(), "A-101", "شقة أولى", "1000", due, "PAID", paidAt, "").
			AddRow(uuid.New(), "A-101", "شقة أولى", "1000", due.AddDate(0, 1, 0), "PAID", paidAt, "").
			AddRow(uuid.New(), "A-102", "", "500", due.AddDate(0, 2, 0), "PENDING", nil, ""))

	report, err := svc.Installments(context.Background(), tenantID, ReportQuery{})

	require.NoError(t, err)
	require.Len(t, report.Rows, 3)
	assert.True(t, decimal.NewFromInt(2500).Equal(report.TotalAmount))
	assert.True(t, decimal.NewFromInt(2000).Equal(report.PaidAmount))
	assert.Equal(t, int64(1), report.PendingCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportService_InstallmentsFilters(t *testing.T) {
	svc, mock := newMockedService(t)
	tenantID := uuid.New()
	unitID := uuid.New()
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`AND i.unit_id = .+ AND i.due_date >= .+ AND i.status = `).
		WithArgs(tenantID, unitID, from, "PENDING").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "unit_code", "unit_name", "amount", "due_date", "status", "paid_at", "notes"}))

	report, err := svc.Installments(context.Background(), tenantID, ReportQuery{
		UnitID: &unitID,
		From:   &from,
		Status: "PENDING",
	})

	require.NoError(t, err)
	assert.Empty(t, report.Rows)
	assert.Equal(t, int64(0), report.PendingCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportService_PaymentsNet(t *testing.T) {
	svc, mock := newMockedService(t)
	tenantID := uuid.New()
	date := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT v.id, v.type, v.date`).
		WithArgs(tenantID).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "type", "date", "amount", "safe_name", "unit_code", "description"}).
			AddRow(uuid.New(), "RECEIPT", date, "500", "الخزنة الرئيسية", nil, "دفعة مقدمة").
			AddRow(uuid.New(), "RECEIPT", date, "250", "الخزنة الرئيسية", "A-101", "قسط").
			AddRow(uuid.New(), "PAYMENT", date, "200", "الخزنة الرئيسية", nil, "مصاريف"))

	report, err := svc.Payments(context.Background(), tenantID, ReportQuery{})

	require.NoError(t, err)
	require.Len(t, report.Rows, 3)
	assert.True(t, decimal.NewFromInt(750).Equal(report.TotalReceipts))
	assert.True(t, decimal.NewFromInt(200).Equal(report.TotalPayments))
	assert.True(t, decimal.NewFromInt(550).Equal(report.Net))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportService_AgingBuckets(t *testing.T) {
	svc, mock := newMockedService(t)
	tenantID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT id, amount, due_date FROM installments`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "amount", "due_date"}).
			AddRow(uuid.New(), "100", now.AddDate(0, 0, -10)).
			AddRow(uuid.New(), "200", now.AddDate(0, 0, -45)).
			AddRow(uuid.New(), "300", now.AddDate(0, 0, -45)).
			AddRow(uuid.New(), "400", now.AddDate(0, 0, -120)))

	report, err := svc.Aging(context.Background(), tenantID, ReportQuery{})

	require.NoError(t, err)
	require.Len(t, report.Buckets, 4)
	assert.Equal(t, int64(1), report.Buckets[0].Count)
	assert.True(t, decimal.NewFromInt(100).Equal(report.Buckets[0].Amount))
	assert.Equal(t, int64(2), report.Buckets[1].Count)
	assert.True(t, decimal.NewFromInt(500).Equal(report.Buckets[1].Amount))
	assert.Equal(t, int64(0), report.Buckets[2].Count)
	assert.Equal(t, int64(1), report.Buckets[3].Count)
	assert.True(t, decimal.NewFromInt(1000).Equal(report.TotalOverdue))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportService_RunDispatchesBySlug(t *testing.T) {
	svc, mock := newMockedService(t)
	tenantID := uuid.New()

	mock.ExpectQuery(`SELECT id, amount, due_date FROM installments`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "amount", "due_date"}))

	result, err := svc.Run(context.Background(), tenantID, SlugAging, ReportQuery{})

	require.NoError(t, err)
	_, ok := result.(*AgingReport)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
