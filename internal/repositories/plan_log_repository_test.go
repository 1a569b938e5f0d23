package repositories

import (
	"context"
	"testing"
	"time"

	intconfig "tripplanner/internal/config"
	"tripplanner/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
)

func TestPlanLogInsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	at := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	mock.ExpectExec("INSERT INTO plan_logs").
		WithArgs("req-1", "Rome, Italy", 2, "1000.00", "1050.00", false, "50.00", 2, at).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := PlanLogRepository{DB: db, Driver: intconfig.DriverMySQL}
	err = repo.Insert(context.Background(), models.PlanSummary{
		RequestID:     "req-1",
		Destination:   "Rome, Italy",
		Travelers:     2,
		BudgetCeiling: decimal.RequireFromString("1000"),
		TotalCost:     decimal.RequireFromString("1050"),
		WithinBudget:  false,
		Overage:       decimal.RequireFromString("50"),
		DayCount:      2,
		CreatedAt:     at,
	})
	if err != nil {
		t.Fatalf("insert returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPlanLogListRecent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	at := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	cols := []string{"id", "request_id", "destination", "travelers", "budget_ceiling", "total_cost", "within_budget", "overage", "day_count", "created_at"}
	mock.ExpectQuery("SELECT id, request_id, destination").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(2, "req-2", "Paris, France", 1, "500.00", "480.25", true, "0.00", 3, at).
			AddRow(1, "req-1", "Rome, Italy", 2, "1000.00", "1050.00", false, "50.00", 2, at))

	got, err := PlanLogRepository{DB: db}.ListRecent(context.Background(), 5)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].RequestID != "req-2" || !got[0].WithinBudget {
		t.Fatalf("unexpected first row: %+v", got[0])
	}
	if got[0].TotalCost.StringFixed(2) != "480.25" {
		t.Fatalf("total cost scanned incorrectly: %s", got[0].TotalCost)
	}
	if got[1].Overage.StringFixed(2) != "50.00" {
		t.Fatalf("overage scanned incorrectly: %s", got[1].Overage)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPlanLogEnsureSchemaPerDriver(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("AUTOINCREMENT").WillReturnResult(sqlmock.NewResult(0, 0))
	if err := (PlanLogRepository{DB: db, Driver: intconfig.DriverSQLite}).EnsureSchema(context.Background()); err != nil {
		t.Fatalf("sqlite schema error: %v", err)
	}
	mock.ExpectExec("AUTO_INCREMENT").WillReturnResult(sqlmock.NewResult(0, 0))
	if err := (PlanLogRepository{DB: db, Driver: intconfig.DriverMySQL}).EnsureSchema(context.Background()); err != nil {
		t.Fatalf("mysql schema error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPlanLogDisabledWithoutDB(t *testing.T) {
	intconfig.DB = nil
	repo := PlanLogRepository{}
	if repo.Enabled() {
		t.Fatalf("repository should be disabled without a connection")
	}
	if err := repo.Insert(context.Background(), models.PlanSummary{}); err != nil {
		t.Fatalf("disabled insert should be a no-op, got %v", err)
	}
	rows, err := repo.ListRecent(context.Background(), 10)
	if err != nil || len(rows) != 0 {
		t.Fatalf("disabled list should be empty, got %v %v", rows, err)
	}
}
