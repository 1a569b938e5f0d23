package repositories

import (
	"context"
	"database/sql"
	"fmt"

	intconfig "tripplanner/internal/config"
	"tripplanner/internal/domain/models"
)

const planLogSchemaMySQL = `CREATE TABLE IF NOT EXISTS plan_logs (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	request_id VARCHAR(64) NOT NULL,
	destination VARCHAR(500) NOT NULL,
	travelers INT NOT NULL,
	budget_ceiling DECIMAL(14,2) NOT NULL,
	total_cost DECIMAL(14,2) NOT NULL,
	within_budget BOOLEAN NOT NULL,
	overage DECIMAL(14,2) NOT NULL,
	day_count INT NOT NULL,
	created_at DATETIME NOT NULL
)`

const planLogSchemaSQLite = `CREATE TABLE IF NOT EXISTS plan_logs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	request_id TEXT NOT NULL,
	destination TEXT NOT NULL,
	travelers INTEGER NOT NULL,
	budget_ceiling DECIMAL(14,2) NOT NULL,
	total_cost DECIMAL(14,2) NOT NULL,
	within_budget BOOLEAN NOT NULL,
	overage DECIMAL(14,2) NOT NULL,
	day_count INTEGER NOT NULL,
	created_at DATETIME NOT NULL
)`

// PlanLogRepository stores audit summaries of reconciled plans. A nil DB
// with no shared connection means the audit log is disabled.
type PlanLogRepository struct {
	DB     *sql.DB
	Driver string
}

func (r PlanLogRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r PlanLogRepository) driver() string {
	if r.Driver != "" {
		return r.Driver
	}
	return intconfig.DBDriver
}

// Enabled reports whether a connection is available.
func (r PlanLogRepository) Enabled() bool {
	return r.db() != nil
}

func (r PlanLogRepository) EnsureSchema(ctx context.Context) error {
	db := r.db()
	if db == nil {
		return nil
	}
	schema := planLogSchemaMySQL
	if r.driver() == intconfig.DriverSQLite {
		schema = planLogSchemaSQLite
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create plan_logs: %w", err)
	}
	return nil
}

func (r PlanLogRepository) Insert(ctx context.Context, s models.PlanSummary) error {
	db := r.db()
	if db == nil {
		return nil
	}
	_, err := db.ExecContext(ctx, `
		INSERT INTO plan_logs
			(request_id, destination, travelers, budget_ceiling, total_cost, within_budget, overage, day_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.RequestID,
		s.Destination,
		s.Travelers,
		s.BudgetCeiling.StringFixed(2),
		s.TotalCost.StringFixed(2),
		s.WithinBudget,
		s.Overage.StringFixed(2),
		s.DayCount,
		s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert plan_logs: %w", err)
	}
	return nil
}

// ListRecent returns the newest summaries first.
func (r PlanLogRepository) ListRecent(ctx context.Context, limit int) ([]models.PlanSummary, error) {
	out := []models.PlanSummary{}
	db := r.db()
	if db == nil {
		return out, nil
	}
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.QueryContext(ctx, `
		SELECT id, request_id, destination, travelers, budget_ceiling, total_cost, within_budget, overage, day_count, created_at
		FROM plan_logs
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query plan_logs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s models.PlanSummary
		if err := rows.Scan(
			&s.ID,
			&s.RequestID,
			&s.Destination,
			&s.Travelers,
			&s.BudgetCeiling,
			&s.TotalCost,
			&s.WithinBudget,
			&s.Overage,
			&s.DayCount,
			&s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan plan_logs: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
