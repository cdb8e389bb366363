package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/stockmate/stockmate-api/infrastructure/database/postgres"
	"github.com/stockmate/stockmate-api/internal/domain"
)

type FinancialHealthRepository interface {
	UpsertScores(scores *domain.FinancialScores) error
	UpsertHealthRecords(records []*domain.FinancialHealthRecord) error
}

type financialHealthRepository struct {
	conn *postgres.Connection
}

func NewFinancialHealthRepository(conn *postgres.Connection) FinancialHealthRepository {
	return &financialHealthRepository{
		conn: conn,
	}
}

func (r *financialHealthRepository) UpsertScores(scores *domain.FinancialScores) error {
	query := squirrel.StatementBuilder.
		Insert("financial_scores").
		Columns(
			"company_id", "symbol", "reported_currency", "altman_z_score",
			"piotroski_score", "working_capital", "total_assets",
			"total_liabilities", "retained_earnings", "ebit", "market_cap",
			"revenue",
		).
		Values(
			scores.CompanyID,
			scores.Symbol,
			scores.ReportedCurrency,
			scores.AltmanZScore,
			scores.PiotroskiScore,
			scores.WorkingCapital,
			scores.TotalAssets,
			scores.TotalLiabilities,
			scores.RetainedEarnings,
			scores.EBIT,
			scores.MarketCap,
			scores.Revenue,
		).
		Suffix(`
			ON CONFLICT (symbol) DO UPDATE SET
				company_id = EXCLUDED.company_id,
				reported_currency = EXCLUDED.reported_currency,
				altman_z_score = EXCLUDED.altman_z_score,
				piotroski_score = EXCLUDED.piotroski_score,
				working_capital = EXCLUDED.working_capital,
				total_assets = EXCLUDED.total_assets,
				total_liabilities = EXCLUDED.total_liabilities,
				retained_earnings = EXCLUDED.retained_earnings,
				ebit = EXCLUDED.ebit,
				market_cap = EXCLUDED.market_cap,
				revenue = EXCLUDED.revenue,
				updated_at = NOW()
			RETURNING id, created_at, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	err = r.conn.QueryRow(sqlQuery, args...).Scan(&scores.ID, &scores.CreatedAt, &scores.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("executing query: %w", err)
	}

	return nil
}

// UpsertHealthRecords writes a company's full health report in a single
// transaction so a failed sync never leaves a half-updated report.
func (r *financialHealthRepository) UpsertHealthRecords(records []*domain.FinancialHealthRecord) error {
	if len(records) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		for _, record := range records {
			query := squirrel.StatementBuilder.
				Insert("financial_health").
				Columns(
					"company_id", "symbol", "section", "metric", "benchmark",
					"value", "status", "insight",
				).
				Values(
					record.CompanyID,
					record.Symbol,
					record.Section,
					record.Metric,
					record.Benchmark,
					record.Value,
					record.Status,
					record.Insight,
				).
				Suffix(`
					ON CONFLICT (symbol, section, metric) DO UPDATE SET
						company_id = EXCLUDED.company_id,
						benchmark = EXCLUDED.benchmark,
						value = EXCLUDED.value,
						status = EXCLUDED.status,
						insight = EXCLUDED.insight,
						updated_at = NOW()
					RETURNING id, created_at, updated_at
				`).
				PlaceholderFormat(squirrel.Dollar)

			sqlQuery, args, err := query.ToSql()
			if err != nil {
				return fmt.Errorf("building query: %w", err)
			}

			err = tx.QueryRow(sqlQuery, args...).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
			if err != nil {
				if pqErr, ok := err.(*pq.Error); ok {
					return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
				}
				return fmt.Errorf("upserting health record %q/%q: %w", record.Section, record.Metric, err)
			}
		}

		return nil
	})
}
