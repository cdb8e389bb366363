package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/stockmate/stockmate-api/infrastructure/database/postgres"
	"github.com/stockmate/stockmate-api/internal/domain"
)

type PriceTargetRepository interface {
	UpsertPriceTarget(target *domain.PriceTarget) error
	UpsertPriceTargetSummary(summary *domain.PriceTargetSummary) error
}

type priceTargetRepository struct {
	conn *postgres.Connection
}

func NewPriceTargetRepository(conn *postgres.Connection) PriceTargetRepository {
	return &priceTargetRepository{
		conn: conn,
	}
}

func (r *priceTargetRepository) UpsertPriceTarget(target *domain.PriceTarget) error {
	query := squirrel.StatementBuilder.
		Insert("price_targets").
		Columns(
			"company_id", "symbol", "target_high", "target_low",
			"target_consensus", "target_median",
		).
		Values(
			target.CompanyID,
			target.Symbol,
			target.TargetHigh,
			target.TargetLow,
			target.TargetConsensus,
			target.TargetMedian,
		).
		Suffix(`
			ON CONFLICT (symbol) DO UPDATE SET
				company_id = EXCLUDED.company_id,
				target_high = EXCLUDED.target_high,
				target_low = EXCLUDED.target_low,
				target_consensus = EXCLUDED.target_consensus,
				target_median = EXCLUDED.target_median,
				updated_at = NOW()
			RETURNING id, created_at, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	err = r.conn.QueryRow(sqlQuery, args...).Scan(&target.ID, &target.CreatedAt, &target.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("executing query: %w", err)
	}

	return nil
}

func (r *priceTargetRepository) UpsertPriceTargetSummary(summary *domain.PriceTargetSummary) error {
	query := squirrel.StatementBuilder.
		Insert("price_target_summaries").
		Columns(
			"company_id", "symbol",
			"last_month_count", "last_month_average_price_target",
			"last_quarter_count", "last_quarter_average_price_target",
			"last_year_count", "last_year_average_price_target",
			"all_time_count", "all_time_average_price_target",
			"publishers",
		).
		Values(
			summary.CompanyID,
			summary.Symbol,
			summary.LastMonthCount,
			summary.LastMonthAveragePriceTarget,
			summary.LastQuarterCount,
			summary.LastQuarterAveragePriceTarget,
			summary.LastYearCount,
			summary.LastYearAveragePriceTarget,
			summary.AllTimeCount,
			summary.AllTimeAveragePriceTarget,
			summary.Publishers,
		).
		Suffix(`
			ON CONFLICT (symbol) DO UPDATE SET
				company_id = EXCLUDED.company_id,
				last_month_count = EXCLUDED.last_month_count,
				last_month_average_price_target = EXCLUDED.last_month_average_price_target,
				last_quarter_count = EXCLUDED.last_quarter_count,
				last_quarter_average_price_target = EXCLUDED.last_quarter_average_price_target,
				last_year_count = EXCLUDED.last_year_count,
				last_year_average_price_target = EXCLUDED.last_year_average_price_target,
				all_time_count = EXCLUDED.all_time_count,
				all_time_average_price_target = EXCLUDED.all_time_average_price_target,
				publishers = EXCLUDED.publishers,
				updated_at = NOW()
			RETURNING id, created_at, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	err = r.conn.QueryRow(sqlQuery, args...).Scan(&summary.ID, &summary.CreatedAt, &summary.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("executing query: %w", err)
	}

	return nil
}
