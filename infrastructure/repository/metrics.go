package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/stockmate/stockmate-api/infrastructure/database/postgres"
	"github.com/stockmate/stockmate-api/internal/domain"
)

const (
	keyMetricsTable      = "key_metrics km"
	financialRatiosTable = "financial_ratios fr"

	metricsConflict = `
		ON CONFLICT (symbol, date) DO UPDATE SET
			company_id = EXCLUDED.company_id,
			fiscal_year = EXCLUDED.fiscal_year,
			period = EXCLUDED.period,
			reported_currency = EXCLUDED.reported_currency,
			data = EXCLUDED.data,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`
)

var metricsColumns = []string{
	"company_id", "symbol", "date", "fiscal_year", "period",
	"reported_currency", "data",
}

type MetricsRepository interface {
	UpsertKeyMetrics(metrics []*domain.KeyMetrics) error
	UpsertFinancialRatios(ratios []*domain.FinancialRatios) error
	GetLatestKeyMetrics(symbol string) (*domain.KeyMetrics, error)
	GetLatestFinancialRatios(symbol string) (*domain.FinancialRatios, error)
}

type metricsRepository struct {
	conn *postgres.Connection
}

func NewMetricsRepository(conn *postgres.Connection) MetricsRepository {
	return &metricsRepository{
		conn: conn,
	}
}

// UpsertKeyMetrics writes a fiscal series in a single transaction so a
// failed sync never leaves a partially updated series.
func (r *metricsRepository) UpsertKeyMetrics(metrics []*domain.KeyMetrics) error {
	if len(metrics) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		for _, entry := range metrics {
			var payload []byte
			var err error

			if entry.Data != nil {
				payload, err = json.Marshal(entry.Data)
				if err != nil {
					return fmt.Errorf("serializing key metrics data: %w", err)
				}
			}

			if err := r.upsertMetrics(tx, "key_metrics", &entry.MetricsHeader, payload); err != nil {
				return fmt.Errorf("upserting key metrics %s: %w", entry.Date.Format("2006-01-02"), err)
			}
		}

		return nil
	})
}

func (r *metricsRepository) UpsertFinancialRatios(ratios []*domain.FinancialRatios) error {
	if len(ratios) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		for _, entry := range ratios {
			var payload []byte
			var err error

			if entry.Data != nil {
				payload, err = json.Marshal(entry.Data)
				if err != nil {
					return fmt.Errorf("serializing financial ratios data: %w", err)
				}
			}

			if err := r.upsertMetrics(tx, "financial_ratios", &entry.MetricsHeader, payload); err != nil {
				return fmt.Errorf("upserting financial ratios %s: %w", entry.Date.Format("2006-01-02"), err)
			}
		}

		return nil
	})
}

func (r *metricsRepository) upsertMetrics(q postgres.Queryer, table string, header *domain.MetricsHeader, payload []byte) error {
	query := squirrel.StatementBuilder.
		Insert(table).
		Columns(metricsColumns...).
		Values(
			header.CompanyID,
			header.Symbol,
			header.Date.Format("2006-01-02"),
			header.FiscalYear,
			header.Period,
			header.ReportedCurrency,
			payload,
		).
		Suffix(metricsConflict).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	err = q.QueryRow(sqlQuery, args...).Scan(&header.ID, &header.CreatedAt, &header.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("executing query: %w", err)
	}

	return nil
}

// GetLatestKeyMetrics returns the key metrics row of the most recent fiscal
// year for a symbol, or nil when none is stored.
func (r *metricsRepository) GetLatestKeyMetrics(symbol string) (*domain.KeyMetrics, error) {
	query, args, err := squirrel.
		Select("km.id, km.company_id, km.symbol, km.date, km.fiscal_year, km.period, km.reported_currency, km.data, km.created_at, km.updated_at").
		From(keyMetricsTable).
		Where(squirrel.Eq{"km.symbol": symbol}).
		OrderBy("km.fiscal_year DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	metrics := &domain.KeyMetrics{}
	var payload []byte

	err = row.Scan(
		&metrics.ID,
		&metrics.CompanyID,
		&metrics.Symbol,
		&metrics.Date,
		&metrics.FiscalYear,
		&metrics.Period,
		&metrics.ReportedCurrency,
		&payload,
		&metrics.CreatedAt,
		&metrics.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning key metrics: %w", err)
	}

	if payload != nil {
		data := &domain.KeyMetricsData{}
		if err := json.Unmarshal(payload, data); err != nil {
			return nil, fmt.Errorf("deserializing key metrics data: %w", err)
		}
		metrics.Data = data
	}

	return metrics, nil
}

// GetLatestFinancialRatios returns the ratio row of the most recent fiscal
// year for a symbol, or nil when none is stored.
func (r *metricsRepository) GetLatestFinancialRatios(symbol string) (*domain.FinancialRatios, error) {
	query, args, err := squirrel.
		Select("fr.id, fr.company_id, fr.symbol, fr.date, fr.fiscal_year, fr.period, fr.reported_currency, fr.data, fr.created_at, fr.updated_at").
		From(financialRatiosTable).
		Where(squirrel.Eq{"fr.symbol": symbol}).
		OrderBy("fr.fiscal_year DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	ratios := &domain.FinancialRatios{}
	var payload []byte

	err = row.Scan(
		&ratios.ID,
		&ratios.CompanyID,
		&ratios.Symbol,
		&ratios.Date,
		&ratios.FiscalYear,
		&ratios.Period,
		&ratios.ReportedCurrency,
		&payload,
		&ratios.CreatedAt,
		&ratios.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning financial ratios: %w", err)
	}

	if payload != nil {
		data := &domain.FinancialRatiosData{}
		if err := json.Unmarshal(payload, data); err != nil {
			return nil, fmt.Errorf("deserializing financial ratios data: %w", err)
		}
		ratios.Data = data
	}

	return ratios, nil
}
