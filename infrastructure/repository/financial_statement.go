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

// The three statement tables share the same shape: identity columns plus
// the reported line items in a JSONB payload keyed by (symbol, date).
var statementColumns = []string{
	"company_id", "symbol", "date", "reported_currency", "cik",
	"filing_date", "accepted_date", "fiscal_year", "period", "data",
}

const statementConflict = `
	ON CONFLICT (symbol, date) DO UPDATE SET
		company_id = EXCLUDED.company_id,
		reported_currency = EXCLUDED.reported_currency,
		cik = EXCLUDED.cik,
		filing_date = EXCLUDED.filing_date,
		accepted_date = EXCLUDED.accepted_date,
		fiscal_year = EXCLUDED.fiscal_year,
		period = EXCLUDED.period,
		data = EXCLUDED.data,
		updated_at = NOW()
	RETURNING id, created_at, updated_at
`

type FinancialStatementRepository interface {
	UpsertBalanceSheets(statements []*domain.BalanceSheet) error
	UpsertIncomeStatements(statements []*domain.IncomeStatement) error
	UpsertCashFlowStatements(statements []*domain.CashFlowStatement) error
}

type financialStatementRepository struct {
	conn *postgres.Connection
}

func NewFinancialStatementRepository(conn *postgres.Connection) FinancialStatementRepository {
	return &financialStatementRepository{
		conn: conn,
	}
}

// UpsertBalanceSheets writes a fiscal series in a single transaction so a
// failed sync never leaves a partially updated series.
func (r *financialStatementRepository) UpsertBalanceSheets(statements []*domain.BalanceSheet) error {
	if len(statements) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		for _, statement := range statements {
			var payload []byte
			var err error

			if statement.Data != nil {
				payload, err = json.Marshal(statement.Data)
				if err != nil {
					return fmt.Errorf("serializing balance sheet data: %w", err)
				}
			}

			if err := r.upsertStatement(tx, "balance_sheets", &statement.StatementHeader, payload); err != nil {
				return fmt.Errorf("upserting balance sheet %s: %w", statement.Date.Format("2006-01-02"), err)
			}
		}

		return nil
	})
}

func (r *financialStatementRepository) UpsertIncomeStatements(statements []*domain.IncomeStatement) error {
	if len(statements) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		for _, statement := range statements {
			var payload []byte
			var err error

			if statement.Data != nil {
				payload, err = json.Marshal(statement.Data)
				if err != nil {
					return fmt.Errorf("serializing income statement data: %w", err)
				}
			}

			if err := r.upsertStatement(tx, "income_statements", &statement.StatementHeader, payload); err != nil {
				return fmt.Errorf("upserting income statement %s: %w", statement.Date.Format("2006-01-02"), err)
			}
		}

		return nil
	})
}

func (r *financialStatementRepository) UpsertCashFlowStatements(statements []*domain.CashFlowStatement) error {
	if len(statements) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		for _, statement := range statements {
			var payload []byte
			var err error

			if statement.Data != nil {
				payload, err = json.Marshal(statement.Data)
				if err != nil {
					return fmt.Errorf("serializing cash flow data: %w", err)
				}
			}

			if err := r.upsertStatement(tx, "cash_flow_statements", &statement.StatementHeader, payload); err != nil {
				return fmt.Errorf("upserting cash flow statement %s: %w", statement.Date.Format("2006-01-02"), err)
			}
		}

		return nil
	})
}

func (r *financialStatementRepository) upsertStatement(q postgres.Queryer, table string, header *domain.StatementHeader, payload []byte) error {
	query := squirrel.StatementBuilder.
		Insert(table).
		Columns(statementColumns...).
		Values(
			header.CompanyID,
			header.Symbol,
			header.Date.Format("2006-01-02"),
			header.ReportedCurrency,
			header.CIK,
			header.FilingDate.Format("2006-01-02"),
			header.AcceptedDate,
			header.FiscalYear,
			header.Period,
			payload,
		).
		Suffix(statementConflict).
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
