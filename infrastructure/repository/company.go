package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/stockmate/stockmate-api/infrastructure/database/postgres"
	"github.com/stockmate/stockmate-api/internal/domain"
)

const (
	companiesTable = "companies c"

	companyColumns = `c.id, c.symbol, c.company_name, c.market_cap, c.currency,
		c.exchange_full_name, c.exchange, c.industry, c.sector, c.country,
		c.website, c.description, c.phone, c.address, c.city, c.state, c.zip,
		c.image, c.ipo_date, c.active, c.created_at, c.updated_at`
)

type CompanyRepository interface {
	GetBySymbol(symbol string) (*domain.Company, error)
	ListActive() ([]*domain.Company, error)
	Upsert(company *domain.Company) (*domain.Company, error)
}

type companyRepository struct {
	conn *postgres.Connection
}

func NewCompanyRepository(conn *postgres.Connection) CompanyRepository {
	return &companyRepository{
		conn: conn,
	}
}

func (r *companyRepository) GetBySymbol(symbol string) (*domain.Company, error) {
	query, args, err := squirrel.
		Select(companyColumns).
		From(companiesTable).
		Where(squirrel.Eq{"c.symbol": symbol}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	company, err := r.scanCompany(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning company: %w", err)
	}

	return company, nil
}

func (r *companyRepository) ListActive() ([]*domain.Company, error) {
	query, args, err := squirrel.
		Select(companyColumns).
		From(companiesTable).
		Where(squirrel.Eq{"c.active": true}).
		OrderBy("c.symbol ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	companies := make([]*domain.Company, 0)
	for rows.Next() {
		company, err := r.scanCompanyRows(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning companies: %w", err)
		}
		companies = append(companies, company)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return companies, nil
}

func (r *companyRepository) Upsert(company *domain.Company) (*domain.Company, error) {
	var ipoDate interface{}
	if company.IPODate != "" {
		ipoDate = company.IPODate
	}

	query := squirrel.StatementBuilder.
		Insert("companies").
		Columns(
			"id", "symbol", "company_name", "market_cap", "currency",
			"exchange_full_name", "exchange", "industry", "sector", "country",
			"website", "description", "phone", "address", "city", "state",
			"zip", "image", "ipo_date", "active",
		).
		Values(
			company.ID,
			company.Symbol,
			company.CompanyName,
			company.MarketCap,
			company.Currency,
			company.ExchangeFullName,
			company.Exchange,
			company.Industry,
			company.Sector,
			company.Country,
			company.Website,
			company.Description,
			company.Phone,
			company.Address,
			company.City,
			company.State,
			company.Zip,
			company.Image,
			ipoDate,
			company.Active,
		).
		Suffix(`
			ON CONFLICT (symbol) DO UPDATE SET
				company_name = EXCLUDED.company_name,
				market_cap = EXCLUDED.market_cap,
				currency = EXCLUDED.currency,
				exchange_full_name = EXCLUDED.exchange_full_name,
				exchange = EXCLUDED.exchange,
				industry = EXCLUDED.industry,
				sector = EXCLUDED.sector,
				country = EXCLUDED.country,
				website = EXCLUDED.website,
				description = EXCLUDED.description,
				phone = EXCLUDED.phone,
				address = EXCLUDED.address,
				city = EXCLUDED.city,
				state = EXCLUDED.state,
				zip = EXCLUDED.zip,
				image = EXCLUDED.image,
				ipo_date = EXCLUDED.ipo_date,
				active = EXCLUDED.active,
				updated_at = NOW()
			RETURNING id, created_at, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	err = r.conn.QueryRow(sqlQuery, args...).Scan(&company.ID, &company.CreatedAt, &company.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("executing query: %w", err)
	}

	return company, nil
}

func (r *companyRepository) scanCompany(row *sql.Row) (*domain.Company, error) {
	company := &domain.Company{}
	var ipoDate sql.NullTime

	err := row.Scan(
		&company.ID,
		&company.Symbol,
		&company.CompanyName,
		&company.MarketCap,
		&company.Currency,
		&company.ExchangeFullName,
		&company.Exchange,
		&company.Industry,
		&company.Sector,
		&company.Country,
		&company.Website,
		&company.Description,
		&company.Phone,
		&company.Address,
		&company.City,
		&company.State,
		&company.Zip,
		&company.Image,
		&ipoDate,
		&company.Active,
		&company.CreatedAt,
		&company.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if ipoDate.Valid {
		company.IPODate = ipoDate.Time.Format("2006-01-02")
	}

	return company, nil
}

func (r *companyRepository) scanCompanyRows(rows *sql.Rows) (*domain.Company, error) {
	company := &domain.Company{}
	var ipoDate sql.NullTime

	err := rows.Scan(
		&company.ID,
		&company.Symbol,
		&company.CompanyName,
		&company.MarketCap,
		&company.Currency,
		&company.ExchangeFullName,
		&company.Exchange,
		&company.Industry,
		&company.Sector,
		&company.Country,
		&company.Website,
		&company.Description,
		&company.Phone,
		&company.Address,
		&company.City,
		&company.State,
		&company.Zip,
		&company.Image,
		&ipoDate,
		&company.Active,
		&company.CreatedAt,
		&company.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if ipoDate.Valid {
		company.IPODate = ipoDate.Time.Format("2006-01-02")
	}

	return company, nil
}
