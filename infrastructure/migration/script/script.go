package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	idLength   = 6
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

type SeedCompany struct {
	Symbol string
	Name   string
}

type tableDefinition struct {
	name string
	ddl  string
}

var tables = []tableDefinition{
	{
		name: "companies",
		ddl: `CREATE TABLE IF NOT EXISTS companies (
			id TEXT PRIMARY KEY,
			symbol VARCHAR(10) NOT NULL,
			company_name TEXT NOT NULL DEFAULT '',
			market_cap BIGINT NOT NULL DEFAULT 0,
			currency VARCHAR(10) NOT NULL DEFAULT 'USD',
			exchange_full_name TEXT NOT NULL DEFAULT '',
			exchange TEXT NOT NULL DEFAULT '',
			industry TEXT NOT NULL DEFAULT '',
			sector TEXT NOT NULL DEFAULT '',
			country TEXT NOT NULL DEFAULT '',
			website TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			city TEXT NOT NULL DEFAULT '',
			state TEXT NOT NULL DEFAULT '',
			zip TEXT NOT NULL DEFAULT '',
			image TEXT NOT NULL DEFAULT '',
			ipo_date DATE,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "balance_sheets",
		ddl: `CREATE TABLE IF NOT EXISTS balance_sheets (
			id BIGSERIAL PRIMARY KEY,
			company_id TEXT NOT NULL REFERENCES companies (id) ON DELETE CASCADE,
			symbol VARCHAR(10) NOT NULL,
			date DATE NOT NULL,
			reported_currency VARCHAR(10) NOT NULL DEFAULT '',
			cik VARCHAR(20) NOT NULL DEFAULT '',
			filing_date DATE NOT NULL,
			accepted_date TIMESTAMPTZ NOT NULL,
			fiscal_year INT NOT NULL DEFAULT 0,
			period VARCHAR(10) NOT NULL DEFAULT '',
			data JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "income_statements",
		ddl: `CREATE TABLE IF NOT EXISTS income_statements (
			id BIGSERIAL PRIMARY KEY,
			company_id TEXT NOT NULL REFERENCES companies (id) ON DELETE CASCADE,
			symbol VARCHAR(10) NOT NULL,
			date DATE NOT NULL,
			reported_currency VARCHAR(10) NOT NULL DEFAULT '',
			cik VARCHAR(20) NOT NULL DEFAULT '',
			filing_date DATE NOT NULL,
			accepted_date TIMESTAMPTZ NOT NULL,
			fiscal_year INT NOT NULL DEFAULT 0,
			period VARCHAR(10) NOT NULL DEFAULT '',
			data JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "cash_flow_statements",
		ddl: `CREATE TABLE IF NOT EXISTS cash_flow_statements (
			id BIGSERIAL PRIMARY KEY,
			company_id TEXT NOT NULL REFERENCES companies (id) ON DELETE CASCADE,
			symbol VARCHAR(10) NOT NULL,
			date DATE NOT NULL,
			reported_currency VARCHAR(10) NOT NULL DEFAULT '',
			cik VARCHAR(20) NOT NULL DEFAULT '',
			filing_date DATE NOT NULL,
			accepted_date TIMESTAMPTZ NOT NULL,
			fiscal_year INT NOT NULL DEFAULT 0,
			period VARCHAR(10) NOT NULL DEFAULT '',
			data JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "key_metrics",
		ddl: `CREATE TABLE IF NOT EXISTS key_metrics (
			id BIGSERIAL PRIMARY KEY,
			company_id TEXT NOT NULL REFERENCES companies (id) ON DELETE CASCADE,
			symbol VARCHAR(10) NOT NULL,
			date DATE NOT NULL,
			fiscal_year INT NOT NULL DEFAULT 0,
			period VARCHAR(10) NOT NULL DEFAULT '',
			reported_currency VARCHAR(10) NOT NULL DEFAULT '',
			data JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "financial_ratios",
		ddl: `CREATE TABLE IF NOT EXISTS financial_ratios (
			id BIGSERIAL PRIMARY KEY,
			company_id TEXT NOT NULL REFERENCES companies (id) ON DELETE CASCADE,
			symbol VARCHAR(10) NOT NULL,
			date DATE NOT NULL,
			fiscal_year INT NOT NULL DEFAULT 0,
			period VARCHAR(10) NOT NULL DEFAULT '',
			reported_currency VARCHAR(10) NOT NULL DEFAULT '',
			data JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "financial_scores",
		ddl: `CREATE TABLE IF NOT EXISTS financial_scores (
			id BIGSERIAL PRIMARY KEY,
			company_id TEXT NOT NULL REFERENCES companies (id) ON DELETE CASCADE,
			symbol VARCHAR(10) NOT NULL,
			reported_currency VARCHAR(10) NOT NULL DEFAULT '',
			altman_z_score DOUBLE PRECISION NOT NULL DEFAULT 0,
			piotroski_score INT NOT NULL DEFAULT 0,
			working_capital BIGINT NOT NULL DEFAULT 0,
			total_assets BIGINT NOT NULL DEFAULT 0,
			total_liabilities BIGINT NOT NULL DEFAULT 0,
			retained_earnings BIGINT NOT NULL DEFAULT 0,
			ebit BIGINT NOT NULL DEFAULT 0,
			market_cap BIGINT NOT NULL DEFAULT 0,
			revenue BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "financial_health",
		ddl: `CREATE TABLE IF NOT EXISTS financial_health (
			id BIGSERIAL PRIMARY KEY,
			company_id TEXT NOT NULL REFERENCES companies (id) ON DELETE CASCADE,
			symbol VARCHAR(10) NOT NULL,
			section VARCHAR(100) NOT NULL,
			metric VARCHAR(100) NOT NULL,
			benchmark VARCHAR(100) NOT NULL DEFAULT '',
			value VARCHAR(50) NOT NULL DEFAULT '',
			status VARCHAR(50) NOT NULL DEFAULT '',
			insight TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "price_targets",
		ddl: `CREATE TABLE IF NOT EXISTS price_targets (
			id BIGSERIAL PRIMARY KEY,
			company_id TEXT NOT NULL REFERENCES companies (id) ON DELETE CASCADE,
			symbol VARCHAR(10) NOT NULL,
			target_high DOUBLE PRECISION,
			target_low DOUBLE PRECISION,
			target_consensus DOUBLE PRECISION,
			target_median DOUBLE PRECISION,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "price_target_summaries",
		ddl: `CREATE TABLE IF NOT EXISTS price_target_summaries (
			id BIGSERIAL PRIMARY KEY,
			company_id TEXT NOT NULL REFERENCES companies (id) ON DELETE CASCADE,
			symbol VARCHAR(10) NOT NULL,
			last_month_count INT NOT NULL DEFAULT 0,
			last_month_average_price_target DOUBLE PRECISION NOT NULL DEFAULT 0,
			last_quarter_count INT NOT NULL DEFAULT 0,
			last_quarter_average_price_target DOUBLE PRECISION NOT NULL DEFAULT 0,
			last_year_count INT NOT NULL DEFAULT 0,
			last_year_average_price_target DOUBLE PRECISION NOT NULL DEFAULT 0,
			all_time_count INT NOT NULL DEFAULT 0,
			all_time_average_price_target DOUBLE PRECISION NOT NULL DEFAULT 0,
			publishers TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
}

type uniqueConstraint struct {
	table   string
	name    string
	columns string
}

// The upserts rely on ON CONFLICT against these natural keys, so the
// constraints must exist before the first sync runs.
var uniqueConstraints = []uniqueConstraint{
	{"companies", "companies_symbol_unique", "symbol"},
	{"balance_sheets", "balance_sheets_symbol_date_unique", "symbol, date"},
	{"income_statements", "income_statements_symbol_date_unique", "symbol, date"},
	{"cash_flow_statements", "cash_flow_statements_symbol_date_unique", "symbol, date"},
	{"key_metrics", "key_metrics_symbol_date_unique", "symbol, date"},
	{"financial_ratios", "financial_ratios_symbol_date_unique", "symbol, date"},
	{"financial_scores", "financial_scores_symbol_unique", "symbol"},
	{"financial_health", "financial_health_symbol_section_metric_unique", "symbol, section, metric"},
	{"price_targets", "price_targets_symbol_unique", "symbol"},
	{"price_target_summaries", "price_target_summaries_symbol_unique", "symbol"},
}

func setupLogger() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Starting schema migration...")
}

// connectionString assembles the DSN from the same DATABASE_* variables the
// API reads, so the script can run against any configured environment.
func connectionString() string {
	driver := envOrDefault("DATABASE_DRIVER", "postgres")
	user := envOrDefault("DATABASE_USER", "postgres")
	password := envOrDefault("DATABASE_PASSWORD", "root")
	url := envOrDefault("DATABASE_URL", "localhost:5432/stockmate?sslmode=disable")
	return fmt.Sprintf("%s://%s:%s@%s", driver, user, password, url)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func generateID() string {
	id, _ := gonanoid.Generate(characters, idLength)
	return id
}

func createTables(db *sql.DB) {
	log.Printf("Creating %d tables...", len(tables))
	startTime := time.Now()

	for _, table := range tables {
		if _, err := db.Exec(table.ddl); err != nil {
			log.Fatalf("ERROR creating table %s: %v", table.name, err)
		}
		log.Printf("Table %s is ready", table.name)
	}

	log.Printf("Schema creation finished in %v", time.Since(startTime))
}

func ensureUniqueConstraint(db *sql.DB, constraint uniqueConstraint) {
	var exists bool
	err := db.QueryRow(`
		SELECT EXISTS (
			SELECT 1 FROM information_schema.table_constraints
			WHERE table_name = $1
			AND constraint_type = 'UNIQUE'
			AND constraint_name = $2
		)
	`, constraint.table, constraint.name).Scan(&exists)
	if err != nil {
		log.Fatalf("ERROR checking constraint %s: %v", constraint.name, err)
	}

	if exists {
		log.Printf("Constraint %s already exists on table %s", constraint.name, constraint.table)
		return
	}

	stmt := fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s UNIQUE (%s)",
		constraint.table, constraint.name, constraint.columns)
	if _, err := db.Exec(stmt); err != nil {
		log.Fatalf("ERROR adding constraint %s: %v", constraint.name, err)
	}

	log.Printf("Constraint %s added on table %s (%s)", constraint.name, constraint.table, constraint.columns)
}

func seedCompanies(tx *sql.Tx, companyList []SeedCompany) {
	log.Printf("Seeding %d companies...", len(companyList))
	startTime := time.Now()

	stmt, err := tx.Prepare(`INSERT INTO companies (id, symbol, company_name, active) VALUES ($1, $2, $3, TRUE) ON CONFLICT (symbol) DO NOTHING`)
	if err != nil {
		log.Fatalf("ERROR preparing statement for companies: %v", err)
	}
	defer stmt.Close()

	successCount := 0
	errorCount := 0

	for i, c := range companyList {
		id := generateID()
		_, err := stmt.Exec(id, c.Symbol, c.Name)
		if err != nil {
			log.Printf("ERROR seeding company [%d/%d] %s: %v", i+1, len(companyList), c.Symbol, err)
			errorCount++
			continue
		}
		successCount++
		if i > 0 && i%10 == 0 {
			log.Printf("Progress: %d/%d companies processed", i+1, len(companyList))
		}
	}

	elapsed := time.Since(startTime)
	log.Printf("Company seed finished in %v. Success: %d, Errors: %d", elapsed, successCount, errorCount)
}

func main() {
	setupLogger()
	log.Println("Connecting to the database...")

	db, err := sql.Open("postgres", connectionString())
	if err != nil {
		log.Fatalf("ERROR connecting to the database: %v", err)
	}
	defer db.Close()

	err = db.Ping()
	if err != nil {
		log.Fatalf("ERROR verifying database connection: %v", err)
	}
	log.Println("Database connection established")

	createTables(db)

	for _, constraint := range uniqueConstraints {
		ensureUniqueConstraint(db, constraint)
	}

	companyList := []SeedCompany{
		{"AAPL", "Apple Inc."},
		{"MSFT", "Microsoft Corporation"},
		{"GOOGL", "Alphabet Inc."},
		{"AMZN", "Amazon.com, Inc."},
		{"NVDA", "NVIDIA Corporation"},
		{"META", "Meta Platforms, Inc."},
		{"TSLA", "Tesla, Inc."},
		{"JPM", "JPMorgan Chase & Co."},
		{"V", "Visa Inc."},
		{"JNJ", "Johnson & Johnson"},
		{"WMT", "Walmart Inc."},
		{"PG", "The Procter & Gamble Company"},
		{"UNH", "UnitedHealth Group Incorporated"},
		{"HD", "The Home Depot, Inc."},
		{"MA", "Mastercard Incorporated"},
		{"XOM", "Exxon Mobil Corporation"},
		{"KO", "The Coca-Cola Company"},
		{"PEP", "PepsiCo, Inc."},
		{"COST", "Costco Wholesale Corporation"},
		{"MCD", "McDonald's Corporation"},
		{"CSCO", "Cisco Systems, Inc."},
		{"ADBE", "Adobe Inc."},
		{"NFLX", "Netflix, Inc."},
		{"INTC", "Intel Corporation"},
		{"DIS", "The Walt Disney Company"},
		{"PFE", "Pfizer Inc."},
	}
	log.Printf("Total of %d companies defined for seeding", len(companyList))

	startTime := time.Now()
	log.Println("Starting transaction...")

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("ERROR starting transaction: %v", err)
	}

	seedCompanies(tx, companyList)

	if err := tx.Commit(); err != nil {
		log.Printf("ERROR committing transaction: %v", err)
		if err := tx.Rollback(); err != nil {
			log.Fatalf("ERROR rolling back transaction: %v", err)
		}
		log.Println("Transaction rolled back")
		os.Exit(1)
	}

	elapsed := time.Since(startTime)
	log.Printf("Initial load finished in %v!", elapsed)
}
