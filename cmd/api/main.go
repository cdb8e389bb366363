package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stockmate/stockmate-api/infrastructure/database/postgres"
	"github.com/stockmate/stockmate-api/infrastructure/integrator/fmp/fmpclient"
	"github.com/stockmate/stockmate-api/infrastructure/repository"
	"github.com/stockmate/stockmate-api/internal/api"
	"github.com/stockmate/stockmate-api/internal/config"
	"github.com/stockmate/stockmate-api/internal/scheduler"
	"github.com/stockmate/stockmate-api/internal/usecases/authenticating"
	"github.com/stockmate/stockmate-api/internal/usecases/syncing"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Log level set to: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	companyRepo := repository.NewCompanyRepository(pgConn)
	statementRepo := repository.NewFinancialStatementRepository(pgConn)
	metricsRepo := repository.NewMetricsRepository(pgConn)
	healthRepo := repository.NewFinancialHealthRepository(pgConn)
	priceTargetRepo := repository.NewPriceTargetRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	fmpClient := fmpclient.NewClient(cfg)

	companySyncer := syncing.NewCompanySyncer(fmpClient, companyRepo)
	statementSyncer := syncing.NewStatementSyncer(fmpClient, companyRepo, statementRepo)
	metricsSyncer := syncing.NewMetricsSyncer(fmpClient, companyRepo, metricsRepo, healthRepo)
	priceTargetSyncer := syncing.NewPriceTargetSyncer(fmpClient, companyRepo, priceTargetRepo)
	healthSyncer := syncing.NewHealthSyncer(companyRepo, metricsRepo, healthRepo)

	fullSyncer := syncing.NewFullSyncer(
		companySyncer,
		statementSyncer,
		metricsSyncer,
		priceTargetSyncer,
		healthSyncer,
	)

	companySyncService := scheduler.NewCompanySyncService(companyRepo, fullSyncer, cfg)

	if err := companySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error starting the company sync scheduler")
	} else {
		logrus.Info("Company sync scheduler started")
	}

	server, err := api.New(
		cfg,
		companySyncer,
		statementSyncer,
		metricsSyncer,
		priceTargetSyncer,
		healthSyncer,
		fullSyncer,
		authenticator,
		companySyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger sets the log format and moves the working directory next to
// the binary source so the .env lookup behaves the same everywhere.
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn opens the database connection and fails fast when it is unreachable.
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Error connecting to PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Error verifying the PostgreSQL connection")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
