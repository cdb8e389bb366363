package handler

import (
	"net/http"

	"github.com/stockmate/stockmate-api/internal/api/handler/router"
	"github.com/stockmate/stockmate-api/internal/usecases/syncing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func CompanySync(profileService syncing.CompanySyncer, fullSyncService syncing.FullSyncer) []router.Route {
	return []router.Route{
		{
			Path:    "/internal/company/:symbol/profile/sync",
			Method:  http.MethodGet,
			Handler: SyncCompanyProfile(profileService),
		},
		{
			Path:    "/internal/company/:symbol/full-sync",
			Method:  http.MethodGet,
			Handler: FullCompanySync(fullSyncService),
		},
	}
}

func StatementSync(service syncing.StatementSyncer) []router.Route {
	return []router.Route{
		{
			Path:    "/internal/balance-sheets/:symbol/sync",
			Method:  http.MethodGet,
			Handler: SyncBalanceSheets(service),
		},
		{
			Path:    "/internal/income-statements/:symbol/sync",
			Method:  http.MethodGet,
			Handler: SyncIncomeStatements(service),
		},
		{
			Path:    "/internal/cash-flow-statements/:symbol/sync",
			Method:  http.MethodGet,
			Handler: SyncCashFlowStatements(service),
		},
	}
}

func MetricsSync(service syncing.MetricsSyncer) []router.Route {
	return []router.Route{
		{
			Path:    "/internal/key-metrics/:symbol/sync",
			Method:  http.MethodGet,
			Handler: SyncKeyMetrics(service),
		},
		{
			Path:    "/internal/financial-ratios/:symbol/sync",
			Method:  http.MethodGet,
			Handler: SyncFinancialRatios(service),
		},
		{
			Path:    "/internal/financial-scores/:symbol/sync",
			Method:  http.MethodGet,
			Handler: SyncFinancialScores(service),
		},
	}
}

func HealthSync(service syncing.HealthSyncer) []router.Route {
	return []router.Route{
		{
			Path:    "/internal/financial-health/:symbol/sync",
			Method:  http.MethodGet,
			Handler: SyncFinancialHealth(service),
		},
	}
}

func PriceTargetSync(service syncing.PriceTargetSyncer) []router.Route {
	return []router.Route{
		{
			Path:    "/internal/price-targets/:symbol/sync",
			Method:  http.MethodGet,
			Handler: SyncPriceTargets(service),
		},
		{
			Path:    "/internal/price-target-summary/:symbol/sync",
			Method:  http.MethodGet,
			Handler: SyncPriceTargetSummary(service),
		},
	}
}

func CronJobs(service CronService) []router.Route {
	return []router.Route{
		{
			Path:    "/internal/cron/trigger",
			Method:  http.MethodPost,
			Handler: TriggerCronJob(service),
		},
		{
			Path:    "/internal/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(service),
		},
	}
}
