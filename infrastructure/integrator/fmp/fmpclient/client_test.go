package fmpclient

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	fmpdomain "github.com/stockmate/stockmate-api/infrastructure/integrator/fmp/domain"
	"github.com/stockmate/stockmate-api/internal/config"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		FMP: config.FMP{
			BaseURL:      baseURL,
			APIKey:       "test-key",
			Timeout:      2 * time.Second,
			MaxRetries:   2,
			RetryBackoff: time.Millisecond,
			RateLimitRPS: 1000,
		},
	}
}

func TestCompanyProfileDecodesArrayResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/profile", r.URL.Path)
		assert.Equal(t, "AAPL", r.URL.Query().Get("symbol"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{
			"symbol": "AAPL",
			"companyName": "Apple Inc.",
			"marketCap": 3500000000000,
			"currency": "USD",
			"exchangeFullName": "NASDAQ Global Select",
			"exchange": "NASDAQ",
			"sector": "Technology",
			"ipoDate": "1980-12-12"
		}]`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	profile, err := client.CompanyProfile("AAPL")

	assert.NoError(t, err)
	assert.NotNil(t, profile)
	assert.Equal(t, "Apple Inc.", profile.CompanyName)
	assert.Equal(t, int64(3500000000000), *profile.MarketCap)
	assert.Equal(t, "1980-12-12", profile.IPODate)
}

func TestCompanyProfileToleratesBareObject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"symbol": "AAPL", "companyName": "Apple Inc."}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	profile, err := client.CompanyProfile("AAPL")

	assert.NoError(t, err)
	assert.NotNil(t, profile)
	assert.Equal(t, "Apple Inc.", profile.CompanyName)
}

func TestCompanyProfileReturnsNilOnEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	profile, err := client.CompanyProfile("ZZZZ")

	assert.NoError(t, err)
	assert.Nil(t, profile)
}

func TestGetRetriesOnRateLimit(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`[{"symbol": "AAPL", "companyName": "Apple Inc."}]`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	profile, err := client.CompanyProfile("AAPL")

	assert.NoError(t, err)
	assert.NotNil(t, profile)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGetDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "invalid api key"}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	_, err := client.CompanyProfile("AAPL")

	assert.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())

	apiErr, ok := err.(*fmpdomain.APIError)
	if assert.True(t, ok) {
		assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		assert.False(t, apiErr.Retryable())
	}
}

func TestGetExhaustsRetriesOnServerErrors(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	_, err := client.CompanyProfile("AAPL")

	assert.Error(t, err)
	// First attempt plus MaxRetries.
	assert.Equal(t, int32(3), calls.Load())
}

func TestKeyMetricsForwardsPeriodAndLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/key-metrics", r.URL.Path)
		assert.Equal(t, "annual", r.URL.Query().Get("period"))
		assert.Equal(t, "40", r.URL.Query().Get("limit"))

		_, _ = w.Write([]byte(`[{
			"symbol": "AAPL",
			"date": "2024-09-28",
			"fiscalYear": "2024",
			"period": "FY",
			"reportedCurrency": "USD",
			"marketCap": 3495160329570,
			"returnOnEquity": 1.6459350307287095,
			"researchAndDevelopementToRevenue": 0.08022299794136074
		}]`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	metrics, err := client.KeyMetrics("AAPL", "annual", 40)

	assert.NoError(t, err)
	assert.Len(t, metrics, 1)
	assert.Equal(t, "2024", metrics[0].FiscalYear)
	assert.InDelta(t, 1.6459, *metrics[0].ReturnOnEquity, 0.001)
	// The vendor misspells this field; the tag must follow suit.
	assert.InDelta(t, 0.0802, *metrics[0].ResearchAndDevelopmentToRevenue, 0.001)
}

func TestFinancialRatiosDecodesList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ratios", r.URL.Path)

		_, _ = w.Write([]byte(`[
			{"symbol": "AAPL", "date": "2024-09-28", "grossProfitMargin": 0.4621, "currentRatio": 0.8673},
			{"symbol": "AAPL", "date": "2023-09-30", "grossProfitMargin": 0.4413, "currentRatio": 0.988}
		]`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	ratios, err := client.FinancialRatios("AAPL", "annual", 40)

	assert.NoError(t, err)
	assert.Len(t, ratios, 2)
	assert.InDelta(t, 0.4621, *ratios[0].GrossProfitMargin, 0.0001)
	assert.InDelta(t, 0.988, *ratios[1].CurrentRatio, 0.0001)
}

func TestPriceTargetSummaryDecodesPublishers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{
			"symbol": "AAPL",
			"lastMonthCount": 5,
			"lastMonthAvgPriceTarget": 252.1,
			"allTimeCount": 113,
			"allTimeAvgPriceTarget": 186.9,
			"publishers": ["Benzinga", "TheFly"]
		}]`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	summary, err := client.PriceTargetSummary("AAPL")

	assert.NoError(t, err)
	assert.NotNil(t, summary)
	assert.Equal(t, 5, *summary.LastMonthCount)
	assert.Equal(t, []string{"Benzinga", "TheFly"}, summary.Publishers)
}
