package fmpclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/time/rate"

	fmpdomain "github.com/stockmate/stockmate-api/infrastructure/integrator/fmp/domain"
	"github.com/stockmate/stockmate-api/internal/config"
	"github.com/stockmate/stockmate-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client is the FMP stable API surface the sync services depend on. Every
// method returns nil (not an error) when the API has no data for the symbol.
type Client interface {
	CompanyProfile(symbol string) (*fmpdomain.CompanyProfile, error)
	BalanceSheetStatements(symbol, period string, limit int) ([]fmpdomain.BalanceSheetStatement, error)
	IncomeStatements(symbol, period string, limit int) ([]fmpdomain.IncomeStatement, error)
	CashFlowStatements(symbol, period string, limit int) ([]fmpdomain.CashFlowStatement, error)
	KeyMetrics(symbol, period string, limit int) ([]fmpdomain.KeyMetrics, error)
	FinancialRatios(symbol, period string, limit int) ([]fmpdomain.FinancialRatios, error)
	FinancialScores(symbol string) (*fmpdomain.FinancialScores, error)
	PriceTargetConsensus(symbol string) (*fmpdomain.PriceTargetConsensus, error)
	PriceTargetSummary(symbol string) (*fmpdomain.PriceTargetSummary, error)
}

type FMPClient struct {
	cfg        *config.Config
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(cfg *config.Config) Client {
	return &FMPClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.FMP.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.FMP.RateLimitRPS), 1),
	}
}

// get performs a rate-limited GET against the FMP API, retrying transient
// failures (429 and 5xx) with exponential backoff.
func (c *FMPClient) get(endpoint string, params url.Values) ([]byte, error) {
	base, err := url.Parse(c.cfg.FMP.BaseURL)
	if err != nil {
		return nil, err
	}
	base.Path = path.Join(base.Path, endpoint)

	query := base.Query()
	for key, values := range params {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	query.Set("apikey", c.cfg.FMP.APIKey)
	base.RawQuery = query.Encode()

	backoff := c.cfg.FMP.RetryBackoff
	var lastErr error

	for attempt := 0; attempt <= c.cfg.FMP.MaxRetries; attempt++ {
		if attempt > 0 {
			log.L.WithFields(log.Fields{
				"endpoint": endpoint,
				"attempt":  attempt,
				"backoff":  backoff.String(),
			}).Warn("Retrying FMP request")

			time.Sleep(backoff)
			backoff *= 2
		}

		body, err := c.do(base.String(), endpoint)
		if err == nil {
			return body, nil
		}
		lastErr = err

		var apiErr *fmpdomain.APIError
		if errors.As(err, &apiErr) && !apiErr.Retryable() {
			return nil, err
		}
	}

	return nil, lastErr
}

func (c *FMPClient) do(fullURL, endpoint string) ([]byte, error) {
	if err := c.limiter.Wait(context.Background()); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.cfg.FMP.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &fmpdomain.APIError{
			StatusCode: resp.StatusCode,
			Endpoint:   endpoint,
			Body:       truncateBody(body),
		}
	}

	return body, nil
}

// truncateBody keeps error payloads short enough to log.
func truncateBody(body []byte) string {
	const max = 200
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
