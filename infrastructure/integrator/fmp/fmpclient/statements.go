package fmpclient

import (
	"fmt"
	"net/url"
	"strconv"

	fmpdomain "github.com/stockmate/stockmate-api/infrastructure/integrator/fmp/domain"
)

func statementParams(symbol, period string, limit int) url.Values {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("period", period)
	params.Set("limit", strconv.Itoa(limit))
	return params
}

// BalanceSheetStatements fetches up to limit balance sheets for a symbol,
// newest first.
func (c *FMPClient) BalanceSheetStatements(symbol, period string, limit int) ([]fmpdomain.BalanceSheetStatement, error) {
	body, err := c.get("balance-sheet-statement", statementParams(symbol, period, limit))
	if err != nil {
		return nil, err
	}

	var statements []fmpdomain.BalanceSheetStatement
	if err := json.Unmarshal(body, &statements); err != nil {
		return nil, fmt.Errorf("decoding balance sheet response: %w", err)
	}

	return statements, nil
}

// IncomeStatements fetches up to limit income statements for a symbol,
// newest first.
func (c *FMPClient) IncomeStatements(symbol, period string, limit int) ([]fmpdomain.IncomeStatement, error) {
	body, err := c.get("income-statement", statementParams(symbol, period, limit))
	if err != nil {
		return nil, err
	}

	var statements []fmpdomain.IncomeStatement
	if err := json.Unmarshal(body, &statements); err != nil {
		return nil, fmt.Errorf("decoding income statement response: %w", err)
	}

	return statements, nil
}

// CashFlowStatements fetches up to limit cash flow statements for a symbol,
// newest first.
func (c *FMPClient) CashFlowStatements(symbol, period string, limit int) ([]fmpdomain.CashFlowStatement, error) {
	body, err := c.get("cash-flow-statement", statementParams(symbol, period, limit))
	if err != nil {
		return nil, err
	}

	var statements []fmpdomain.CashFlowStatement
	if err := json.Unmarshal(body, &statements); err != nil {
		return nil, fmt.Errorf("decoding cash flow response: %w", err)
	}

	return statements, nil
}
