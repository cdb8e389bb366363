// Package domain contains the data structures of the application domain.
package domain

import "time"

// Company is a company registered for data synchronization. The ID is a
// short nanoid generated on first profile sync.
type Company struct {
	ID               string    `json:"id"`
	Symbol           string    `json:"symbol"`
	CompanyName      string    `json:"company_name"`
	MarketCap        int64     `json:"market_cap"`
	Currency         string    `json:"currency"`
	ExchangeFullName string    `json:"exchange_full_name"`
	Exchange         string    `json:"exchange"`
	Industry         string    `json:"industry"`
	Sector           string    `json:"sector"`
	Country          string    `json:"country"`
	Website          string    `json:"website"`
	Description      string    `json:"description"`
	Phone            string    `json:"phone"`
	Address          string    `json:"address"`
	City             string    `json:"city"`
	State            string    `json:"state"`
	Zip              string    `json:"zip"`
	Image            string    `json:"image"`
	IPODate          string    `json:"ipo_date"` // format yyyy-mm-dd
	Active           bool      `json:"active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
