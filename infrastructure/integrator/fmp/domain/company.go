package fmpdomain

// CompanyProfile is the /profile payload.
type CompanyProfile struct {
	Symbol           string   `json:"symbol"`
	CompanyName      string   `json:"companyName"`
	Price            *float64 `json:"price"`
	MarketCap        *int64   `json:"marketCap"`
	Currency         string   `json:"currency"`
	ExchangeFullName string   `json:"exchangeFullName"`
	Exchange         string   `json:"exchange"`
	Industry         string   `json:"industry"`
	Website          string   `json:"website"`
	Description      string   `json:"description"`
	Sector           string   `json:"sector"`
	Country          string   `json:"country"`
	Phone            string   `json:"phone"`
	Address          string   `json:"address"`
	City             string   `json:"city"`
	State            string   `json:"state"`
	Zip              string   `json:"zip"`
	Image            string   `json:"image"`
	IPODate          string   `json:"ipoDate"`
	DefaultImage     bool     `json:"defaultImage"`
	IsActivelyTrading *bool   `json:"isActivelyTrading"`
}
