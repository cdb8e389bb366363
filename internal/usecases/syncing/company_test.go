package syncing

import (
	"context"
	"testing"

	fmpdomain "github.com/stockmate/stockmate-api/infrastructure/integrator/fmp/domain"
	fmpmocks "github.com/stockmate/stockmate-api/infrastructure/integrator/fmp/mocks"
	"github.com/stockmate/stockmate-api/infrastructure/repository/mocks"
	"github.com/stockmate/stockmate-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func int64Ptr(v int64) *int64 { return &v }

func boolPtr(v bool) *bool { return &v }

func TestCompanySyncer_SyncProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := fmpmocks.NewMockClient(ctrl)
	mockCompanyRepo := mocks.NewMockCompanyRepository(ctrl)

	service := NewCompanySyncer(mockClient, mockCompanyRepo)

	profile := &fmpdomain.CompanyProfile{
		Symbol:            "AAPL",
		CompanyName:       "Apple Inc.",
		MarketCap:         int64Ptr(3500000000000),
		Currency:          "USD",
		Exchange:          "NASDAQ",
		ExchangeFullName:  "NASDAQ Global Select",
		Industry:          "Consumer Electronics",
		Sector:            "Technology",
		Country:           "US",
		IPODate:           "1980-12-12",
		IsActivelyTrading: boolPtr(true),
	}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, company *domain.Company, err error)
	}{
		{
			name: "unknown symbol gets a fresh ID and the profile fields",
			setup: func() {
				mockClient.EXPECT().CompanyProfile("AAPL").Return(profile, nil)
				mockCompanyRepo.EXPECT().GetBySymbol("AAPL").Return(nil, nil)
				mockCompanyRepo.EXPECT().
					Upsert(gomock.Any()).
					DoAndReturn(func(company *domain.Company) (*domain.Company, error) {
						return company, nil
					})
			},
			validate: func(t *testing.T, company *domain.Company, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, company.ID)
				assert.Len(t, company.ID, 6)
				assert.Equal(t, "AAPL", company.Symbol)
				assert.Equal(t, "Apple Inc.", company.CompanyName)
				assert.Equal(t, int64(3500000000000), company.MarketCap)
				assert.Equal(t, "1980-12-12", company.IPODate)
				assert.True(t, company.Active)
			},
		},
		{
			name: "known symbol keeps its ID",
			setup: func() {
				mockClient.EXPECT().CompanyProfile("AAPL").Return(profile, nil)
				mockCompanyRepo.EXPECT().GetBySymbol("AAPL").Return(&domain.Company{
					ID:     "abc123",
					Symbol: "AAPL",
					Active: true,
				}, nil)
				mockCompanyRepo.EXPECT().
					Upsert(gomock.Any()).
					DoAndReturn(func(company *domain.Company) (*domain.Company, error) {
						return company, nil
					})
			},
			validate: func(t *testing.T, company *domain.Company, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "abc123", company.ID)
				assert.Equal(t, "Apple Inc.", company.CompanyName)
			},
		},
		{
			name: "delisted company is deactivated",
			setup: func() {
				delisted := *profile
				delisted.IsActivelyTrading = boolPtr(false)

				mockClient.EXPECT().CompanyProfile("AAPL").Return(&delisted, nil)
				mockCompanyRepo.EXPECT().GetBySymbol("AAPL").Return(&domain.Company{
					ID:     "abc123",
					Symbol: "AAPL",
					Active: true,
				}, nil)
				mockCompanyRepo.EXPECT().
					Upsert(gomock.Any()).
					DoAndReturn(func(company *domain.Company) (*domain.Company, error) {
						return company, nil
					})
			},
			validate: func(t *testing.T, company *domain.Company, err error) {
				assert.NoError(t, err)
				assert.False(t, company.Active)
			},
		},
		{
			name: "no profile data returns nil without touching the repository",
			setup: func() {
				mockClient.EXPECT().CompanyProfile("AAPL").Return(nil, nil)
			},
			validate: func(t *testing.T, company *domain.Company, err error) {
				assert.NoError(t, err)
				assert.Nil(t, company)
			},
		},
		{
			name: "API errors surface wrapped",
			setup: func() {
				mockClient.EXPECT().CompanyProfile("AAPL").Return(nil, &fmpdomain.APIError{
					StatusCode: 500,
					Endpoint:   "profile",
				})
			},
			validate: func(t *testing.T, company *domain.Company, err error) {
				assert.Error(t, err)
				assert.Nil(t, company)
				assert.Contains(t, err.Error(), "fetching company profile")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			company, err := service.SyncProfile(context.Background(), "AAPL")
			tt.validate(t, company, err)
		})
	}
}
