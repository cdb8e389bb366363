package syncing

import (
	"context"

	"github.com/pkg/errors"
	fmpdomain "github.com/stockmate/stockmate-api/infrastructure/integrator/fmp/domain"
	"github.com/stockmate/stockmate-api/infrastructure/integrator/fmp/fmpclient"
	"github.com/stockmate/stockmate-api/infrastructure/repository"
	"github.com/stockmate/stockmate-api/internal/domain"
	"github.com/stockmate/stockmate-api/pkg/log"
	"github.com/stockmate/stockmate-api/pkg/utils"
)

// CompanySyncer keeps the local company registry aligned with the FMP
// company profile.
type CompanySyncer interface {
	SyncProfile(ctx context.Context, symbol string) (*domain.Company, error)
}

type companySyncer struct {
	client      fmpclient.Client
	companyRepo repository.CompanyRepository
}

func NewCompanySyncer(client fmpclient.Client, companyRepo repository.CompanyRepository) CompanySyncer {
	return &companySyncer{
		client:      client,
		companyRepo: companyRepo,
	}
}

// SyncProfile fetches the company profile and upserts the company row.
// Unknown symbols get a fresh nanoid; known ones keep their ID.
func (s *companySyncer) SyncProfile(ctx context.Context, symbol string) (*domain.Company, error) {
	profile, err := s.client.CompanyProfile(symbol)
	if err != nil {
		return nil, errors.Wrap(err, "fetching company profile")
	}
	if profile == nil {
		return nil, nil
	}

	company, err := s.companyRepo.GetBySymbol(symbol)
	if err != nil {
		return nil, errors.Wrap(err, "loading company")
	}

	if company == nil {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, errors.Wrap(err, "generating company id")
		}
		company = &domain.Company{
			ID:     id,
			Symbol: profile.Symbol,
			Active: true,
		}
	}

	applyProfile(company, profile)

	updated, err := s.companyRepo.Upsert(company)
	if err != nil {
		return nil, errors.Wrap(err, "upserting company")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"symbol":     updated.Symbol,
		"company_id": updated.ID,
	}).Info("Company profile synced")

	return updated, nil
}

func applyProfile(company *domain.Company, profile *fmpdomain.CompanyProfile) {
	company.CompanyName = profile.CompanyName
	company.Currency = profile.Currency
	company.ExchangeFullName = profile.ExchangeFullName
	company.Exchange = profile.Exchange
	company.Industry = profile.Industry
	company.Sector = profile.Sector
	company.Country = profile.Country
	company.Website = profile.Website
	company.Description = profile.Description
	company.Phone = profile.Phone
	company.Address = profile.Address
	company.City = profile.City
	company.State = profile.State
	company.Zip = profile.Zip
	company.Image = profile.Image
	company.IPODate = profile.IPODate

	if profile.MarketCap != nil {
		company.MarketCap = *profile.MarketCap
	}
	if profile.IsActivelyTrading != nil {
		company.Active = *profile.IsActivelyTrading
	}
}
