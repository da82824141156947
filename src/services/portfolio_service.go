package services

import (
	"context"
	"fmt"

	"server/src/models"
	"server/src/repositories"
	"server/src/schemas"
	"server/src/utils"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type PortfolioService struct {
	portfolioRepo repositories.PortfolioRepository
	assetRepo     repositories.AssetRepository
	groupRepo     repositories.AssetGroupRepository
	txRunner      repositories.TxRunner
	clock         utils.Clock
}

func NewPortfolioService(
	portfolioRepo repositories.PortfolioRepository,
	assetRepo repositories.AssetRepository,
	groupRepo repositories.AssetGroupRepository,
	txRunner repositories.TxRunner,
	clock utils.Clock,
) *PortfolioService {
	return &PortfolioService{
		portfolioRepo: portfolioRepo,
		assetRepo:     assetRepo,
		groupRepo:     groupRepo,
		txRunner:      txRunner,
		clock:         clock,
	}
}

func (s *PortfolioService) CreatePortfolio(ctx context.Context, req *schemas.PortfolioRequest) (*schemas.PortfolioResponse, error) {
	if req.PortfolioName == "" {
		return nil, utils.BadRequest("portfolioName must not be blank")
	}
	if !req.InitialInvestment.IsPositive() {
		return nil, utils.BadRequest("initialInvestment must be positive")
	}

	exists, err := s.portfolioRepo.ExistsByName(ctx, req.PortfolioName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, utils.AlreadyExists(fmt.Sprintf("portfolio '%s' already exists", req.PortfolioName))
	}

	p := &models.Portfolio{
		Name:              req.PortfolioName,
		InitialInvestment: req.InitialInvestment,
		CreatedDate:       s.clock.Now(),
	}
	if err := s.portfolioRepo.Create(ctx, p, nil); err != nil {
		return nil, err
	}

	utils.LoggerFromContext(ctx).Infof("Portfolio created: %d", p.ID)
	return mapPortfolioToResponse(p), nil
}

func (s *PortfolioService) GetPortfolio(ctx context.Context, portfolioID int64) (*schemas.PortfolioResponse, error) {
	p, err := s.findPortfolioByID(ctx, portfolioID)
	if err != nil {
		return nil, err
	}
	return mapPortfolioToResponse(p), nil
}

func (s *PortfolioService) GetAllPortfolios(ctx context.Context) ([]schemas.PortfolioResponse, error) {
	portfolios, err := s.portfolioRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]schemas.PortfolioResponse, 0, len(portfolios))
	for i := range portfolios {
		responses = append(responses, *mapPortfolioToResponse(&portfolios[i]))
	}
	return responses, nil
}

// DeletePortfolio detaches all the portfolio's assets from their groups, then
// deletes the portfolio. Assets and credit cards go with it via the schema's
// cascade; history rows stay.
func (s *PortfolioService) DeletePortfolio(ctx context.Context, portfolioID int64) error {
	p, err := s.findPortfolioByID(ctx, portfolioID)
	if err != nil {
		return err
	}

	err = s.txRunner.WithinTx(ctx, func(tx pgx.Tx) error {
		if err := s.groupRepo.RemoveAllForPortfolio(ctx, p.ID, tx); err != nil {
			return err
		}
		return s.portfolioRepo.Delete(ctx, p.ID, tx)
	})
	if err != nil {
		return err
	}

	utils.LoggerFromContext(ctx).Infof("Portfolio %d deleted", portfolioID)
	return nil
}

// GetPortfolioSummary sums invested and current value over the portfolio's
// holding assets and breaks current value down by asset type. Wishlist assets
// are excluded from every figure.
func (s *PortfolioService) GetPortfolioSummary(ctx context.Context, portfolioID int64) (*schemas.PortfolioSummaryResponse, error) {
	p, err := s.findPortfolioByID(ctx, portfolioID)
	if err != nil {
		return nil, err
	}

	holdings, err := s.assetRepo.GetByPortfolioAndWishlist(ctx, portfolioID, false)
	if err != nil {
		return nil, err
	}

	totalInvested := decimal.Zero
	currentValue := decimal.Zero
	for i := range holdings {
		totalInvested = totalInvested.Add(models.InvestedValue(&holdings[i]))
		currentValue = currentValue.Add(models.CurrentValue(&holdings[i]))
	}

	absoluteReturn := currentValue.Sub(totalInvested)
	percentageReturn := decimal.Zero
	if totalInvested.IsPositive() {
		percentageReturn = models.PercentageOf(absoluteReturn, totalInvested)
	}

	return &schemas.PortfolioSummaryResponse{
		PortfolioID:           p.ID,
		PortfolioName:         p.Name,
		TotalInvestedAmount:   totalInvested,
		CurrentPortfolioValue: currentValue,
		AbsoluteReturn:        absoluteReturn,
		PercentageReturn:      percentageReturn,
		AssetAllocation:       assetAllocation(holdings, currentValue),
	}, nil
}

// assetAllocation maps asset type to its share of total current value. Empty
// when the total is zero.
func assetAllocation(holdings []models.Asset, totalValue decimal.Decimal) map[string]decimal.Decimal {
	allocation := make(map[string]decimal.Decimal)
	if totalValue.IsZero() {
		return allocation
	}

	typeValues := make(map[models.AssetType]decimal.Decimal)
	for i := range holdings {
		a := &holdings[i]
		typeValues[a.AssetType] = typeValues[a.AssetType].Add(models.CurrentValue(a))
	}
	for assetType, value := range typeValues {
		allocation[string(assetType)] = models.PercentageOf(value, totalValue)
	}
	return allocation
}

func (s *PortfolioService) findPortfolioByID(ctx context.Context, portfolioID int64) (*models.Portfolio, error) {
	p, err := s.portfolioRepo.GetByID(ctx, portfolioID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, utils.NotFound(fmt.Sprintf("portfolio not found with ID: %d", portfolioID))
	}
	return p, nil
}

func mapPortfolioToResponse(p *models.Portfolio) *schemas.PortfolioResponse {
	return &schemas.PortfolioResponse{
		PortfolioID:       p.ID,
		PortfolioName:     p.Name,
		CreatedDate:       p.CreatedDate.Format(utils.ShortDashDateLayout),
		InitialInvestment: p.InitialInvestment,
	}
}
