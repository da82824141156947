package services

import (
	"context"
	"fmt"

	"server/src/models"
	"server/src/repositories"
	"server/src/schemas"
	"server/src/utils"

	"github.com/shopspring/decimal"
)

// StockCategoryService owns category CRUD and category-scoped performance.
// Categories are global; performance queries are always scoped to one
// portfolio and only count holding STOCK assets.
type StockCategoryService struct {
	categoryRepo repositories.StockCategoryRepository
	assetRepo    repositories.AssetRepository
	portfolioSvc *PortfolioService
}

func NewStockCategoryService(
	categoryRepo repositories.StockCategoryRepository,
	assetRepo repositories.AssetRepository,
	portfolioSvc *PortfolioService,
) *StockCategoryService {
	return &StockCategoryService{
		categoryRepo: categoryRepo,
		assetRepo:    assetRepo,
		portfolioSvc: portfolioSvc,
	}
}

func (s *StockCategoryService) CreateCategory(ctx context.Context, req *schemas.StockCategoryRequest) (*schemas.StockCategoryResponse, error) {
	if req.CategoryName == "" {
		return nil, utils.BadRequest("categoryName must not be blank")
	}
	exists, err := s.categoryRepo.ExistsByName(ctx, req.CategoryName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, utils.AlreadyExists(fmt.Sprintf("category '%s' already exists", req.CategoryName))
	}

	category := &models.StockCategory{
		Name:        req.CategoryName,
		Description: req.Description,
	}
	if err := s.categoryRepo.Create(ctx, category, nil); err != nil {
		return nil, err
	}

	utils.LoggerFromContext(ctx).Infof("StockCategory created: %d", category.ID)
	return mapCategoryToResponse(category), nil
}

func (s *StockCategoryService) GetAllCategories(ctx context.Context) ([]schemas.StockCategoryResponse, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]schemas.StockCategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, *mapCategoryToResponse(&categories[i]))
	}
	return responses, nil
}

func (s *StockCategoryService) GetCategory(ctx context.Context, categoryID int64) (*schemas.StockCategoryResponse, error) {
	category, err := s.findCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return mapCategoryToResponse(category), nil
}

func (s *StockCategoryService) UpdateCategory(ctx context.Context, categoryID int64, req *schemas.StockCategoryRequest) (*schemas.StockCategoryResponse, error) {
	category, err := s.findCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if req.CategoryName != "" && req.CategoryName != category.Name {
		exists, err := s.categoryRepo.ExistsByName(ctx, req.CategoryName)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, utils.AlreadyExists(fmt.Sprintf("category '%s' already exists", req.CategoryName))
		}
		category.Name = req.CategoryName
	}
	if req.Description != "" {
		category.Description = req.Description
	}

	if err := s.categoryRepo.Update(ctx, category, nil); err != nil {
		return nil, err
	}
	return mapCategoryToResponse(category), nil
}

// DeleteCategory refuses to delete a category that assets still reference.
func (s *StockCategoryService) DeleteCategory(ctx context.Context, categoryID int64) error {
	category, err := s.findCategoryByID(ctx, categoryID)
	if err != nil {
		return err
	}

	count, err := s.assetRepo.CountByCategory(ctx, categoryID)
	if err != nil {
		return err
	}
	if count > 0 {
		return utils.BadRequest(fmt.Sprintf("category %d is referenced by %d asset(s)", categoryID, count))
	}

	if err := s.categoryRepo.Delete(ctx, category.ID, nil); err != nil {
		return err
	}
	utils.LoggerFromContext(ctx).Infof("StockCategory %d deleted", categoryID)
	return nil
}

// GetCategoryPerformance aggregates every category with at least one holding
// stock in the portfolio. Categories without holdings are omitted, not errors.
func (s *StockCategoryService) GetCategoryPerformance(ctx context.Context, portfolioID int64) ([]schemas.StockCategoryPerformanceResponse, error) {
	if _, err := s.portfolioSvc.findPortfolioByID(ctx, portfolioID); err != nil {
		return nil, err
	}

	holdingStocks, err := s.assetRepo.GetHoldingStocksByPortfolio(ctx, portfolioID)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[int64][]models.Asset)
	var order []int64
	for _, a := range holdingStocks {
		if a.CategoryID == nil {
			continue
		}
		if _, seen := byCategory[*a.CategoryID]; !seen {
			order = append(order, *a.CategoryID)
		}
		byCategory[*a.CategoryID] = append(byCategory[*a.CategoryID], a)
	}

	result := make([]schemas.StockCategoryPerformanceResponse, 0, len(byCategory))
	for _, categoryID := range order {
		perf, err := s.calcPerformance(ctx, categoryID, byCategory[categoryID])
		if err != nil {
			return nil, err
		}
		result = append(result, *perf)
	}
	return result, nil
}

// GetCategoryPerformanceByID aggregates one category in one portfolio. Zero
// matching holdings is an error, deliberately distinct from the all-categories
// query which just omits empty categories.
func (s *StockCategoryService) GetCategoryPerformanceByID(ctx context.Context, portfolioID, categoryID int64) (*schemas.StockCategoryPerformanceResponse, error) {
	if _, err := s.portfolioSvc.findPortfolioByID(ctx, portfolioID); err != nil {
		return nil, err
	}
	if _, err := s.findCategoryByID(ctx, categoryID); err != nil {
		return nil, err
	}

	holdingStocks, err := s.assetRepo.GetHoldingStocksByPortfolioAndCategory(ctx, portfolioID, categoryID)
	if err != nil {
		return nil, err
	}
	if len(holdingStocks) == 0 {
		return nil, utils.NotFound(fmt.Sprintf("no holding stocks for category %d in portfolio %d", categoryID, portfolioID))
	}
	return s.calcPerformance(ctx, categoryID, holdingStocks)
}

func (s *StockCategoryService) calcPerformance(ctx context.Context, categoryID int64, assets []models.Asset) (*schemas.StockCategoryPerformanceResponse, error) {
	category, err := s.findCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	totalInvested := decimal.Zero
	currentValue := decimal.Zero
	for i := range assets {
		totalInvested = totalInvested.Add(models.InvestedValue(&assets[i]))
		currentValue = currentValue.Add(models.CurrentValue(&assets[i]))
	}
	absoluteReturn := currentValue.Sub(totalInvested)
	percentageReturn := decimal.Zero
	if totalInvested.IsPositive() {
		percentageReturn = models.PercentageOf(absoluteReturn, totalInvested)
	}

	return &schemas.StockCategoryPerformanceResponse{
		CategoryID:       category.ID,
		CategoryName:     category.Name,
		Description:      category.Description,
		StockCount:       len(assets),
		TotalInvested:    totalInvested,
		CurrentValue:     currentValue,
		AbsoluteReturn:   absoluteReturn,
		PercentageReturn: percentageReturn,
	}, nil
}

func (s *StockCategoryService) findCategoryByID(ctx context.Context, categoryID int64) (*models.StockCategory, error) {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, utils.NotFound(fmt.Sprintf("stock category not found with ID: %d", categoryID))
	}
	return category, nil
}

func mapCategoryToResponse(c *models.StockCategory) *schemas.StockCategoryResponse {
	return &schemas.StockCategoryResponse{
		CategoryID:   c.ID,
		CategoryName: c.Name,
		Description:  c.Description,
	}
}
