package api

import (
	"net/http"
	"time"

	"server/src/api/handlers"
	"server/src/config"
	"server/src/database"
	"server/src/repositories"
	"server/src/services"
	"server/src/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Router  *chi.Mux
	Handler *handlers.Handler
	Port    string
}

// NewServer wires repositories, services, and routes. The sql driver setting
// selects postgres; "memory" runs everything on the in-memory store.
func NewServer(cfg *config.Config) (*Server, error) {
	logger := utils.NewLogger(cfg.Logging.Level, cfg.Logging.LogToFile, cfg.Logging.FilePath)

	var deps serviceDeps
	if cfg.Databases.SQL.Driver == "memory" {
		store := repositories.NewMemoryStore()
		deps = serviceDeps{
			portfolioRepo: repositories.NewMemoryPortfolioRepository(store),
			assetRepo:     repositories.NewMemoryAssetRepository(store),
			groupRepo:     repositories.NewMemoryAssetGroupRepository(store),
			categoryRepo:  repositories.NewMemoryStockCategoryRepository(store),
			historyRepo:   repositories.NewMemoryAssetHistoryRepository(store),
			cardRepo:      repositories.NewMemoryCreditCardRepository(store),
			txRunner:      repositories.NewMemoryTxRunner(store),
		}
	} else {
		db, err := database.SetupDB(cfg)
		if err != nil {
			return nil, err
		}
		deps = serviceDeps{
			portfolioRepo: repositories.NewPortfolioRepository(db),
			assetRepo:     repositories.NewAssetRepository(db),
			groupRepo:     repositories.NewAssetGroupRepository(db),
			categoryRepo:  repositories.NewStockCategoryRepository(db),
			historyRepo:   repositories.NewAssetHistoryRepository(db),
			cardRepo:      repositories.NewCreditCardRepository(db),
			txRunner:      repositories.NewTxRunner(db),
		}
	}

	return newServer(cfg.Service.Port, logger, deps, utils.SystemClock{}), nil
}

type serviceDeps struct {
	portfolioRepo repositories.PortfolioRepository
	assetRepo     repositories.AssetRepository
	groupRepo     repositories.AssetGroupRepository
	categoryRepo  repositories.StockCategoryRepository
	historyRepo   repositories.AssetHistoryRepository
	cardRepo      repositories.CreditCardRepository
	txRunner      repositories.TxRunner
}

func newServer(port string, logger *logrus.Logger, deps serviceDeps, clock utils.Clock) *Server {
	portfolioSvc := services.NewPortfolioService(deps.portfolioRepo, deps.assetRepo, deps.groupRepo, deps.txRunner, clock)
	categorySvc := services.NewStockCategoryService(deps.categoryRepo, deps.assetRepo, portfolioSvc)
	historySvc := services.NewAssetHistoryService(deps.historyRepo, clock)
	assetSvc := services.NewAssetService(deps.assetRepo, deps.groupRepo, portfolioSvc, categorySvc, historySvc, deps.txRunner)
	groupSvc := services.NewAssetGroupService(deps.groupRepo, assetSvc, deps.txRunner, clock)
	cardSvc := services.NewCreditCardService(deps.cardRepo, portfolioSvc, clock)

	server := &Server{
		Router:  chi.NewRouter(),
		Handler: handlers.NewHandler(portfolioSvc, assetSvc, groupSvc, categorySvc, historySvc, cardSvc),
		Port:    port,
	}
	server.Router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	server.Router.Use(RequestLogger(logger))
	server.InitRoutes()
	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes() {
	s.Router.Get("/alive", handlers.Healthcheck)

	s.Router.Route("/api/portfolios", func(r chi.Router) {
		r.Post("/", s.Handler.CreatePortfolio)
		r.Get("/", s.Handler.GetAllPortfolios)
		r.Get("/{portfolioId}", s.Handler.GetPortfolio)
		r.Delete("/{portfolioId}", s.Handler.DeletePortfolio)
		r.Get("/{portfolioId}/summary", s.Handler.GetPortfolioSummary)

		r.Post("/{portfolioId}/assets", s.Handler.CreateAsset)
		r.Get("/{portfolioId}/assets", s.Handler.GetPortfolioAssets)
		r.Get("/{portfolioId}/wishlist", s.Handler.GetWishlistAssets)
		r.Get("/{portfolioId}/asset-groups/performance", s.Handler.GetAllGroupPerformanceForPortfolio)

		r.Get("/{portfolioId}/credit-cards", s.Handler.GetPortfolioCreditCards)
		r.Get("/{portfolioId}/credit-cards/upcoming-due", s.Handler.GetUpcomingDueCards)
		r.Get("/{portfolioId}/credit-cards/overdue", s.Handler.GetOverdueCards)
	})

	s.Router.Route("/api/assets", func(r chi.Router) {
		r.Get("/{assetId}", s.Handler.GetAsset)
		r.Put("/{assetId}", s.Handler.UpdateAsset)
		r.Delete("/{assetId}", s.Handler.DeleteAsset)
		r.Post("/{assetId}/buy", s.Handler.BuyAsset)
		r.Get("/{assetId}/history", s.Handler.GetAssetHistory)
		r.Get("/{assetId}/performance", s.Handler.GetAssetPerformance)

		r.Post("/{assetId}/groups", s.Handler.AddGroupsToAsset)
		r.Put("/{assetId}/groups", s.Handler.ReplaceGroupsForAsset)
		r.Get("/{assetId}/groups", s.Handler.GetGroupsForAsset)
		r.Delete("/{assetId}/groups/{groupId}", s.Handler.RemoveAssetFromGroup)
	})

	s.Router.Route("/api/asset-groups", func(r chi.Router) {
		r.Post("/", s.Handler.CreateGroup)
		r.Get("/", s.Handler.GetAllGroups)
		r.Get("/{groupId}", s.Handler.GetGroup)
		r.Put("/{groupId}", s.Handler.UpdateGroup)
		r.Delete("/{groupId}", s.Handler.DeleteGroup)
		r.Get("/{groupId}/performance", s.Handler.GetGroupPerformance)
	})

	s.Router.Route("/api/stock-categories", func(r chi.Router) {
		r.Post("/", s.Handler.CreateCategory)
		r.Get("/", s.Handler.GetAllCategories)
		r.Get("/{categoryId}", s.Handler.GetCategory)
		r.Put("/{categoryId}", s.Handler.UpdateCategory)
		r.Delete("/{categoryId}", s.Handler.DeleteCategory)
		r.Get("/{categoryId}/performance", s.Handler.GetCategoryPerformanceByID)
		r.Get("/performance/portfolio/{portfolioId}", s.Handler.GetCategoryPerformance)
	})

	s.Router.Route("/api/credit-cards", func(r chi.Router) {
		r.Post("/", s.Handler.AddCreditCard)
		r.Get("/{cardId}", s.Handler.GetCreditCard)
		r.Put("/{cardId}", s.Handler.UpdateCreditCard)
		r.Delete("/{cardId}", s.Handler.DeleteCreditCard)
	})
}

func NewHTTPServer(server *Server) *http.Server {
	return &http.Server{
		Addr:         ":" + server.Port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Handler:      server,
	}
}
