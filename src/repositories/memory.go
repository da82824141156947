package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"server/src/models"

	"github.com/jackc/pgx/v5"
)

// MemoryStore backs in-memory implementations of every repository interface.
// It is used by the service tests and is handy for running the server without
// a database. All mutations take the store lock, so a WithinTx callback runs
// as a single atomic unit with respect to readers.
type MemoryStore struct {
	mu sync.RWMutex

	portfolios map[int64]models.Portfolio
	assets     map[int64]models.Asset
	groups     map[int64]models.AssetGroup
	categories map[int64]models.StockCategory
	cards      map[int64]models.CreditCard
	history    []models.AssetHistory

	// membership keyed by group id, then asset id
	members map[int64]map[int64]struct{}

	nextID int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		portfolios: make(map[int64]models.Portfolio),
		assets:     make(map[int64]models.Asset),
		groups:     make(map[int64]models.AssetGroup),
		categories: make(map[int64]models.StockCategory),
		cards:      make(map[int64]models.CreditCard),
		members:    make(map[int64]map[int64]struct{}),
	}
}

func (s *MemoryStore) id() int64 {
	s.nextID++
	return s.nextID
}

type memoryTxRunner struct{ s *MemoryStore }

func NewMemoryTxRunner(s *MemoryStore) TxRunner { return &memoryTxRunner{s: s} }

func (r *memoryTxRunner) WithinTx(_ context.Context, fn func(tx pgx.Tx) error) error {
	// The repositories lock per call; holding no outer lock here keeps the
	// callback free to invoke them. Single-writer semantics are good enough
	// for tests and local runs.
	return fn(nil)
}

/* ---- Portfolio repo ---- */

type memoryPortfolioRepo struct{ s *MemoryStore }

func NewMemoryPortfolioRepository(s *MemoryStore) PortfolioRepository {
	return &memoryPortfolioRepo{s: s}
}

func (r *memoryPortfolioRepo) Create(_ context.Context, p *models.Portfolio, _ pgx.Tx) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.ID = r.s.id()
	r.s.portfolios[p.ID] = *p
	return nil
}

func (r *memoryPortfolioRepo) GetByID(_ context.Context, id int64) (*models.Portfolio, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.portfolios[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *memoryPortfolioRepo) GetAll(_ context.Context) ([]models.Portfolio, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.Portfolio, 0, len(r.s.portfolios))
	for _, p := range r.s.portfolios {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryPortfolioRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.portfolios {
		if p.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryPortfolioRepo) Delete(_ context.Context, id int64, _ pgx.Tx) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.portfolios, id)
	// cascade, as the schema's ON DELETE CASCADE would
	for assetID, a := range r.s.assets {
		if a.PortfolioID == id {
			delete(r.s.assets, assetID)
			for _, m := range r.s.members {
				delete(m, assetID)
			}
		}
	}
	for cardID, c := range r.s.cards {
		if c.PortfolioID == id {
			delete(r.s.cards, cardID)
		}
	}
	return nil
}

/* ---- Asset repo ---- */

type memoryAssetRepo struct{ s *MemoryStore }

func NewMemoryAssetRepository(s *MemoryStore) AssetRepository {
	return &memoryAssetRepo{s: s}
}

func (r *memoryAssetRepo) Create(_ context.Context, a *models.Asset, _ pgx.Tx) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a.ID = r.s.id()
	r.s.assets[a.ID] = *a
	return nil
}

func (r *memoryAssetRepo) GetByID(_ context.Context, id int64) (*models.Asset, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.assets[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *memoryAssetRepo) filter(keep func(models.Asset) bool) []models.Asset {
	var out []models.Asset
	for _, a := range r.s.assets {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *memoryAssetRepo) GetByPortfolio(_ context.Context, portfolioID int64) ([]models.Asset, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.filter(func(a models.Asset) bool { return a.PortfolioID == portfolioID }), nil
}

func (r *memoryAssetRepo) GetByPortfolioAndWishlist(_ context.Context, portfolioID int64, wishlist bool) ([]models.Asset, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.filter(func(a models.Asset) bool {
		return a.PortfolioID == portfolioID && a.Wishlist == wishlist
	}), nil
}

func (r *memoryAssetRepo) GetHoldingStocksByPortfolio(_ context.Context, portfolioID int64) ([]models.Asset, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.filter(func(a models.Asset) bool {
		return a.PortfolioID == portfolioID && !a.Wishlist && a.AssetType == models.AssetTypeStock
	}), nil
}

func (r *memoryAssetRepo) GetHoldingStocksByPortfolioAndCategory(_ context.Context, portfolioID, categoryID int64) ([]models.Asset, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.filter(func(a models.Asset) bool {
		return a.PortfolioID == portfolioID && !a.Wishlist &&
			a.AssetType == models.AssetTypeStock &&
			a.CategoryID != nil && *a.CategoryID == categoryID
	}), nil
}

func (r *memoryAssetRepo) CountByCategory(_ context.Context, categoryID int64) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	count := 0
	for _, a := range r.s.assets {
		if a.CategoryID != nil && *a.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (r *memoryAssetRepo) Update(_ context.Context, a *models.Asset, _ pgx.Tx) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.assets[a.ID] = *a
	return nil
}

func (r *memoryAssetRepo) Delete(_ context.Context, id int64, _ pgx.Tx) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.assets, id)
	return nil
}

/* ---- Asset history repo ---- */

type memoryAssetHistoryRepo struct{ s *MemoryStore }

func NewMemoryAssetHistoryRepository(s *MemoryStore) AssetHistoryRepository {
	return &memoryAssetHistoryRepo{s: s}
}

func (r *memoryAssetHistoryRepo) Create(_ context.Context, h *models.AssetHistory, _ pgx.Tx) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	h.ID = r.s.id()
	r.s.history = append(r.s.history, *h)
	return nil
}

func (r *memoryAssetHistoryRepo) GetByAssetNewestFirst(_ context.Context, assetID int64) ([]models.AssetHistory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []models.AssetHistory
	for _, h := range r.s.history {
		if h.AssetID == assetID {
			out = append(out, h)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].ActionDate.Equal(out[j].ActionDate) {
			return out[i].ActionDate.After(out[j].ActionDate)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

/* ---- Asset group repo ---- */

type memoryAssetGroupRepo struct{ s *MemoryStore }

func NewMemoryAssetGroupRepository(s *MemoryStore) AssetGroupRepository {
	return &memoryAssetGroupRepo{s: s}
}

func (r *memoryAssetGroupRepo) Create(_ context.Context, g *models.AssetGroup, _ pgx.Tx) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	g.ID = r.s.id()
	r.s.groups[g.ID] = *g
	r.s.members[g.ID] = make(map[int64]struct{})
	return nil
}

func (r *memoryAssetGroupRepo) GetByID(_ context.Context, id int64) (*models.AssetGroup, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	g, ok := r.s.groups[id]
	if !ok {
		return nil, nil
	}
	return &g, nil
}

func (r *memoryAssetGroupRepo) GetAllOrderedByName(_ context.Context) ([]models.AssetGroup, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.AssetGroup, 0, len(r.s.groups))
	for _, g := range r.s.groups {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memoryAssetGroupRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, g := range r.s.groups {
		if g.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryAssetGroupRepo) Update(_ context.Context, g *models.AssetGroup, _ pgx.Tx) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.groups[g.ID] = *g
	return nil
}

func (r *memoryAssetGroupRepo) Delete(_ context.Context, id int64, _ pgx.Tx) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.groups, id)
	delete(r.s.members, id)
	return nil
}

func (r *memoryAssetGroupRepo) AddMember(_ context.Context, groupID, assetID int64, _ pgx.Tx) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.members[groupID]
	if !ok {
		m = make(map[int64]struct{})
		r.s.members[groupID] = m
	}
	m[assetID] = struct{}{}
	return nil
}

func (r *memoryAssetGroupRepo) RemoveMember(_ context.Context, groupID, assetID int64, _ pgx.Tx) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if m, ok := r.s.members[groupID]; ok {
		delete(m, assetID)
	}
	return nil
}

func (r *memoryAssetGroupRepo) RemoveAllForAsset(_ context.Context, assetID int64, _ pgx.Tx) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.members {
		delete(m, assetID)
	}
	return nil
}

func (r *memoryAssetGroupRepo) RemoveAllForGroup(_ context.Context, groupID int64, _ pgx.Tx) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.members[groupID] = make(map[int64]struct{})
	return nil
}

func (r *memoryAssetGroupRepo) RemoveAllForPortfolio(_ context.Context, portfolioID int64, _ pgx.Tx) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for assetID, a := range r.s.assets {
		if a.PortfolioID == portfolioID {
			for _, m := range r.s.members {
				delete(m, assetID)
			}
		}
	}
	return nil
}

func (r *memoryAssetGroupRepo) GetGroupsForAsset(_ context.Context, assetID int64) ([]models.AssetGroup, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []models.AssetGroup
	for groupID, m := range r.s.members {
		if _, ok := m[assetID]; ok {
			out = append(out, r.s.groups[groupID])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memoryAssetGroupRepo) GetMemberAssets(_ context.Context, groupID int64) ([]models.Asset, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []models.Asset
	for assetID := range r.s.members[groupID] {
		if a, ok := r.s.assets[assetID]; ok {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

/* ---- Stock category repo ---- */

type memoryStockCategoryRepo struct{ s *MemoryStore }

func NewMemoryStockCategoryRepository(s *MemoryStore) StockCategoryRepository {
	return &memoryStockCategoryRepo{s: s}
}

func (r *memoryStockCategoryRepo) Create(_ context.Context, c *models.StockCategory, _ pgx.Tx) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c.ID = r.s.id()
	r.s.categories[c.ID] = *c
	return nil
}

func (r *memoryStockCategoryRepo) GetByID(_ context.Context, id int64) (*models.StockCategory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *memoryStockCategoryRepo) GetAll(_ context.Context) ([]models.StockCategory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.StockCategory, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memoryStockCategoryRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.categories {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryStockCategoryRepo) Update(_ context.Context, c *models.StockCategory, _ pgx.Tx) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.categories[c.ID] = *c
	return nil
}

func (r *memoryStockCategoryRepo) Delete(_ context.Context, id int64, _ pgx.Tx) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.categories, id)
	return nil
}

/* ---- Credit card repo ---- */

type memoryCreditCardRepo struct{ s *MemoryStore }

func NewMemoryCreditCardRepository(s *MemoryStore) CreditCardRepository {
	return &memoryCreditCardRepo{s: s}
}

func (r *memoryCreditCardRepo) Create(_ context.Context, c *models.CreditCard, _ pgx.Tx) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c.ID = r.s.id()
	r.s.cards[c.ID] = *c
	return nil
}

func (r *memoryCreditCardRepo) GetByID(_ context.Context, id int64) (*models.CreditCard, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.cards[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *memoryCreditCardRepo) cardsWhere(keep func(models.CreditCard) bool) []models.CreditCard {
	var out []models.CreditCard
	for _, c := range r.s.cards {
		if keep(c) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out
}

func (r *memoryCreditCardRepo) GetByPortfolio(_ context.Context, portfolioID int64) ([]models.CreditCard, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.cardsWhere(func(c models.CreditCard) bool { return c.PortfolioID == portfolioID }), nil
}

func (r *memoryCreditCardRepo) GetDueBetween(_ context.Context, portfolioID int64, from, to time.Time) ([]models.CreditCard, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.cardsWhere(func(c models.CreditCard) bool {
		return c.PortfolioID == portfolioID && !c.DueDate.Before(from) && !c.DueDate.After(to)
	}), nil
}

func (r *memoryCreditCardRepo) GetOverdue(_ context.Context, portfolioID int64, today time.Time) ([]models.CreditCard, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.cardsWhere(func(c models.CreditCard) bool {
		return c.PortfolioID == portfolioID && c.DueDate.Before(today)
	}), nil
}

func (r *memoryCreditCardRepo) Update(_ context.Context, c *models.CreditCard, _ pgx.Tx) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.cards[c.ID] = *c
	return nil
}

func (r *memoryCreditCardRepo) Delete(_ context.Context, id int64, _ pgx.Tx) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.cards, id)
	return nil
}
