package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"server/src/services"
	"server/src/utils"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	Portfolios  *services.PortfolioService
	Assets      *services.AssetService
	Groups      *services.AssetGroupService
	Categories  *services.StockCategoryService
	History     *services.AssetHistoryService
	CreditCards *services.CreditCardService
}

func NewHandler(
	portfolios *services.PortfolioService,
	assets *services.AssetService,
	groups *services.AssetGroupService,
	categories *services.StockCategoryService,
	history *services.AssetHistoryService,
	creditCards *services.CreditCardService,
) *Handler {
	return &Handler{
		Portfolios:  portfolios,
		Assets:      assets,
		Groups:      groups,
		Categories:  categories,
		History:     history,
		CreditCards: creditCards,
	}
}

func (h *Handler) respond(w http.ResponseWriter, _ *http.Request, data interface{}, status int) {
	if data == nil {
		w.WriteHeader(status)
		return
	}
	res, err := json.Marshal(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

func (h *Handler) HandleErrors(w http.ResponseWriter, err error) {
	var httpErr *utils.HTTPError
	if errors.Is(err, context.DeadlineExceeded) {
		h.respond(w, nil, map[string]string{"error": "Request timed out"}, http.StatusGatewayTimeout)
	} else if errors.As(err, &httpErr) {
		h.respond(w, nil, map[string]string{"error": httpErr.Message}, httpErr.Code)
	} else if err != nil {
		h.respond(w, nil, map[string]string{"error": err.Error()}, http.StatusInternalServerError)
	} else {
		h.respond(w, nil, map[string]string{"error": "Unhandled error"}, http.StatusInternalServerError)
	}
}

// urlID parses a numeric chi URL parameter.
func urlID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, utils.BadRequest("invalid " + name + " URL parameter")
	}
	return id, nil
}

func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return utils.BadRequest("invalid request body: " + err.Error())
	}
	return nil
}

func Healthcheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// queryID parses a numeric query-string parameter.
func queryID(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, utils.BadRequest("missing " + name + " query parameter")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, utils.BadRequest("invalid " + name + " query parameter")
	}
	return id, nil
}
