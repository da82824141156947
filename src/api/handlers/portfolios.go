package handlers

import (
	"net/http"

	"server/src/schemas"
)

func (h *Handler) CreatePortfolio(w http.ResponseWriter, r *http.Request) {
	var req schemas.PortfolioRequest
	if err := decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	resp, err := h.Portfolios.CreatePortfolio(r.Context(), &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, resp, http.StatusCreated)
}

func (h *Handler) GetAllPortfolios(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Portfolios.GetAllPortfolios(r.Context())
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, resp, http.StatusOK)
}

func (h *Handler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "portfolioId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	resp, err := h.Portfolios.GetPortfolio(r.Context(), id)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, resp, http.StatusOK)
}

func (h *Handler) DeletePortfolio(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "portfolioId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	if err := h.Portfolios.DeletePortfolio(r.Context(), id); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, nil, http.StatusNoContent)
}

func (h *Handler) GetPortfolioSummary(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "portfolioId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	resp, err := h.Portfolios.GetPortfolioSummary(r.Context(), id)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, resp, http.StatusOK)
}
