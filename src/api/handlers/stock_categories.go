package handlers

import (
	"net/http"

	"server/src/schemas"
)

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req schemas.StockCategoryRequest
	if err := decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	resp, err := h.Categories.CreateCategory(r.Context(), &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, resp, http.StatusCreated)
}

func (h *Handler) GetAllCategories(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Categories.GetAllCategories(r.Context())
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, resp, http.StatusOK)
}

func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := urlID(r, "categoryId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	resp, err := h.Categories.GetCategory(r.Context(), categoryID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, resp, http.StatusOK)
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := urlID(r, "categoryId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	var req schemas.StockCategoryRequest
	if err := decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	resp, err := h.Categories.UpdateCategory(r.Context(), categoryID, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, resp, http.StatusOK)
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := urlID(r, "categoryId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	if err := h.Categories.DeleteCategory(r.Context(), categoryID); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, nil, http.StatusNoContent)
}

func (h *Handler) GetCategoryPerformance(w http.ResponseWriter, r *http.Request) {
	portfolioID, err := urlID(r, "portfolioId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	resp, err := h.Categories.GetCategoryPerformance(r.Context(), portfolioID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, resp, http.StatusOK)
}

func (h *Handler) GetCategoryPerformanceByID(w http.ResponseWriter, r *http.Request) {
	categoryID, err := urlID(r, "categoryId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	portfolioID, err := queryID(r, "portfolioId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	resp, err := h.Categories.GetCategoryPerformanceByID(r.Context(), portfolioID, categoryID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, resp, http.StatusOK)
}
