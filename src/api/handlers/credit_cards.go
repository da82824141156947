package handlers

import (
	"net/http"

	"server/src/schemas"
)

func (h *Handler) AddCreditCard(w http.ResponseWriter, r *http.Request) {
	var req schemas.CreditCardRequest
	if err := decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	resp, err := h.CreditCards.AddCreditCard(r.Context(), &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, resp, http.StatusCreated)
}

func (h *Handler) GetCreditCard(w http.ResponseWriter, r *http.Request) {
	cardID, err := urlID(r, "cardId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	resp, err := h.CreditCards.GetCreditCard(r.Context(), cardID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, resp, http.StatusOK)
}

func (h *Handler) UpdateCreditCard(w http.ResponseWriter, r *http.Request) {
	cardID, err := urlID(r, "cardId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	var req schemas.CreditCardRequest
	if err := decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	resp, err := h.CreditCards.UpdateCreditCard(r.Context(), cardID, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, resp, http.StatusOK)
}

func (h *Handler) DeleteCreditCard(w http.ResponseWriter, r *http.Request) {
	cardID, err := urlID(r, "cardId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	if err := h.CreditCards.DeleteCreditCard(r.Context(), cardID); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, nil, http.StatusNoContent)
}

func (h *Handler) GetPortfolioCreditCards(w http.ResponseWriter, r *http.Request) {
	portfolioID, err := urlID(r, "portfolioId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	resp, err := h.CreditCards.GetPortfolioCreditCards(r.Context(), portfolioID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, resp, http.StatusOK)
}

func (h *Handler) GetUpcomingDueCards(w http.ResponseWriter, r *http.Request) {
	portfolioID, err := urlID(r, "portfolioId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	resp, err := h.CreditCards.GetUpcomingDueCards(r.Context(), portfolioID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, resp, http.StatusOK)
}

func (h *Handler) GetOverdueCards(w http.ResponseWriter, r *http.Request) {
	portfolioID, err := urlID(r, "portfolioId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	resp, err := h.CreditCards.GetOverdueCards(r.Context(), portfolioID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, resp, http.StatusOK)
}
