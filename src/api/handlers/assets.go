package handlers

import (
	"net/http"

	"server/src/schemas"
)

func (h *Handler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	portfolioID, err := urlID(r, "portfolioId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	var req schemas.AssetRequest
	if err := decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	resp, err := h.Assets.CreateAsset(r.Context(), portfolioID, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, resp, http.StatusCreated)
}

func (h *Handler) GetPortfolioAssets(w http.ResponseWriter, r *http.Request) {
	portfolioID, err := urlID(r, "portfolioId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	resp, err := h.Assets.GetPortfolioAssets(r.Context(), portfolioID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, resp, http.StatusOK)
}

func (h *Handler) GetWishlistAssets(w http.ResponseWriter, r *http.Request) {
	portfolioID, err := urlID(r, "portfolioId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	resp, err := h.Assets.GetWishlistAssets(r.Context(), portfolioID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, resp, http.StatusOK)
}

func (h *Handler) GetAsset(w http.ResponseWriter, r *http.Request) {
	assetID, err := urlID(r, "assetId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	resp, err := h.Assets.GetAsset(r.Context(), assetID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, resp, http.StatusOK)
}

func (h *Handler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	assetID, err := urlID(r, "assetId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	var req schemas.AssetUpdateRequest
	if err := decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	resp, err := h.Assets.UpdateAsset(r.Context(), assetID, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, resp, http.StatusOK)
}

func (h *Handler) BuyAsset(w http.ResponseWriter, r *http.Request) {
	assetID, err := urlID(r, "assetId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	var req schemas.AssetBuyRequest
	if err := decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	resp, err := h.Assets.BuyAsset(r.Context(), assetID, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, resp, http.StatusOK)
}

func (h *Handler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	assetID, err := urlID(r, "assetId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	if err := h.Assets.DeleteAsset(r.Context(), assetID); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, nil, http.StatusNoContent)
}

func (h *Handler) GetAssetHistory(w http.ResponseWriter, r *http.Request) {
	assetID, err := urlID(r, "assetId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	resp, err := h.History.GetHistory(r.Context(), assetID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, resp, http.StatusOK)
}

func (h *Handler) GetAssetPerformance(w http.ResponseWriter, r *http.Request) {
	assetID, err := urlID(r, "assetId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	resp, err := h.Assets.GetPerformance(r.Context(), assetID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, resp, http.StatusOK)
}
