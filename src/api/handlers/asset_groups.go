package handlers

import (
	"net/http"

	"server/src/schemas"
)

func (h *Handler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req schemas.AssetGroupRequest
	if err := decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	resp, err := h.Groups.CreateGroup(r.Context(), &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, resp, http.StatusCreated)
}

func (h *Handler) GetAllGroups(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Groups.GetAllGroups(r.Context())
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, resp, http.StatusOK)
}

func (h *Handler) GetGroup(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlID(r, "groupId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	resp, err := h.Groups.GetGroup(r.Context(), groupID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, resp, http.StatusOK)
}

func (h *Handler) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlID(r, "groupId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	var req schemas.AssetGroupRequest
	if err := decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	resp, err := h.Groups.UpdateGroup(r.Context(), groupID, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, resp, http.StatusOK)
}

func (h *Handler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlID(r, "groupId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	if err := h.Groups.DeleteGroup(r.Context(), groupID); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, nil, http.StatusNoContent)
}

func (h *Handler) AddGroupsToAsset(w http.ResponseWriter, r *http.Request) {
	assetID, err := urlID(r, "assetId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	var req schemas.AssetGroupMemberRequest
	if err := decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	resp, err := h.Groups.AddGroupsToAsset(r.Context(), assetID, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, resp, http.StatusOK)
}

func (h *Handler) ReplaceGroupsForAsset(w http.ResponseWriter, r *http.Request) {
	assetID, err := urlID(r, "assetId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	var req schemas.AssetGroupMemberRequest
	if err := decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	resp, err := h.Groups.ReplaceGroupsForAsset(r.Context(), assetID, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, resp, http.StatusOK)
}

func (h *Handler) RemoveAssetFromGroup(w http.ResponseWriter, r *http.Request) {
	assetID, err := urlID(r, "assetId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	groupID, err := urlID(r, "groupId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	if err := h.Groups.RemoveAssetFromGroup(r.Context(), assetID, groupID); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, nil, http.StatusNoContent)
}

func (h *Handler) GetGroupsForAsset(w http.ResponseWriter, r *http.Request) {
	assetID, err := urlID(r, "assetId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	resp, err := h.Groups.GetGroupsForAsset(r.Context(), assetID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, resp, http.StatusOK)
}

func (h *Handler) GetGroupPerformance(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlID(r, "groupId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	portfolioID, err := queryID(r, "portfolioId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	resp, err := h.Groups.GetGroupPerformance(r.Context(), groupID, portfolioID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, resp, http.StatusOK)
}

func (h *Handler) GetAllGroupPerformanceForPortfolio(w http.ResponseWriter, r *http.Request) {
	portfolioID, err := urlID(r, "portfolioId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	resp, err := h.Groups.GetAllGroupPerformanceForPortfolio(r.Context(), portfolioID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, resp, http.StatusOK)
}
