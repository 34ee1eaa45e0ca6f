package http

import (
	"net/http"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/service"
)

type ItemHandler struct {
	itemSvc service.ItemService
}

func NewItemHandler(itemSvc service.ItemService) *ItemHandler {
	return &ItemHandler{itemSvc: itemSvc}
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Available == nil {
		writeError(w, domain.Validationf("available must be set"))
		return
	}
	item, err := h.itemSvc.AddItem(r.Context(), ownerID, req.Name, req.Description, *req.Available, req.RequestID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapItem(item, nil))
}

func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	item, comments, err := h.itemSvc.GetItem(r.Context(), id, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapItem(item, comments))
}

func (h *ItemHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	items, err := h.itemSvc.GetItemsByOwner(r.Context(), ownerID)
	if err != nil {
		writeError(w, err)
		return
	}
	result := make([]ownerItemResponse, 0, len(items))
	for _, oi := range items {
		result = append(result, mapOwnerItem(oi))
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ItemHandler) Search(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	items, err := h.itemSvc.Search(r.Context(), userID, r.URL.Query().Get("text"))
	if err != nil {
		writeError(w, err)
		return
	}
	result := make([]itemResponse, 0, len(items))
	for i := range items {
		result = append(result, mapItem(&items[i], nil))
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	ownerID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req updateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	item, err := h.itemSvc.UpdateItem(r.Context(), id, ownerID, req.Name, req.Description, req.Available)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapItem(item, nil))
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.itemSvc.DeleteItem(r.Context(), id, userID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (h *ItemHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	authorID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	itemID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req createCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	comment, err := h.itemSvc.AddComment(r.Context(), itemID, authorID, req.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapComment(*comment))
}
