package http

import (
	"net/http"

	"shareit-backend/internal/service"
)

type ItemRequestHandler struct {
	requestSvc service.ItemRequestService
}

func NewItemRequestHandler(requestSvc service.ItemRequestService) *ItemRequestHandler {
	return &ItemRequestHandler{requestSvc: requestSvc}
}

func (h *ItemRequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestorID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req createItemRequestRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	created, err := h.requestSvc.AddItemRequest(r.Context(), requestorID, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapItemRequest(&service.RequestWithItems{Request: *created}))
}

func (h *ItemRequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, err := callerID(r); err != nil {
		writeError(w, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	req, err := h.requestSvc.GetItemRequest(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapItemRequest(req))
}

func (h *ItemRequestHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	requestorID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	reqs, err := h.requestSvc.GetItemRequests(r.Context(), requestorID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapItemRequests(reqs))
}

func (h *ItemRequestHandler) ListOthers(w http.ResponseWriter, r *http.Request) {
	requestorID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	reqs, err := h.requestSvc.GetItemRequestsFromOtherUsers(r.Context(), requestorID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapItemRequests(reqs))
}
