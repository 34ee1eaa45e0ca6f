package gateway

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

type ItemRequestHandler struct {
	client   *Client
	validate *validator.Validate
}

func NewItemRequestHandler(client *Client, validate *validator.Validate) *ItemRequestHandler {
	return &ItemRequestHandler{client: client, validate: validate}
}

func (h *ItemRequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req createItemRequestRequest
	if !checkPayload(w, r, h.validate, &req) {
		return
	}
	status, body, err := h.client.Post(r.Context(), "/requests", userID, req)
	relayOrFail(w, status, body, err)
}

func (h *ItemRequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	status, body, err := h.client.Get(r.Context(), fmt.Sprintf("/requests/%d", id), userID)
	relayOrFail(w, status, body, err)
}

func (h *ItemRequestHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	status, body, err := h.client.Get(r.Context(), "/requests", userID)
	relayOrFail(w, status, body, err)
}

func (h *ItemRequestHandler) ListOthers(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	status, body, err := h.client.Get(r.Context(), "/requests/all", userID)
	relayOrFail(w, status, body, err)
}
