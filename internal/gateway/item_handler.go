package gateway

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"
)

type ItemHandler struct {
	client   *Client
	validate *validator.Validate
}

func NewItemHandler(client *Client, validate *validator.Validate) *ItemHandler {
	return &ItemHandler{client: client, validate: validate}
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req createItemRequest
	if !checkPayload(w, r, h.validate, &req) {
		return
	}
	status, body, err := h.client.Post(r.Context(), "/items", userID, req)
	relayOrFail(w, status, body, err)
}

func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	status, body, err := h.client.Get(r.Context(), fmt.Sprintf("/items/%d", id), userID)
	relayOrFail(w, status, body, err)
}

func (h *ItemHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	status, body, err := h.client.Get(r.Context(), "/items", userID)
	relayOrFail(w, status, body, err)
}

func (h *ItemHandler) Search(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	text := r.URL.Query().Get("text")
	status, body, err := h.client.Get(r.Context(), "/items/search?text="+url.QueryEscape(text), userID)
	relayOrFail(w, status, body, err)
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateItemRequest
	if !checkPayload(w, r, h.validate, &req) {
		return
	}
	status, body, err := h.client.Patch(r.Context(), fmt.Sprintf("/items/%d", id), userID, req)
	relayOrFail(w, status, body, err)
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	status, body, err := h.client.Delete(r.Context(), fmt.Sprintf("/items/%d", id), userID)
	relayOrFail(w, status, body, err)
}

func (h *ItemHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req createCommentRequest
	if !checkPayload(w, r, h.validate, &req) {
		return
	}
	status, body, err := h.client.Post(r.Context(), fmt.Sprintf("/items/%d/comment", id), userID, req)
	relayOrFail(w, status, body, err)
}
