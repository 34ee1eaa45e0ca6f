package gateway

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
)

type BookingHandler struct {
	client   *Client
	validate *validator.Validate
}

func NewBookingHandler(client *Client, validate *validator.Validate) *BookingHandler {
	return &BookingHandler{client: client, validate: validate}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req bookItemRequest
	if !checkPayload(w, r, h.validate, &req) {
		return
	}
	now := time.Now()
	if req.Start.Before(now.Truncate(time.Second)) {
		writeError(w, http.StatusBadRequest, "booking start must not be in the past")
		return
	}
	if !req.End.After(now) {
		writeError(w, http.StatusBadRequest, "booking end must be in the future")
		return
	}
	status, body, err := h.client.Post(r.Context(), "/bookings", userID, req)
	relayOrFail(w, status, body, err)
}

func (h *BookingHandler) Approve(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	approved := r.URL.Query().Get("approved")
	if approved != "true" && approved != "false" {
		writeError(w, http.StatusBadRequest, "approved must be true or false")
		return
	}
	status, body, err := h.client.Patch(r.Context(), fmt.Sprintf("/bookings/%d?approved=%s", id, approved), userID, nil)
	relayOrFail(w, status, body, err)
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	status, body, err := h.client.Get(r.Context(), fmt.Sprintf("/bookings/%d", id), userID)
	relayOrFail(w, status, body, err)
}

func (h *BookingHandler) ListByBooker(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	status, body, err := h.client.Get(r.Context(), "/bookings?state="+url.QueryEscape(r.URL.Query().Get("state")), userID)
	relayOrFail(w, status, body, err)
}

func (h *BookingHandler) ListByItemOwner(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	status, body, err := h.client.Get(r.Context(), "/bookings/owner?state="+url.QueryEscape(r.URL.Query().Get("state")), userID)
	relayOrFail(w, status, body, err)
}
