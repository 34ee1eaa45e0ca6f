package gateway

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

type UserHandler struct {
	client   *Client
	validate *validator.Validate
}

func NewUserHandler(client *Client, validate *validator.Validate) *UserHandler {
	return &UserHandler{client: client, validate: validate}
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if !checkPayload(w, r, h.validate, &req) {
		return
	}
	status, body, err := h.client.Post(r.Context(), "/users", 0, req)
	relayOrFail(w, status, body, err)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	status, body, err := h.client.Get(r.Context(), fmt.Sprintf("/users/%d", id), 0)
	relayOrFail(w, status, body, err)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateUserRequest
	if !checkPayload(w, r, h.validate, &req) {
		return
	}
	status, body, err := h.client.Patch(r.Context(), fmt.Sprintf("/users/%d", id), 0, req)
	relayOrFail(w, status, body, err)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	status, body, err := h.client.Delete(r.Context(), fmt.Sprintf("/users/%d", id), 0)
	relayOrFail(w, status, body, err)
}
