package gateway

import (
	"net/http"

	apihttp "shareit-backend/internal/api/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// NewRouter builds the gateway route table, mirroring the server's public
// surface.
func NewRouter(client *Client) *mux.Router {
	validate := validator.New()

	users := NewUserHandler(client, validate)
	items := NewItemHandler(client, validate)
	requests := NewItemRequestHandler(client, validate)
	bookings := NewBookingHandler(client, validate)

	r := mux.NewRouter()
	r.Use(apihttp.RequestLogging)

	r.HandleFunc("/users", users.Create).Methods(http.MethodPost)
	r.HandleFunc("/users/{id}", users.Get).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}", users.Update).Methods(http.MethodPatch)
	r.HandleFunc("/users/{id}", users.Delete).Methods(http.MethodDelete)

	r.HandleFunc("/items", items.Create).Methods(http.MethodPost)
	r.HandleFunc("/items/search", items.Search).Methods(http.MethodGet)
	r.HandleFunc("/items/{id}", items.Get).Methods(http.MethodGet)
	r.HandleFunc("/items", items.ListByOwner).Methods(http.MethodGet)
	r.HandleFunc("/items/{id}", items.Update).Methods(http.MethodPatch)
	r.HandleFunc("/items/{id}", items.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/items/{id}/comment", items.AddComment).Methods(http.MethodPost)

	r.HandleFunc("/requests", requests.Create).Methods(http.MethodPost)
	r.HandleFunc("/requests/all", requests.ListOthers).Methods(http.MethodGet)
	r.HandleFunc("/requests/{id}", requests.Get).Methods(http.MethodGet)
	r.HandleFunc("/requests", requests.ListOwn).Methods(http.MethodGet)

	r.HandleFunc("/bookings", bookings.Create).Methods(http.MethodPost)
	r.HandleFunc("/bookings/owner", bookings.ListByItemOwner).Methods(http.MethodGet)
	r.HandleFunc("/bookings/{id}", bookings.Approve).Methods(http.MethodPatch)
	r.HandleFunc("/bookings/{id}", bookings.Get).Methods(http.MethodGet)
	r.HandleFunc("/bookings", bookings.ListByBooker).Methods(http.MethodGet)

	return r
}
