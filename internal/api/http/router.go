package http

import (
	"net/http"

	"shareit-backend/internal/service"

	"github.com/gorilla/mux"
)

func muxVar(r *http.Request, name string) string {
	return mux.Vars(r)[name]
}

// NewRouter wires all handlers onto the public route table.
func NewRouter(
	userSvc service.UserService,
	itemSvc service.ItemService,
	requestSvc service.ItemRequestService,
	bookingSvc service.BookingService,
) *mux.Router {
	users := NewUserHandler(userSvc)
	items := NewItemHandler(itemSvc)
	requests := NewItemRequestHandler(requestSvc)
	bookings := NewBookingHandler(bookingSvc)

	r := mux.NewRouter()
	r.Use(RequestLogging)

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
