package http

import (
	"net/http"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/service"
)

type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	bookerID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req createBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	booking, err := h.bookingSvc.AddBooking(r.Context(), bookerID, req.ItemID, req.Start, req.End)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapBooking(booking))
}

func (h *BookingHandler) Approve(w http.ResponseWriter, r *http.Request) {
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
	var approved bool
	switch r.URL.Query().Get("approved") {
	case "true":
		approved = true
	case "false":
		approved = false
	default:
		writeError(w, domain.Validationf("approved must be true or false"))
		return
	}
	booking, err := h.bookingSvc.ApproveBooking(r.Context(), ownerID, id, approved)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapBooking(booking))
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
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
	booking, err := h.bookingSvc.GetBooking(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapBooking(booking))
}

func (h *BookingHandler) ListByBooker(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	filter, err := domain.ParseBookingFilter(r.URL.Query().Get("state"))
	if err != nil {
		writeError(w, err)
		return
	}
	bookings, err := h.bookingSvc.GetBookingsByUser(r.Context(), userID, filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapBookings(bookings))
}

func (h *BookingHandler) ListByItemOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	filter, err := domain.ParseBookingFilter(r.URL.Query().Get("state"))
	if err != nil {
		writeError(w, err)
		return
	}
	bookings, err := h.bookingSvc.GetBookingsByItemOwner(r.Context(), ownerID, filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapBookings(bookings))
}
