package http

import "time"

// Request payloads. Shape validation happens at the gateway; the server only
// re-checks what its business rules require.

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type updateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type createItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
	RequestID   *int64 `json:"requestId"`
}

type updateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type createItemRequestRequest struct {
	Description string `json:"description"`
}

type createBookingRequest struct {
	ItemID int64     `json:"itemId"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

type createCommentRequest struct {
	Text string `json:"text"`
}

// Response payloads. Field names follow the public API contract: items expose
// "available", bookings nest the item and the booker.

type userResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type commentResponse struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

type itemResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Available   bool              `json:"available"`
	RequestID   *int64            `json:"requestId,omitempty"`
	Comments    []commentResponse `json:"comments,omitempty"`
}

type ownerItemResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Available   bool              `json:"available"`
	RequestID   *int64            `json:"requestId,omitempty"`
	LastBooking *time.Time        `json:"lastBooking,omitempty"`
	NextBooking *time.Time        `json:"nextBooking,omitempty"`
	Comments    []commentResponse `json:"comments"`
}

type bookingResponse struct {
	ID     int64        `json:"id"`
	Start  time.Time    `json:"start"`
	End    time.Time    `json:"end"`
	Status string       `json:"status"`
	Item   itemResponse `json:"item"`
	Booker userResponse `json:"booker"`
}

// itemForRequestResponse is the lightweight projection of an item fulfilling
// an item request.
type itemForRequestResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	OwnerID int64  `json:"ownerId"`
}

type itemRequestResponse struct {
	ID          int64                    `json:"id"`
	Description string                   `json:"description"`
	Created     time.Time                `json:"created"`
	Items       []itemForRequestResponse `json:"items"`
}
