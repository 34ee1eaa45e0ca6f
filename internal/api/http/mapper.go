package http

import (
	"shareit-backend/internal/domain"
	"shareit-backend/internal/service"
)

func mapUser(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

func mapComment(c domain.Comment) commentResponse {
	resp := commentResponse{ID: c.ID, Text: c.Text, Created: c.Created}
	if c.Author != nil {
		resp.AuthorName = c.Author.Name
	}
	return resp
}

func mapComments(comments []domain.Comment) []commentResponse {
	result := make([]commentResponse, 0, len(comments))
	for _, c := range comments {
		result = append(result, mapComment(c))
	}
	return result
}

func mapItem(it *domain.Item, comments []domain.Comment) itemResponse {
	resp := itemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
	}
	if comments != nil {
		resp.Comments = mapComments(comments)
	}
	return resp
}

func mapOwnerItem(oi service.OwnerItem) ownerItemResponse {
	return ownerItemResponse{
		ID:          oi.Item.ID,
		Name:        oi.Item.Name,
		Description: oi.Item.Description,
		Available:   oi.Item.Available,
		RequestID:   oi.Item.RequestID,
		LastBooking: oi.LastBooking,
		NextBooking: oi.NextBooking,
		Comments:    mapComments(oi.Comments),
	}
}

func mapBooking(b *domain.Booking) bookingResponse {
	resp := bookingResponse{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: string(b.Status),
	}
	if b.Item != nil {
		resp.Item = mapItem(b.Item, nil)
	}
	if b.Booker != nil {
		resp.Booker = mapUser(b.Booker)
	}
	return resp
}

func mapBookings(bookings []domain.Booking) []bookingResponse {
	result := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		result = append(result, mapBooking(&bookings[i]))
	}
	return result
}

func mapItemRequest(rw *service.RequestWithItems) itemRequestResponse {
	items := make([]itemForRequestResponse, 0, len(rw.Items))
	for _, it := range rw.Items {
		items = append(items, itemForRequestResponse{ID: it.ID, Name: it.Name, OwnerID: it.OwnerID})
	}
	return itemRequestResponse{
		ID:          rw.Request.ID,
		Description: rw.Request.Description,
		Created:     rw.Request.Created,
		Items:       items,
	}
}

func mapItemRequests(rws []service.RequestWithItems) []itemRequestResponse {
	result := make([]itemRequestResponse, 0, len(rws))
	for i := range rws {
		result = append(result, mapItemRequest(&rws[i]))
	}
	return result
}
