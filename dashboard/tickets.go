package dashboard

import (
	"context"

	"github.com/AbdullahAliSapry/Customer-Dashboard-sub002/api"
	"github.com/AbdullahAliSapry/Customer-Dashboard-sub002/routes"
)

// TicketService manages support tickets.
type TicketService struct {
	api *api.Client
}

// List returns the tickets matching filter.
func (s *TicketService) List(ctx context.Context, filter TicketFilter, opts ...api.CallOption) api.Result[[]Ticket] {
	return api.List[Ticket](ctx, s.api, routes.WithQuery(routes.Tickets, filter.params()), opts...)
}

// Get returns a ticket with its replies.
func (s *TicketService) Get(ctx context.Context, id string, opts ...api.CallOption) api.Result[Ticket] {
	return api.FetchOne[Ticket](ctx, s.api, routes.Tickets, id, opts...)
}

// Open creates a ticket. The Result is empty when the backend acknowledges
// without echoing the ticket.
func (s *TicketService) Open(ctx context.Context, ticket NewTicket, opts ...api.CallOption) api.Result[Ticket] {
	return api.Create[Ticket](ctx, s.api, routes.Tickets, ticket, opts...)
}

// Reply appends a message to the ticket thread.
func (s *TicketService) Reply(ctx context.Context, id, body string, opts ...api.CallOption) api.Result[Reply] {
	payload := struct {
		Body string `json:"body"`
	}{Body: body}
	return api.Create[Reply](ctx, s.api, routes.TicketReplies(id), payload, opts...)
}

// SetStatus moves the ticket to status and returns the updated ticket.
func (s *TicketService) SetStatus(ctx context.Context, id string, status TicketStatus, opts ...api.CallOption) api.Result[Ticket] {
	payload := struct {
		Status TicketStatus `json:"status"`
	}{Status: status}
	return api.Patch[Ticket](ctx, s.api, routes.TicketStatus(id), payload, opts...)
}

// Update replaces the editable fields set in changes.
func (s *TicketService) Update(ctx context.Context, id string, changes TicketChanges, opts ...api.CallOption) api.Result[Ticket] {
	return api.Update[Ticket](ctx, s.api, routes.Tickets, id, changes, opts...)
}

// Delete removes a ticket.
func (s *TicketService) Delete(ctx context.Context, id string, opts ...api.CallOption) api.Result[string] {
	return api.Remove(ctx, s.api, routes.Tickets, id, opts...)
}
