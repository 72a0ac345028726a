package dashboard_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/AbdullahAliSapry/Customer-Dashboard-sub002/api"
	"github.com/AbdullahAliSapry/Customer-Dashboard-sub002/dashboard"
	"github.com/AbdullahAliSapry/Customer-Dashboard-sub002/internal/testutil"
	"github.com/AbdullahAliSapry/Customer-Dashboard-sub002/transport/rest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketService_List(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.respond(http.MethodGet, "/tickets", http.StatusOK, true, "", []dashboard.Ticket{
		{ID: "t1", Subject: "Late payout", Status: dashboard.StatusOpen, Priority: dashboard.PriorityHigh},
	})

	tickets, err := h.dash.Tickets().List(context.Background(), dashboard.TicketFilter{
		Status:   dashboard.StatusOpen,
		Priority: dashboard.PriorityHigh,
	}).Unwrap()

	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, "Late payout", tickets[0].Subject)

	req := h.backend.LastRequest(t)
	assert.Equal(t, "/tickets", req.Path)
	assert.Equal(t, "priority=high&status=open", req.RawQuery)
	assert.Equal(t, "tenant-1", req.Header.Get(rest.TenantHeader))
}

func TestTicketService_Get(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)
		h.respond(http.MethodGet, "/tickets/{id}", http.StatusOK, true, "", dashboard.Ticket{
			ID:      "t1",
			Subject: "Broken checkout",
			Replies: []dashboard.Reply{{ID: "r1", Body: "Looking into it", FromStaff: true}},
		})

		ticket, err := h.dash.Tickets().Get(context.Background(), "t1").Unwrap()

		require.NoError(t, err)
		assert.Equal(t, "Broken checkout", ticket.Subject)
		require.Len(t, ticket.Replies, 1)
		assert.True(t, ticket.Replies[0].FromStaff)
	})

	t.Run("null data", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)
		h.respond(http.MethodGet, "/tickets/{id}", http.StatusOK, true, "", nil)

		res := h.dash.Tickets().Get(context.Background(), "t9")

		require.False(t, res.Ok())
		assert.Equal(t, api.KindNotFound, res.Err().Kind)
		snap := h.state.Snapshot()
		require.NotNil(t, snap.Message)
		assert.Equal(t, res.Err().Message, *snap.Message)
	})
}

func TestTicketService_Open(t *testing.T) {
	t.Parallel()

	t.Run("echoed ticket", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)
		h.respond(http.MethodPost, "/tickets", http.StatusCreated, true, "Ticket opened", dashboard.Ticket{
			ID: "t2", Subject: "Refund", Status: dashboard.StatusOpen,
		})

		ticket, err := h.dash.Tickets().Open(context.Background(), dashboard.NewTicket{
			Subject:     "Refund",
			Description: "Customer wants a refund",
			Priority:    dashboard.PriorityMedium,
		}).Unwrap()

		require.NoError(t, err)
		assert.Equal(t, "t2", ticket.ID)

		var sent map[string]any
		h.backend.LastRequest(t).DecodeBody(t, &sent)
		assert.Equal(t, "Refund", sent["subject"])
		assert.Equal(t, "medium", sent["priority"])
		assert.NotContains(t, sent, "storeId")

		assert.Equal(t, []api.Notification{{Message: "Ticket opened", Severity: api.SeveritySuccess}}, h.toasts.All())
	})

	t.Run("acknowledged without body", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)
		h.respond(http.MethodPost, "/tickets", http.StatusOK, true, "", nil)

		res := h.dash.Tickets().Open(context.Background(), dashboard.NewTicket{Subject: "x"})

		require.True(t, res.Ok())
		_, present := res.Value()
		assert.False(t, present)
	})

	t.Run("rejected", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)
		h.backend.Handle(http.MethodPost, "/tickets", func(w http.ResponseWriter, _ *http.Request) {
			testutil.WriteJSON(w, http.StatusBadRequest, map[string]any{
				"message": "Ticket is invalid",
				"errors":  map[string]any{"subject": []string{"Subject is required"}},
			})
		})

		res := h.dash.Tickets().Open(context.Background(), dashboard.NewTicket{})

		require.False(t, res.Ok())
		assert.Equal(t, api.KindValidation, res.Err().Kind)
		assert.Equal(t, map[string][]string{"subject": {"Subject is required"}}, h.state.Snapshot().FieldErrors)
	})
}

func TestTicketService_Reply(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.respond(http.MethodPost, "/tickets/{id}/replies", http.StatusOK, true, "Reply sent", dashboard.Reply{
		ID: "r1", TicketID: "t1", Body: "Thanks",
	})

	reply, err := h.dash.Tickets().Reply(context.Background(), "t1", "Thanks").Unwrap()

	require.NoError(t, err)
	assert.Equal(t, "r1", reply.ID)
	req := h.backend.LastRequest(t)
	assert.Equal(t, "/tickets/t1/replies", req.Path)
	assert.JSONEq(t, `{"body":"Thanks"}`, string(req.Body))
}

func TestTicketService_SetStatus(t *testing.T) {
	t.Parallel()

	t.Run("updated", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)
		h.respond(http.MethodPatch, "/tickets/{id}/status", http.StatusOK, true, "", dashboard.Ticket{
			ID: "t1", Status: dashboard.StatusResolved,
		})

		ticket, err := h.dash.Tickets().SetStatus(context.Background(), "t1", dashboard.StatusResolved).Unwrap()

		require.NoError(t, err)
		assert.Equal(t, dashboard.StatusResolved, ticket.Status)
		req := h.backend.LastRequest(t)
		assert.Equal(t, http.MethodPatch, req.Method)
		assert.JSONEq(t, `{"status":"resolved"}`, string(req.Body))
		assert.Equal(t, "Item updated successfully", h.toasts.All()[0].Message)
	})

	t.Run("forbidden", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)
		h.respond(http.MethodPatch, "/tickets/{id}/status", http.StatusForbidden, false, "not yours", nil)

		res := h.dash.Tickets().SetStatus(context.Background(), "t1", dashboard.StatusClosed)

		require.False(t, res.Ok())
		assert.Equal(t, api.KindAuthorization, res.Err().Kind)
		assert.Equal(t, "Access denied. You do not have permission to perform this action.", res.Err().Message)
	})
}

func TestTicketService_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.respond(http.MethodPut, "/tickets/{id}", http.StatusOK, true, "", dashboard.Ticket{ID: "t1", Priority: dashboard.PriorityUrgent})
	h.respond(http.MethodDelete, "/tickets/{id}", http.StatusOK, true, "Ticket deleted", nil)

	urgent := dashboard.PriorityUrgent
	ticket, err := h.dash.Tickets().Update(context.Background(), "t1", dashboard.TicketChanges{Priority: &urgent}).Unwrap()
	require.NoError(t, err)
	assert.Equal(t, dashboard.PriorityUrgent, ticket.Priority)
	assert.JSONEq(t, `{"priority":"urgent"}`, string(h.backend.LastRequest(t).Body))

	id, err := h.dash.Tickets().Delete(context.Background(), "t1").Unwrap()
	require.NoError(t, err)
	assert.Equal(t, "t1", id)

	assert.Equal(t, []api.Notification{
		{Message: "Item updated successfully", Severity: api.SeveritySuccess},
		{Message: "Ticket deleted", Severity: api.SeveritySuccess},
	}, h.toasts.All())
}

func TestTicketEnums(t *testing.T) {
	t.Parallel()

	assert.True(t, dashboard.StatusInProgress.Valid())
	assert.False(t, dashboard.TicketStatus("pending").Valid())
	assert.True(t, dashboard.PriorityLow.Valid())
	assert.False(t, dashboard.Priority("critical").Valid())
}
