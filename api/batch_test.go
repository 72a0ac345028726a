package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/AbdullahAliSapry/Customer-Dashboard-sub002/api"
	"github.com/AbdullahAliSapry/Customer-Dashboard-sub002/api/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createStep(name string) api.Step {
	return func(ctx context.Context, c *api.Client) error {
		_, err := api.Create[product](ctx, c, "/products", product{Name: name}).Unwrap()
		return err
	}
}

func TestExecuteWithSingleToast(t *testing.T) {
	t.Parallel()

	t.Run("one toast after all steps", func(t *testing.T) {
		t.Parallel()

		var order []string
		h := newHarness(t, func(_ context.Context, _, _ string, body any) (*api.RawEnvelope, error) {
			p := body.(product)
			order = append(order, p.Name)
			data, _ := json.Marshal(product{ID: len(order), Name: p.Name})
			return &api.RawEnvelope{IsSuccess: true, Message: "Created", Data: data}, nil
		})

		err := api.ExecuteWithSingleToast(context.Background(), h.client, "Products imported",
			createStep("A"), createStep("B"), createStep("C"),
		)

		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C"}, order)
		assert.Equal(t, []api.Notification{{Message: "Products imported", Severity: api.SeveritySuccess}}, h.notifications())
	})

	t.Run("failure stops the batch without a toast", func(t *testing.T) {
		t.Parallel()

		calls := 0
		h := newHarness(t, func(context.Context, string, string, any) (*api.RawEnvelope, error) {
			calls++
			if calls == 2 {
				return nil, &api.HTTPFailure{StatusCode: http.StatusBadRequest, Message: "Duplicate name"}
			}
			return &api.RawEnvelope{IsSuccess: true, Data: json.RawMessage(`{"id":1}`)}, nil
		})

		err := api.ExecuteWithSingleToast(context.Background(), h.client, "Products imported",
			createStep("A"), createStep("B"), createStep("C"),
		)

		require.Error(t, err)
		var d *api.ErrorDescriptor
		require.ErrorAs(t, err, &d)
		assert.Equal(t, api.KindValidation, d.Kind)
		assert.Equal(t, "Duplicate name", d.Message)

		assert.Equal(t, 2, calls)
		assert.Empty(t, h.notifications())
		assert.Equal(t, 1, h.state.Writes())
		snap := h.state.Snapshot()
		require.NotNil(t, snap.Message)
		assert.Equal(t, "Duplicate name", *snap.Message)
	})

	t.Run("empty message uses default", func(t *testing.T) {
		t.Parallel()

		notifier := &mocks.NotifierMock{NotifyFunc: func(api.Notification) {}}
		client := api.NewClient(&mocks.TransportMock{}, api.WithNotifier(notifier))

		require.NoError(t, api.ExecuteWithSingleToast(context.Background(), client, ""))

		require.Len(t, notifier.NotifyCalls(), 1)
		assert.Equal(t, api.DefaultMessages().Batch, notifier.NotifyCalls()[0].N.Message)
	})

	t.Run("step error handlers still run", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t, fail(&api.HTTPFailure{StatusCode: http.StatusForbidden}))

		var handled *api.ErrorDescriptor
		err := api.ExecuteWithSingleToast(context.Background(), h.client, "done",
			func(ctx context.Context, c *api.Client) error {
				_, err := api.Remove(ctx, c, "/stores", "1",
					api.WithErrorHandler(func(d *api.ErrorDescriptor) { handled = d }),
				).Unwrap()
				return err
			},
		)

		require.Error(t, err)
		require.NotNil(t, handled)
		assert.Equal(t, api.KindAuthorization, handled.Kind)
		assert.Zero(t, h.state.Writes())
	})
}
