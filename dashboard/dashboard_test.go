package dashboard_test

import (
	"testing"

	"github.com/AbdullahAliSapry/Customer-Dashboard-sub002/api"
	"github.com/AbdullahAliSapry/Customer-Dashboard-sub002/dashboard"
	"github.com/AbdullahAliSapry/Customer-Dashboard-sub002/internal/testutil"
	"github.com/AbdullahAliSapry/Customer-Dashboard-sub002/notify"
	"github.com/AbdullahAliSapry/Customer-Dashboard-sub002/transport/rest"
	"github.com/stretchr/testify/require"
)

type harness struct {
	backend *testutil.Backend
	dash    *dashboard.Client
	toasts  *notify.Recorder
	state   *api.ErrorState
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	backend := testutil.NewBackend(t)
	transport, err := rest.New(backend.URL(), rest.WithTenant("tenant-1"))
	require.NoError(t, err)

	toasts := &notify.Recorder{}
	state := api.NewErrorState()
	client := api.NewClient(transport, api.WithNotifier(toasts), api.WithReporter(state))

	return &harness{
		backend: backend,
		dash:    dashboard.New(client),
		toasts:  toasts,
		state:   state,
	}
}

func (h *harness) respond(method, pattern string, status int, ok bool, message string, data any) {
	h.backend.Respond(method, pattern, status, ok, message, data)
}
