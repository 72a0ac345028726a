package notify

import (
	"testing"

	"github.com/AbdullahAliSapry/Customer-Dashboard-sub002/api"
	"github.com/AbdullahAliSapry/Customer-Dashboard-sub002/api/mocks"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	saved  = api.Notification{Message: "Item created successfully", Severity: api.SeveritySuccess}
	failed = api.Notification{Message: "Server error. Please try again later.", Severity: api.SeverityError}
)

func TestLog(t *testing.T) {
	t.Parallel()

	logger, hook := test.NewNullLogger()
	n := NewLog(logger)

	n.Notify(saved)
	n.Notify(failed)

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, logrus.InfoLevel, entries[0].Level)
	assert.Equal(t, saved.Message, entries[0].Message)
	assert.Equal(t, "success", entries[0].Data["severity"])
	assert.Equal(t, logrus.ErrorLevel, entries[1].Level)
	assert.Equal(t, "error", entries[1].Data["severity"])
}

func TestLog_NilLogger(t *testing.T) {
	t.Parallel()

	n := NewLog(nil)

	assert.NotPanics(t, func() {
		n.Notify(saved)
		n.Notify(failed)
	})
}

func TestChannel(t *testing.T) {
	t.Parallel()

	t.Run("delivers", func(t *testing.T) {
		t.Parallel()

		c := NewChannel(2)
		c.Notify(saved)
		c.Notify(failed)

		assert.Equal(t, saved, <-c.C())
		assert.Equal(t, failed, <-c.C())
		assert.Zero(t, c.Dropped())
	})

	t.Run("drops when full", func(t *testing.T) {
		t.Parallel()

		c := NewChannel(0)
		c.Notify(saved)
		c.Notify(failed)
		c.Notify(failed)

		assert.Equal(t, 2, c.Dropped())
		assert.Equal(t, saved, <-c.C())
	})
}

func TestRecorder(t *testing.T) {
	t.Parallel()

	var r Recorder

	_, ok := r.Last()
	assert.False(t, ok)

	r.Notify(saved)
	r.Notify(failed)

	assert.Equal(t, []api.Notification{saved, failed}, r.All())
	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, failed, last)

	r.Reset()
	assert.Empty(t, r.All())
}

func TestMulti(t *testing.T) {
	t.Parallel()

	var r Recorder
	m := &mocks.NotifierMock{NotifyFunc: func(api.Notification) {}}

	Multi{&r, nil, m}.Notify(saved)

	assert.Equal(t, []api.Notification{saved}, r.All())
	require.Len(t, m.NotifyCalls(), 1)
	assert.Equal(t, saved, m.NotifyCalls()[0].N)
}
