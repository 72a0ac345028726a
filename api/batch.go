package api

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Step is one facade interaction inside a batch. The client passed to a
// step is batch scoped: its calls emit no notifications. Failures are still
// routed to the call's error handler or the default sink.
type Step func(ctx context.Context, c *Client) error

// ExecuteWithSingleToast runs steps in order and emits one success
// notification after all of them complete. Individual notifications are
// suppressed.
//
// The first failing step stops the batch and its error is returned
// unchanged; no notification is emitted. Steps that already ran are not
// undone.
//
// Example:
//
//	err := api.ExecuteWithSingleToast(ctx, client, "Translations saved",
//	    func(ctx context.Context, c *api.Client) error {
//	        _, err := api.Update[Translation](ctx, c, path, "en", en).Unwrap()
//	        return err
//	    },
//	    func(ctx context.Context, c *api.Client) error {
//	        _, err := api.Update[Translation](ctx, c, path, "de", de).Unwrap()
//	        return err
//	    },
//	)
func ExecuteWithSingleToast(ctx context.Context, c *Client, message string, steps ...Step) error {
	scoped := c.batchScope()

	for i, step := range steps {
		if err := step(ctx, scoped); err != nil {
			c.logger.WithFields(logrus.Fields{
				"step":  i,
				"steps": len(steps),
			}).WithError(err).Warn("batch aborted")
			return err
		}
	}

	c.notify(Notification{
		Message:  firstNonEmpty(message, c.messages.Batch),
		Severity: SeveritySuccess,
	})
	return nil
}
