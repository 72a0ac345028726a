package api

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Verb names a facade operation.
type Verb string

const (
	VerbList   Verb = "list"
	VerbFetch  Verb = "fetch"
	VerbCreate Verb = "create"
	VerbUpdate Verb = "update"
	VerbPatch  Verb = "patch"
	VerbRemove Verb = "remove"
)

// isWrite reports whether the verb mutates backend state.
func (v Verb) isWrite() bool {
	switch v {
	case VerbCreate, VerbUpdate, VerbPatch, VerbRemove:
		return true
	default:
		return false
	}
}

// OutcomeSuccess is the outcome reported to an Observer for successful calls.
// Failed calls report the string form of their ErrorKind.
const OutcomeSuccess = "success"

// Observer receives one event per completed facade call.
type Observer interface {
	ObserveCall(verb Verb, outcome string, elapsed time.Duration)
}

// Client is the API access facade.
// It dispatches verb operations to a Transport, normalizes failures into
// descriptors, and emits notifications and default-sink writes.
//
// A Client holds no per-call state and is safe for concurrent use as long as
// its collaborators are.
//
// Example usage:
//
//	transport, err := rest.New("https://api.example.com/v1", rest.WithBearerToken(token))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client := api.NewClient(transport,
//	    api.WithNotifier(notify.NewLog(logger)),
//	    api.WithReporter(api.NewErrorState()),
//	)
//
//	res := api.List[Ticket](ctx, client, "/tickets")
type Client struct {
	transport  Transport
	notifier   Notifier
	reporter   Reporter
	observer   Observer
	logger     logrus.FieldLogger
	messages   Messages
	classifier *Classifier

	// batch marks a client scoped to ExecuteWithSingleToast.
	batch bool
}

// Option configures a Client.
type Option func(*Client)

// NewClient creates a facade over the given transport.
//
// Without options the client notifies nobody, reports unhandled failures to
// a fresh ErrorState, and discards log output.
func NewClient(transport Transport, opts ...Option) *Client {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	c := &Client{
		transport: transport,
		notifier:  nopNotifier{},
		reporter:  NewErrorState(),
		logger:    logger,
		messages:  DefaultMessages(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.classifier = NewClassifier(c.messages)
	return c
}

// WithNotifier sets the toast surface.
func WithNotifier(n Notifier) Option {
	return func(c *Client) {
		if n != nil {
			c.notifier = n
		}
	}
}

// WithReporter sets the default sink for unhandled failures.
func WithReporter(r Reporter) Option {
	return func(c *Client) {
		if r != nil {
			c.reporter = r
		}
	}
}

// WithObserver sets an observer notified after every call.
func WithObserver(o Observer) Option {
	return func(c *Client) {
		c.observer = o
	}
}

// WithLogger sets the logger used for call diagnostics.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMessages replaces the fallback and fixed user-facing messages.
func WithMessages(m Messages) Option {
	return func(c *Client) {
		c.messages = m
	}
}

// Transport returns the underlying Transport.
// This is an escape hatch for requests the facade does not model.
func (c *Client) Transport() Transport {
	return c.transport
}

// Reporter returns the default error sink.
func (c *Client) Reporter() Reporter {
	return c.reporter
}

// notify emits n unless the client is batch scoped.
func (c *Client) notify(n Notification) {
	if c.batch {
		return
	}
	c.notifier.Notify(n)
}

// batchScope returns a copy of the client whose notifications are
// suppressed.
func (c *Client) batchScope() *Client {
	scoped := *c
	scoped.batch = true
	return &scoped
}
