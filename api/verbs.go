package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// List issues GET endpoint and decodes the payload as a collection.
// A successful envelope with an empty or null payload yields an empty slice.
// Envelope-level failures are classified as KindUnknown.
func List[T any](ctx context.Context, c *Client, endpoint string, opts ...CallOption) Result[[]T] {
	cl := c.begin(VerbList, http.MethodGet, endpoint, opts)

	env, d := cl.exchange(ctx, nil, KindUnknown)
	if d != nil {
		return Fail[[]T](cl.fail(d))
	}

	items := []T{}
	if err := env.Decode(&items); err != nil {
		return Fail[[]T](cl.fail(cl.malformed(err)))
	}
	if items == nil {
		items = []T{}
	}

	cl.succeed(env)
	return Ok(items)
}

// FetchOne issues GET endpoint/id and decodes the payload as a single entity.
// A successful envelope without a payload is a KindNotFound failure.
func FetchOne[T any](ctx context.Context, c *Client, endpoint, id string, opts ...CallOption) Result[T] {
	cl := c.begin(VerbFetch, http.MethodGet, JoinID(endpoint, id), opts)

	env, d := cl.exchange(ctx, nil, KindUnknown)
	if d != nil {
		return Fail[T](cl.fail(d))
	}
	if !env.HasData() {
		return Fail[T](cl.fail(&ErrorDescriptor{
			Kind:    KindNotFound,
			Message: c.messages.NotFound,
		}))
	}

	var item T
	if err := env.Decode(&item); err != nil {
		return Fail[T](cl.fail(cl.malformed(err)))
	}

	cl.succeed(env)
	return Ok(item)
}

// Create issues POST endpoint with payload.
// A successful envelope without a payload is still a success; the Result
// then carries no value. Envelope-level failures are KindValidation.
func Create[T any](ctx context.Context, c *Client, endpoint string, payload any, opts ...CallOption) Result[T] {
	cl := c.begin(VerbCreate, http.MethodPost, endpoint, opts)

	env, d := cl.exchange(ctx, payload, KindValidation)
	if d != nil {
		return Fail[T](cl.fail(d))
	}
	if !env.HasData() {
		cl.succeed(env)
		return Empty[T]()
	}

	var item T
	if err := env.Decode(&item); err != nil {
		return Fail[T](cl.fail(cl.malformed(err)))
	}

	cl.succeed(env)
	return Ok(item)
}

// Update issues PUT endpoint/id with payload.
// The backend must return the updated entity; a successful envelope without
// a payload is a KindValidation failure, as are envelope-level failures.
func Update[T any](ctx context.Context, c *Client, endpoint, id string, payload any, opts ...CallOption) Result[T] {
	cl := c.begin(VerbUpdate, http.MethodPut, JoinID(endpoint, id), opts)
	return requireEntity[T](ctx, cl, payload)
}

// Patch issues PATCH endpoint with payload. Unlike Update no id segment is
// appended; endpoint must already identify the target.
// Success and failure follow Update.
func Patch[T any](ctx context.Context, c *Client, endpoint string, payload any, opts ...CallOption) Result[T] {
	cl := c.begin(VerbPatch, http.MethodPatch, endpoint, opts)
	return requireEntity[T](ctx, cl, payload)
}

// Remove issues DELETE endpoint/id. On success the Result holds id, since
// deletes carry no payload. Envelope-level failures are KindUnknown.
func Remove(ctx context.Context, c *Client, endpoint, id string, opts ...CallOption) Result[string] {
	cl := c.begin(VerbRemove, http.MethodDelete, JoinID(endpoint, id), opts)

	env, d := cl.exchange(ctx, nil, KindUnknown)
	if d != nil {
		return Fail[string](cl.fail(d))
	}

	cl.succeed(env)
	return Ok(id)
}

// JoinID appends a path-escaped id segment to endpoint.
func JoinID(endpoint, id string) string {
	return strings.TrimRight(endpoint, "/") + "/" + url.PathEscape(id)
}

func requireEntity[T any](ctx context.Context, cl *call, payload any) Result[T] {
	env, d := cl.exchange(ctx, payload, KindValidation)
	if d != nil {
		return Fail[T](cl.fail(d))
	}
	if !env.HasData() {
		return Fail[T](cl.fail(&ErrorDescriptor{
			Kind:    KindValidation,
			Message: cl.client.messages.EmptyResult,
		}))
	}

	var item T
	if err := env.Decode(&item); err != nil {
		return Fail[T](cl.fail(cl.malformed(err)))
	}

	cl.succeed(env)
	return Ok(item)
}

// call tracks the lifecycle of a single facade operation.
type call struct {
	client   *Client
	verb     Verb
	method   string
	endpoint string
	cfg      callConfig
	start    time.Time
}

func (c *Client) begin(verb Verb, method, endpoint string, opts []CallOption) *call {
	return &call{
		client:   c,
		verb:     verb,
		method:   method,
		endpoint: endpoint,
		cfg:      newCallConfig(opts),
		start:    time.Now(),
	}
}

// exchange performs the request and returns the envelope of a logically
// successful response. Transport failures are classified by status;
// unsuccessful envelopes get envelopeKind.
func (cl *call) exchange(ctx context.Context, body any, envelopeKind ErrorKind) (*RawEnvelope, *ErrorDescriptor) {
	env, err := cl.client.transport.Do(ctx, cl.method, cl.endpoint, body)
	if err != nil {
		return nil, cl.client.classifier.Classify(err)
	}
	if env == nil {
		return nil, &ErrorDescriptor{
			Kind:    KindUnknown,
			Message: cl.client.messages.MalformedData,
		}
	}
	if !env.IsSuccess {
		return nil, cl.client.classifier.ClassifyEnvelope(env, envelopeKind)
	}
	return env, nil
}

func (cl *call) malformed(err error) *ErrorDescriptor {
	return &ErrorDescriptor{
		Kind:    KindUnknown,
		Message: cl.client.messages.MalformedData,
		cause:   err,
	}
}

func (cl *call) fields() logrus.Fields {
	return logrus.Fields{
		"verb":     string(cl.verb),
		"method":   cl.method,
		"endpoint": cl.endpoint,
		"elapsed":  time.Since(cl.start).String(),
	}
}

// succeed performs the side effects of a successful call.
func (cl *call) succeed(env *RawEnvelope) {
	c := cl.client

	if cl.verb.isWrite() {
		c.reporter.Clear()
	}

	if !cl.cfg.silent {
		msg := firstNonEmpty(strings.TrimSpace(env.Message), cl.cfg.successMessage, c.messages.success(cl.verb))
		c.notify(Notification{Message: msg, Severity: SeveritySuccess})
	}

	cl.observe(OutcomeSuccess)
	c.logger.WithFields(cl.fields()).Debug("api call succeeded")
}

// fail performs the side effects of a failed call and returns d.
// The descriptor goes to the call's handler when one is set, otherwise to
// the default sink.
func (cl *call) fail(d *ErrorDescriptor) *ErrorDescriptor {
	c := cl.client

	if !cl.cfg.silent {
		c.notify(Notification{Message: ToastText(d), Severity: SeverityError})
	}

	if cl.cfg.onError != nil {
		cl.cfg.onError(d)
	} else {
		c.reporter.Report(d)
	}

	cl.observe(string(d.Kind))

	entry := c.logger.WithFields(cl.fields()).WithField("kind", string(d.Kind))
	if d.StatusCode != 0 {
		entry = entry.WithField("status", d.StatusCode)
	}
	if d.cause != nil {
		entry = entry.WithError(d.cause)
	}
	entry.Warn("api call failed")

	return d
}

func (cl *call) observe(outcome string) {
	if cl.client.observer != nil {
		cl.client.observer.ObserveCall(cl.verb, outcome, time.Since(cl.start))
	}
}
