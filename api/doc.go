// Package api provides the access layer between the store dashboard and its
// REST backend.
//
// Every backend response is wrapped in an envelope ({isSuccess, message,
// data}). The package dispatches verb-shaped operations through a pluggable
// Transport, decodes envelopes, normalizes every failure into an
// ErrorDescriptor, and produces the user-visible side effects of a call:
// a toast notification and, for failures nobody handled, a write to the
// default error sink.
//
// # Architecture
//
//  1. Transport interface performing single HTTP exchanges (see transport/rest)
//  2. Classifier mapping transport and envelope failures onto a closed set of
//     ErrorKind values
//  3. Generic verb functions (List, FetchOne, Create, Update, Patch, Remove)
//     returning a tagged Result
//  4. Injectable collaborators: Notifier (toasts), Reporter (default sink),
//     Observer (metrics), logrus logger
//
// # Verbs
//
//	List      GET    {endpoint}
//	FetchOne  GET    {endpoint}/{id}
//	Create    POST   {endpoint}
//	Update    PUT    {endpoint}/{id}
//	Patch     PATCH  {endpoint}
//	Remove    DELETE {endpoint}/{id}
//
// Verb functions never return Go errors. Transport failures, unsuccessful
// envelopes and undecodable payloads all become a failed Result whose
// descriptor has also been sent to the call's error handler or the client's
// Reporter.
//
// # Classification
//
//	no response      Network         fixed message
//	400              Validation      server message, field errors
//	401              Authentication  fixed message
//	403              Authorization   fixed message
//	404              NotFound        server message
//	500, 502, 503    ServerError     fixed message
//	other            Unknown         server message or failure text
//
// # Usage
//
//	client := api.NewClient(transport,
//	    api.WithNotifier(notifier),
//	    api.WithReporter(state),
//	)
//
//	res := api.Create[Product](ctx, client, "/products", Product{Name: "A"})
//	if product, ok := res.Value(); ok {
//	    fmt.Println(product.ID)
//	}
//
//	// Handle the failure locally instead of writing to the default sink
//	res = api.Update[Product](ctx, client, "/products", "7", changes,
//	    api.WithErrorHandler(func(d *api.ErrorDescriptor) {
//	        form.SetErrors(d.FieldErrors)
//	    }),
//	)
//
//	// Several writes behind a single toast
//	err := api.ExecuteWithSingleToast(ctx, client, "Saved", stepA, stepB)
//
// # Concurrency
//
// Calls are independent. The client does not order, coalesce or de-duplicate
// concurrent requests; when two calls write their results into shared state
// the last one to complete wins.
package api
