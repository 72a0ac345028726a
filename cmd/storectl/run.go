package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/AbdullahAliSapry/Customer-Dashboard-sub002/api"
	"github.com/AbdullahAliSapry/Customer-Dashboard-sub002/config"
	"github.com/AbdullahAliSapry/Customer-Dashboard-sub002/dashboard"
	"github.com/AbdullahAliSapry/Customer-Dashboard-sub002/notify"
	"github.com/AbdullahAliSapry/Customer-Dashboard-sub002/transport/rest"
	"github.com/jmgilman/go/errors"
	"github.com/sirupsen/logrus"
)

const usage = `usage: storectl <command> [flags] [args]

commands:
  tickets [-status s] [-priority p] [-store id] [-search q]
  ticket <id>
  hours <store-id>
  translations <product-id>
  auto-translate [-source lang] [-overwrite] <product-id> <lang>...
  languages
`

// command runs one subcommand and returns the value to print.
type command func(ctx context.Context, dash *dashboard.Client, args []string) (any, error)

var commands = map[string]command{
	"tickets":        listTickets,
	"ticket":         showTicket,
	"hours":          showHours,
	"translations":   listTranslations,
	"auto-translate": autoTranslate,
	"languages":      listLanguages,
}

// run executes the command named by args[0] against the configured backend.
// Notifications are logged to stderr; results are written to stdout.
func run(ctx context.Context, cfg config.Config, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return errors.New(errors.CodeInvalidInput, "missing command")
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprint(stderr, usage)
		return errors.Newf(errors.CodeInvalidInput, "unknown command %q", args[0])
	}

	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetLevel(cfg.Level())

	transport, err := rest.New(cfg.BaseURL, cfg.TransportOptions(logger)...)
	if err != nil {
		return err
	}

	client := api.NewClient(transport,
		api.WithNotifier(notify.NewLog(logger)),
		api.WithLogger(logger),
	)

	result, err := cmd(ctx, dashboard.New(client), args[1:])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func listTickets(ctx context.Context, dash *dashboard.Client, args []string) (any, error) {
	fs := flag.NewFlagSet("tickets", flag.ContinueOnError)
	status := fs.String("status", "", "filter by status (open, in_progress, resolved, closed)")
	priority := fs.String("priority", "", "filter by priority (low, medium, high, urgent)")
	store := fs.String("store", "", "filter by store id")
	search := fs.String("search", "", "free-text search")
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidInput, "invalid flags")
	}

	filter := dashboard.TicketFilter{
		StoreID:  *store,
		Status:   dashboard.TicketStatus(*status),
		Priority: dashboard.Priority(*priority),
		Search:   *search,
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, errors.Newf(errors.CodeInvalidInput, "unknown status %q", *status)
	}
	if filter.Priority != "" && !filter.Priority.Valid() {
		return nil, errors.Newf(errors.CodeInvalidInput, "unknown priority %q", *priority)
	}

	return unwrap(dash.Tickets().List(ctx, filter, api.Silent()))
}

func showTicket(ctx context.Context, dash *dashboard.Client, args []string) (any, error) {
	id, err := single(args, "ticket id")
	if err != nil {
		return nil, err
	}
	return unwrap(dash.Tickets().Get(ctx, id, api.Silent()))
}

func showHours(ctx context.Context, dash *dashboard.Client, args []string) (any, error) {
	id, err := single(args, "store id")
	if err != nil {
		return nil, err
	}
	return unwrap(dash.Hours().Get(ctx, id, api.Silent()))
}

func listTranslations(ctx context.Context, dash *dashboard.Client, args []string) (any, error) {
	id, err := single(args, "product id")
	if err != nil {
		return nil, err
	}
	return unwrap(dash.Translations().List(ctx, id, api.Silent()))
}

func autoTranslate(ctx context.Context, dash *dashboard.Client, args []string) (any, error) {
	fs := flag.NewFlagSet("auto-translate", flag.ContinueOnError)
	source := fs.String("source", "", "source language (default: the store default)")
	overwrite := fs.Bool("overwrite", false, "replace existing manual translations")
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidInput, "invalid flags")
	}
	if fs.NArg() < 2 {
		return nil, errors.New(errors.CodeInvalidInput, "expected a product id and at least one language")
	}

	res := dash.Translations().Auto(ctx, fs.Arg(0), dashboard.AutoTranslateRequest{
		SourceLanguage:  *source,
		TargetLanguages: fs.Args()[1:],
		Overwrite:       *overwrite,
	})
	translations, err := res.Unwrap()
	if err != nil {
		return nil, err
	}
	if _, present := res.Value(); !present {
		return []dashboard.Translation{}, nil
	}
	return translations, nil
}

func listLanguages(ctx context.Context, dash *dashboard.Client, _ []string) (any, error) {
	return unwrap(dash.Translations().Languages(ctx, api.Silent()))
}

func single(args []string, name string) (string, error) {
	if len(args) != 1 || args[0] == "" {
		return "", errors.Newf(errors.CodeInvalidInput, "expected exactly one %s", name)
	}
	return args[0], nil
}

func unwrap[T any](res api.Result[T]) (any, error) {
	v, err := res.Unwrap()
	if err != nil {
		return nil, err
	}
	return v, nil
}
