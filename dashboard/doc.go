// Package dashboard exposes the store dashboard resources on top of the
// api facade: support tickets, store operating hours and product
// translations.
//
// Every operation returns the facade's api.Result and therefore shares its
// side effects. Successful writes produce a success notification and clear
// the default error sink; failures are classified, notified and reported
// unless the call options say otherwise.
//
// Usage:
//
//	transport, err := rest.New(cfg.BaseURL, rest.WithBearerToken(cfg.Token))
//	if err != nil {
//	    return err
//	}
//	dash := dashboard.New(api.NewClient(transport))
//
//	tickets, err := dash.Tickets().List(ctx, dashboard.TicketFilter{Status: dashboard.StatusOpen}).Unwrap()
//
// Operating hours can be checked locally before saving:
//
//	if err := dash.Hours().Validate(week); err != nil {
//	    return err
//	}
//	saved := dash.Hours().Save(ctx, storeID, week)
package dashboard
