// Package routes builds endpoint paths for the dashboard resources.
//
// Paths are relative to the transport's base URL. Identifiers are
// path-escaped; use them with the api verbs, which append ids the same way.
package routes

import (
	"net/url"
	"strings"
)

const (
	// Tickets is the support ticket collection.
	Tickets = "/tickets"
	// Stores is the store collection.
	Stores = "/stores"
	// Products is the product collection.
	Products = "/products"
	// Languages lists the languages translations can target.
	Languages = "/languages"
)

// TicketReplies returns the reply collection of a ticket.
func TicketReplies(id string) string {
	return join(Tickets, id, "replies")
}

// TicketStatus returns the status sub-resource of a ticket.
func TicketStatus(id string) string {
	return join(Tickets, id, "status")
}

// OperatingHours returns the weekly operating hours of a store.
func OperatingHours(storeID string) string {
	return join(Stores, storeID, "operating-hours")
}

// ProductTranslations returns the translation collection of a product.
func ProductTranslations(productID string) string {
	return join(Products, productID, "translations")
}

// AutoTranslate returns the machine translation endpoint of a product.
func AutoTranslate(productID string) string {
	return join(Products, productID, "translations", "auto")
}

// WithQuery appends params to path as a query string. Empty values are
// dropped and keys are encoded in sorted order.
func WithQuery(path string, params map[string]string) string {
	values := url.Values{}
	for key, value := range params {
		if value != "" {
			values.Set(key, value)
		}
	}
	if len(values) == 0 {
		return path
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + values.Encode()
}

// join builds base/id/segments... with id path-escaped.
func join(base, id string, segments ...string) string {
	parts := append([]string{strings.TrimRight(base, "/"), url.PathEscape(id)}, segments...)
	return strings.Join(parts, "/")
}
