package dashboard

import (
	"github.com/AbdullahAliSapry/Customer-Dashboard-sub002/api"
)

// Client groups the dashboard resources behind one facade.
type Client struct {
	api *api.Client
}

// New creates a dashboard client over the given facade.
func New(client *api.Client) *Client {
	return &Client{api: client}
}

// API returns the underlying facade.
func (c *Client) API() *api.Client {
	return c.api
}

// Tickets returns the support ticket service.
func (c *Client) Tickets() *TicketService {
	return &TicketService{api: c.api}
}

// Hours returns the store operating hours service.
func (c *Client) Hours() *HoursService {
	return &HoursService{api: c.api}
}

// Translations returns the product translation service.
func (c *Client) Translations() *TranslationService {
	return &TranslationService{api: c.api}
}
