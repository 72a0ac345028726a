package dashboard

import "time"

// TicketStatus is the lifecycle state of a support ticket.
type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusInProgress TicketStatus = "in_progress"
	StatusResolved   TicketStatus = "resolved"
	StatusClosed     TicketStatus = "closed"
)

// Valid reports whether s is a known status.
func (s TicketStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved, StatusClosed:
		return true
	default:
		return false
	}
}

// Priority is the urgency of a support ticket.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

// Ticket is a support ticket raised by a store owner.
type Ticket struct {
	ID          string       `json:"id"`
	StoreID     string       `json:"storeId,omitempty"`
	Subject     string       `json:"subject"`
	Description string       `json:"description"`
	Category    string       `json:"category,omitempty"`
	Status      TicketStatus `json:"status"`
	Priority    Priority     `json:"priority"`
	Replies     []Reply      `json:"replies,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// Reply is a message in a ticket thread.
type Reply struct {
	ID        string    `json:"id"`
	TicketID  string    `json:"ticketId"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	FromStaff bool      `json:"fromStaff"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewTicket is the payload for opening a ticket.
type NewTicket struct {
	StoreID     string   `json:"storeId,omitempty"`
	Subject     string   `json:"subject"`
	Description string   `json:"description"`
	Category    string   `json:"category,omitempty"`
	Priority    Priority `json:"priority,omitempty"`
}

// TicketChanges is a partial ticket update. Nil fields are left unchanged.
type TicketChanges struct {
	Subject     *string   `json:"subject,omitempty"`
	Description *string   `json:"description,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
}

// TicketFilter narrows a ticket listing. Zero fields are not sent.
type TicketFilter struct {
	StoreID  string
	Status   TicketStatus
	Priority Priority
	Search   string
}

func (f TicketFilter) params() map[string]string {
	return map[string]string{
		"storeId":  f.StoreID,
		"status":   string(f.Status),
		"priority": string(f.Priority),
		"search":   f.Search,
	}
}

// DayHours is the opening window of a store on one weekday. Times use
// 24-hour HH:MM notation and are ignored when Closed is set.
type DayHours struct {
	Day    string `json:"day"`
	Open   string `json:"openTime"`
	Close  string `json:"closeTime"`
	Closed bool   `json:"isClosed"`
}

// Week is the operating schedule of a store. Days missing from it are
// treated as closed by the backend.
type Week []DayHours

// Translation is a product's name and description in one language.
type Translation struct {
	Language    string    `json:"languageCode"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Auto        bool      `json:"isAutoTranslated"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AutoTranslateRequest asks the backend to machine-translate a product.
type AutoTranslateRequest struct {
	SourceLanguage  string   `json:"sourceLanguage,omitempty"`
	TargetLanguages []string `json:"targetLanguages"`
	Overwrite       bool     `json:"overwriteExisting"`
}

// Language is a language products can be translated into.
type Language struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	IsDefault bool   `json:"isDefault"`
}
