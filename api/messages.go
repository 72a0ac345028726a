package api

// Messages holds the user-facing strings the facade falls back on.
// Replace it with WithMessages to localize the client.
type Messages struct {
	// Fixed messages. These replace whatever the server said.
	Network        string
	Authentication string
	Authorization  string
	ServerError    string

	// Generic messages, used when the server supplied none.
	Validation string
	NotFound   string
	Unknown    string

	// EmptyResult is used when an update or patch succeeds without data.
	EmptyResult string

	// MalformedData is used when a payload cannot be decoded.
	MalformedData string

	// Success fallbacks per verb.
	Listed  string
	Fetched string
	Created string
	Updated string
	Patched string
	Removed string

	// Batch is the aggregate success message for ExecuteWithSingleToast.
	Batch string
}

// DefaultMessages returns the built-in English messages.
func DefaultMessages() Messages {
	return Messages{
		Network:        "Network error. Please check your connection and try again.",
		Authentication: "Your session has expired. Please log in again.",
		Authorization:  "Access denied. You do not have permission to perform this action.",
		ServerError:    "Server error. Please try again later.",
		Validation:     "The submitted data is invalid.",
		NotFound:       "The requested resource was not found.",
		Unknown:        "An unexpected error occurred.",
		EmptyResult:    "The server returned no data.",
		MalformedData:  "The server returned an unreadable response.",
		Listed:         "Data loaded successfully",
		Fetched:        "Item loaded successfully",
		Created:        "Item created successfully",
		Updated:        "Item updated successfully",
		Patched:        "Item updated successfully",
		Removed:        "Item deleted successfully",
		Batch:          "Changes saved successfully",
	}
}

// generic returns the fallback message for a kind.
func (m Messages) generic(kind ErrorKind) string {
	switch kind {
	case KindNetwork:
		return m.Network
	case KindValidation:
		return m.Validation
	case KindAuthentication:
		return m.Authentication
	case KindAuthorization:
		return m.Authorization
	case KindNotFound:
		return m.NotFound
	case KindServerError:
		return m.ServerError
	default:
		return m.Unknown
	}
}

// success returns the success fallback for a verb.
func (m Messages) success(verb Verb) string {
	switch verb {
	case VerbList:
		return m.Listed
	case VerbFetch:
		return m.Fetched
	case VerbCreate:
		return m.Created
	case VerbUpdate:
		return m.Updated
	case VerbPatch:
		return m.Patched
	case VerbRemove:
		return m.Removed
	default:
		return ""
	}
}
