package accesscontext

// Shared Locals/session keys used across controllers and middlewares
const (
	KeyPassword      = "password"
	KeyRecentEntries = "recent_entries"
	KeyAccessContext = "ACCESS_CONTEXT"

	// PasswordInvalid replaces the stored password after the backend rejected it.
	PasswordInvalid = "invalid"
)
