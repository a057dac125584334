package constants

// Route constants
const (
	HomeRoute                = "/"
	PasswordRoute            = "/password"
	LogoutRoute              = "/logout"
	EntriesRoute             = "/entries"
	ExportDayRoute           = "/export/day"
	ExportMonthRoute         = "/export/month"
	ExportMonthDetailedRoute = "/export/month/detailed"
	MetricsRoute             = "/metrics"
	CountersRoute            = "/metrics/counters"
	HealthRoute              = "/healthz"
)

// StartYear is the first year offered in the export year picker.
const StartYear = 2023
