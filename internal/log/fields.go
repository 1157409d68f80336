package log

// Common field names for structured logging.
const (
	FieldComponent    = "component"
	FieldError        = "error"
	FieldPath         = "path"
	FieldSource       = "source"
	FieldTransactions = "transactions"
	FieldCategory     = "category"
	FieldAmountCents  = "amount_cents"
	FieldWindowDays   = "window_days"
	FieldYear         = "year"
	FieldMonth        = "month"
	FieldToday        = "today"
	FieldOutput       = "output"
)

// Components defines standard component names.
const (
	ComponentApp    = "app"
	ComponentLedger = "ledger"
	ComponentStats  = "stats"
	ComponentReport = "report"
	ComponentEntry  = "entry"
	ComponentSheets = "sheets"
)
