package log

// Common field names for structured logging.
const (
	FieldComponent      = "component"
	FieldClientNumber   = "client_number"
	FieldReferenceMonth = "reference_month"
	FieldFileCount      = "file_count"
	FieldBytesTotal     = "bytes_total"
	FieldInvoiceCount   = "invoice_count"
	FieldCustomerCount  = "customer_count"
)

// Components defines standard component names.
const (
	ComponentApp = "app"
	ComponentAPI = "api"
)

// Operations defines standard operation names. They double as the
// operation label on the backend call metrics.
const (
	OpUpload    = "upload"
	OpList      = "list"
	OpDownload  = "download"
	OpSummary   = "dashboard_summary"
	OpCustomers = "list_customers"
)
