package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output.
const (
	FieldFile      = "file_path"
	FieldRunID     = "run_id"
	FieldCategory  = "category"
	FieldKeyword   = "keyword"
	FieldColumn    = "column"
	FieldCount     = "count"
	FieldDropped   = "dropped"
	FieldError     = "error"
	FieldDelimiter = "delimiter"
)
