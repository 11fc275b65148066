package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile       = "file_path"
	FieldUser       = "user_id"
	FieldCategory   = "category"
	FieldKeyword    = "keyword"
	FieldStatus     = "status"
	FieldError      = "error"
	FieldCount      = "count"
	FieldPage       = "page"
	FieldTotalPages = "total_pages"
	FieldDelimiter  = "delimiter"
	FieldAddr       = "addr"
	FieldSource     = "source"
	FieldOperation  = "operation"
)
