package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile        = "file_path"
	FieldCategory    = "category"
	FieldDescription = "description"
	FieldSource      = "source"
	FieldCount       = "count"
	FieldDuration    = "duration_ms"
	FieldError       = "error"
	FieldInputFile   = "input_file"
	FieldOutputFile  = "output_file"
	FieldIntent      = "intent"
	FieldEpochs      = "epochs"
	FieldLoss        = "loss"
)
