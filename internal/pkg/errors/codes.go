package errors

import "net/http"

var (
	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Unauthorized",
		http.StatusUnauthorized,
	)

	ErrMissingAssetsFile = New(
		"MISSING_ASSETS_FILE",
		"Missing form file field 'assets'",
		http.StatusBadRequest,
	)

	ErrInvalidOutputFormat = New(
		"INVALID_OUTPUT_FORMAT",
		"output_format must be csv or xlsx",
		http.StatusBadRequest,
	)

	ErrInvalidAssetsFile = New(
		"INVALID_ASSETS_FILE",
		"Failed to read assets file",
		http.StatusBadRequest,
	)

	ErrIndexNotLoaded = New(
		"INDEX_NOT_LOADED",
		"Freguesia index not loaded",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

// NewMissingColumn reports an assets file lacking one of the required
// columns; the offending column name goes into the error details.
func NewMissingColumn(column string) *AppError {
	return New(
		"MISSING_COLUMN",
		"Missing column '"+column+"' in assets file",
		http.StatusBadRequest,
	).WithDetails(map[string]interface{}{
		"column": column,
	})
}
