package errors

import "net/http"

var (
	ErrDestinationNotFound = New(
		"DESTINATION_NOT_FOUND",
		"Destination not found",
		http.StatusNotFound,
	)

	ErrGeocodingFailed = New(
		"GEOCODING_FAILED",
		"Address could not be geocoded",
		http.StatusUnprocessableEntity,
	)

	ErrFetchInProgress = New(
		"FETCH_IN_PROGRESS",
		"A travel time fetch is already running",
		http.StatusConflict,
	)

	ErrProviderError = New(
		"PROVIDER_ERROR",
		"Travel time provider request failed",
		http.StatusBadGateway,
	)

	ErrInvalidTimePeriod = New(
		"INVALID_TIME_PERIOD",
		"Invalid time period",
		http.StatusBadRequest,
	)

	ErrInvalidViewConfig = New(
		"INVALID_VIEW_CONFIG",
		"Invalid heatmap view configuration",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
