package readings

import "errors"

// Sentinel errors for reading store queries.
//
// These errors can be checked using errors.Is() for specific handling:
//
//	if errors.Is(err, readings.ErrZoneNotFound) {
//	    // Map to a 404 response
//	}
var (
	// ErrZoneNotFound indicates no zone with the requested name exists.
	ErrZoneNotFound = errors.New("readings: zone not found")

	// ErrMeasurementNotFound indicates no measurement with the requested
	// name exists.
	ErrMeasurementNotFound = errors.New("readings: measurement not found")

	// ErrUnknownVariable indicates the requested outdoor variable has no
	// store column.
	ErrUnknownVariable = errors.New("readings: unknown outdoor variable")
)
