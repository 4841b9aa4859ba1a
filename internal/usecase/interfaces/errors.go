package interfaces

import "errors"

// Condition-failure sentinels returned by the transactional repository
// methods. Use cases remap them to their caller-facing errors; anything else
// coming out of a repository is a storage failure and is surfaced as-is.
var (
	// ErrResponseExists: the (request, driver) pair already holds an estimate
	// or a rejection.
	ErrResponseExists = errors.New("response already exists for this request and driver")
	// ErrRequestNotOpen: the request row failed its PENDING + live check.
	ErrRequestNotOpen = errors.New("request is not open")
	// ErrEstimateNotOpen: the estimate row failed its PROPOSED check.
	ErrEstimateNotOpen = errors.New("estimate is not open")
	// ErrDesignationExists: the (request, driver) pair is already designated.
	ErrDesignationExists = errors.New("driver already designated for this request")
	// ErrIDExists: a create hit an existing primary key.
	ErrIDExists = errors.New("id already exists")
)
