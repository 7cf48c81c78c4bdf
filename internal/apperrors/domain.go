package apperrors

import (
	"fmt"
	"net/http"
	"strings"
)

// Predeclared domain errors. Messages on the 4xx values are part of the API
// contract and mirror what the endpoints return to clients.

// --- Listing ---

var (
	ErrInvalidFilter = New(
		CodeValidationFailed,
		"listing",
		"Invalid filter value.",
		http.StatusBadRequest,
	)

	ErrInvalidCategory = New(
		CodeValidationFailed,
		"listing",
		"Invalid category value.",
		http.StatusBadRequest,
	)

	ErrMissingSearchParams = New(
		CodeValidationFailed,
		"listing",
		"At least one search parameter (query, category or city) is required.",
		http.StatusBadRequest,
	)
)

// --- Worker profiles ---

var (
	ErrUserNotFound = New(
		CodeNotFound,
		"profile",
		"User not found",
		http.StatusNotFound,
	)

	ErrProfileNotFound = New(
		CodeNotFound,
		"profile",
		"Worker profile not found",
		http.StatusNotFound,
	)

	ErrProfileAlreadyExists = New(
		CodeAlreadyExists,
		"profile",
		"User already has a worker profile",
		http.StatusConflict,
	)

	ErrDuplicateCnic = New(
		CodeConflict,
		"profile",
		"A worker profile with this CNIC already exists",
		http.StatusConflict,
	)

	ErrDuplicateEntry = New(
		CodeConflict,
		"profile",
		"Duplicate data error",
		http.StatusConflict,
	)

	ErrMissingProfileKey = New(
		CodeValidationFailed,
		"profile",
		"Provide worker id or userId (route param or query).",
		http.StatusBadRequest,
	)
)

// InvalidSkillCategory lists the allowed values in the message, matching the
// create/update profile endpoints.
func InvalidSkillCategory(allowed []string) *AppError {
	return New(
		CodeValidationFailed,
		"profile",
		fmt.Sprintf("Invalid skillCategory. Allowed: %s", strings.Join(allowed, ", ")),
		http.StatusBadRequest,
	)
}

// --- Gigs ---

var (
	// ErrGigNotFound covers both a truly missing gig and an ownership
	// mismatch; the two are deliberately indistinguishable to the caller.
	ErrGigNotFound = New(
		CodeNotFound,
		"gig",
		"Gig not found",
		http.StatusNotFound,
	)

	ErrNotAWorker = New(
		CodeForbidden,
		"gig",
		"Only workers can create gigs",
		http.StatusForbidden,
	)
)
