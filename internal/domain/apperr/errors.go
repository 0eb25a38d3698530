// Package apperr defines the application-wide error taxonomy.
// Every feature maps its failures onto these values so the transport layer
// can translate them uniformly into HTTP status codes and {detail} bodies.
package apperr

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by all features. The error strings double as the
// user-facing detail messages, so they keep the wording of the public API
// contract rather than Go error-string conventions.
var (
	// ErrUnauthenticated indicates a missing, malformed, expired or
	// otherwise unverifiable bearer token, or a token whose principal no
	// longer exists.
	ErrUnauthenticated = errors.New("Could not validate credentials")

	// ErrForbidden indicates an authenticated principal acting on a
	// resource it does not own, or an action its role does not permit.
	ErrForbidden = errors.New("Not authorized to perform requested action")

	// ErrInvalidCredentials indicates a failed login attempt. It is kept
	// separate from ErrUnauthenticated because login failures surface as
	// 403 while token failures surface as 401.
	ErrInvalidCredentials = errors.New("Invalid Credentials")

	// ErrNotFound indicates an absent resource, including lookups of the
	// reserved sentinel id 0.
	ErrNotFound = errors.New("Not found")

	// ErrNothingToUpdate indicates a partial-update request in which every
	// field was absent. Surfaced as 304, not as a client error.
	ErrNothingToUpdate = errors.New("Nothing to update")

	// ErrEmailTaken indicates a registration attempt with an already
	// registered email address. Distinguished from generic constraint
	// violations so it gets a dedicated message and a 400 status.
	ErrEmailTaken = errors.New("Email already taken")

	// ErrUnsupportedMedia indicates an upload that is not a decodable
	// PNG or JPEG image.
	ErrUnsupportedMedia = errors.New("Unsupported file or media type")

	// ErrPayloadTooLarge indicates an upload above the byte-size ceiling.
	// Callers wrap it with the concrete ceiling for the detail message.
	ErrPayloadTooLarge = errors.New("Image too large")
)

// ConstraintViolation reports a database check or uniqueness failure in a
// structured form. Constraint carries the database constraint name when the
// driver exposes it; Message is the user-facing explanation of the violated
// rule.
type ConstraintViolation struct {
	Constraint string
	Message    string
}

func (e *ConstraintViolation) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Constraint != "" {
		return fmt.Sprintf("constraint %s violated", e.Constraint)
	}
	return "constraint violated"
}
