package domain

import "errors"

// Sentinel errors the transport layer maps to HTTP statuses. Services and
// repositories return these so callers can branch with errors.Is.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("operation not allowed")

	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")

	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")

	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")

	ErrEventNotFound   = errors.New("event not found")
	ErrContactNotFound = errors.New("contact submission not found")

	// ErrMissingAsset is returned when an operation requires an image and
	// none was provided.
	ErrMissingAsset = errors.New("image asset is required")

	// ErrBlobNotFound reports a remote object that does not exist; batch
	// deletes treat it as already done.
	ErrBlobNotFound = errors.New("remote object not found")
	// ErrBlobUnavailable reports a remote store failure or timeout. The
	// operation's outcome is unknown and must not be assumed.
	ErrBlobUnavailable = errors.New("remote object store unavailable")
)
