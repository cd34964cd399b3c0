package journal

import "errors"

var (
	// ErrStorageIO wraps any failure reported by the underlying key-value provider.
	ErrStorageIO = errors.New("journal storage unavailable")
	// ErrMalformedRecord marks a stored value that cannot be decoded into an entry.
	ErrMalformedRecord = errors.New("malformed journal record")
	// ErrInvalidDate is returned for dates that are not canonical YYYY-MM-DD calendar dates.
	ErrInvalidDate = errors.New("invalid journal date")
	// ErrInvalidEntry is returned by Put when the entry fails validation.
	ErrInvalidEntry = errors.New("invalid journal entry")
)
