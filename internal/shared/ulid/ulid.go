package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string.
var NewULID = func() string {
	return ulid.Make().String()
}

// IsULID reports whether s is a canonical ULID string, e.g. a run ID taken from a URL.
func IsULID(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}
