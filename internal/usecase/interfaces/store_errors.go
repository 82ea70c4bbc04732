package interfaces

import "errors"

// ErrStoreUnavailable marks a transient or unknown failure reaching the
// document store. Repositories wrap transport-level errors with it so callers
// can test with errors.Is without importing the AWS SDK. A timed-out call is
// reported as unavailable, never treated as implicit success.
var ErrStoreUnavailable = errors.New("document store unavailable")
