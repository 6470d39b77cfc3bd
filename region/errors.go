package region

import "github.com/pkg/errors"

// ErrAllocation is a sentinel a host embedding this package can check for
// with errors.Is, reserved for future operations that bound their own
// growth (e.g. a capped variant of FromRect for untrusted input sizes).
// Nothing in this package returns it yet: plain Go slices don't fail this
// way in practice, since the runtime aborts the process on genuine
// out-of-memory before append ever returns an error.
var ErrAllocation = errors.New("region: allocation failed")
