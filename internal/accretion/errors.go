package accretion

import "errors"

// ErrRunaway indicates the loop exceeded the generous injection bound
// without exhausting the disc's dust; the run is logged and aborted rather
// than retried.
var ErrRunaway = errors.New("accretion: exceeded max injections without termination")
