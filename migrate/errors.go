package migrate

import "errors"

// ErrMalformedCategory indicates a legacy category value that looks like
// serialized JSON but cannot be parsed.
var ErrMalformedCategory = errors.New("malformed legacy category")
