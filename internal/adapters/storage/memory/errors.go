package memory

import "errors"

var errKeyRequired = errors.New("key required")
