package tokens

import (
	"github.com/cockroachdb/errors"
)

// ErrNonNumericToken is returned if an ordering operation meets a token that can not be parsed as an integer.
var ErrNonNumericToken = errors.New("invalid element for ordering")
