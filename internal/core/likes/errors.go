package likes

import "errors"

// ErrPostNotFound covers both a missing post and one the caller may not see
// The like ledger inherits the post layer's refusal to distinguish the two.
var ErrPostNotFound = errors.New("post not found")
