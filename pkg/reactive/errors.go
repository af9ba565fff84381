package reactive

import "errors"

// ErrDisposed reports an access to storage whose owning scope has ended.
var ErrDisposed = errors.New("reactive: storage disposed")
