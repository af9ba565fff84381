package render

import "errors"

// ErrHandlerNotFound is returned by Dispatch for an event whose hid and
// event name were not bound in the last render.
var ErrHandlerNotFound = errors.New("render: handler not found")
