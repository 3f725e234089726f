package repositories

import "errors"

// ErrNotFound signals that the requested row does not exist. It is a domain
// signal, not a storage fault; handlers translate it to a 404 with errors.Is.
var ErrNotFound = errors.New("record not found")
