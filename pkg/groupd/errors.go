package groupd

import "errors"

var (
	// ErrConnect is returned when the daemon socket cannot be reached.
	ErrConnect = errors.New("connect to groupd failed")

	// ErrIncompleteWrite is returned when a request is not written in full.
	ErrIncompleteWrite = errors.New("incomplete write to groupd")

	// ErrRead is returned when reading the daemon's reply fails.
	ErrRead = errors.New("read from groupd failed")

	// ErrDecode is returned when a query reply cannot be decoded.
	ErrDecode = errors.New("malformed reply from groupd")

	// ErrDaemon is returned when groupd answers a query with an error.
	ErrDaemon = errors.New("groupd rejected the query")
)
