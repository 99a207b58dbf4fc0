package domain

import "errors"

// ErrBadInput covers missing uploads, wrong file extensions, and malformed
// field values. It is always raised before any SMTP or storage I/O.
var ErrBadInput = errors.New("bad input")

// ErrConnectionFailed means the SMTP pre-flight probe did not authenticate.
// The bulk send aborts without sending or persisting anything.
var ErrConnectionFailed = errors.New("email connection failed")
