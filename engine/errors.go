package engine

import "errors"

// Common coordinator errors.
var (
	// ErrNoInput names the condition of Close being called before any
	// bytes were fed. Close reports that case as an empty Result; no
	// function in this package returns ErrNoInput.
	ErrNoInput = errors.New("chardet: no input fed")

	// ErrAlreadyDone names the condition of Feed being called after the
	// coordinator already reached a verdict. Such a call is a harmless
	// no-op; Feed returns nothing, so ErrAlreadyDone is never returned.
	ErrAlreadyDone = errors.New("chardet: coordinator already done")
)
