package tdrive

import "errors"

var (
	// ErrMalformedRecord signals a line which is not a valid fix.
	ErrMalformedRecord = errors.New("tdrive: malformed record")
	// ErrNoDataset signals a dataset directory which is missing or holds no
	// data files.
	ErrNoDataset = errors.New("tdrive: no dataset")
	// ErrLoaderUsed signals that a loader has already run.
	ErrLoaderUsed = errors.New("tdrive: loader already used")
)
