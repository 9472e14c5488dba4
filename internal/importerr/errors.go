// Package importerr defines the sentinel error taxonomy shared across the
// acquisition and parsing stages, matching with errors.Is rather than string
// comparison.
package importerr

import "errors"

var (
	// ErrNotFound means the identifier (URN or alias) does not resolve to a
	// known law. Input-layer error, fatal.
	ErrNotFound = errors.New("law not found")

	// ErrNetwork wraps any non-200 response or transport failure while
	// talking to the acquisition endpoints. Fatal.
	ErrNetwork = errors.New("acquisition network failure")

	// ErrNoVariant means metadata was returned but none of the ranked
	// binary-text variants could be selected. Fatal.
	ErrNoVariant = errors.New("no acquirable variant found")

	// ErrDecode means a local file or HTTP body could not be decoded under
	// any of the attempted encodings. Fatal.
	ErrDecode = errors.New("failed to decode content")

	// ErrParse means every available parsing strategy failed to produce at
	// least one article. Fatal.
	ErrParse = errors.New("failed to parse document")
)
