package psfutils

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrNotPSF             = errors.New("file is not a PSF font")
	ErrUnsupportedVersion = errors.New("unsupported PSF2 header version")
)

// TableDecodeError reports a unicode table run that is not valid text for
// the font's encoding. Entry is the index of the record being accumulated
// when the bad run was hit.
type TableDecodeError struct {
	Entry int
	Cause error
}

func (e *TableDecodeError) Error() string {
	return fmt.Sprintf("unicode table entry %d: %s", e.Entry, e.Cause)
}

func (e *TableDecodeError) Unwrap() error {
	return e.Cause
}
