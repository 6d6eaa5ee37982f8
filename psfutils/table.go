package psfutils

import (
	"encoding/binary"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// TablePolicy decides what happens when a unicode table run is not valid
// text for the font's encoding.
type TablePolicy int

const (
	// FailOnBadEntry aborts the table decode with a *TableDecodeError.
	FailOnBadEntry TablePolicy = iota
	// SkipBadEntry records the offending record as empty and keeps going,
	// preserving the glyph index alignment of later records.
	SkipBadEntry
)

type scanState int

const (
	stateRepresented scanState = iota
	stateSequence
)

// tableScanner accumulates decoded text runs into records. Markers in the
// byte stream drive the state transitions: a start-sequence marker switches
// to stateSequence, a separator closes the record.
type tableScanner struct {
	state   scanState
	current TableEntry
	entries []TableEntry
	policy  TablePolicy
	bad     bool
}

func (s *tableScanner) text(chars []rune) {
	if s.state == stateRepresented {
		s.current.Represented = chars
		return
	}

	s.current.Sequences = append(s.current.Sequences, chars...)
}

func (s *tableScanner) badRun(cause error) error {
	if s.policy == FailOnBadEntry {
		return &TableDecodeError{Entry: len(s.entries), Cause: cause}
	}

	s.bad = true
	return nil
}

func (s *tableScanner) separator() {
	if s.bad {
		// Partial text from a record with a bad run is dropped
		s.current = TableEntry{}
	}

	s.entries = append(s.entries, s.current)
	s.current = TableEntry{}
	s.state = stateRepresented
	s.bad = false
}

func (s *tableScanner) startSeq() {
	s.state = stateSequence
}

// ParseTable decodes the trailing unicode table region into one record per
// completed glyph entry. A trailing run with no separator is dropped.
func ParseTable(data []byte, format Format, policy TablePolicy) ([]TableEntry, error) {
	sc := &tableScanner{policy: policy}

	switch format {
	case PSF1:
		return parseTablePSF1(data, sc)
	case PSF2:
		return parseTablePSF2(data, sc)
	}

	return nil, errors.Errorf("unknown font format %d", format)
}

// parseTablePSF1 scans little-endian 16-bit units. An odd trailing byte is
// dropped along with any unterminated run.
func parseTablePSF1(data []byte, sc *tableScanner) ([]TableEntry, error) {
	var units []uint16

	for i := 0; i+2 <= len(data); i += 2 {
		unit := binary.LittleEndian.Uint16(data[i : i+2])

		if unit != psf1Separator && unit != psf1StartSeq {
			units = append(units, unit)
			continue
		}

		chars, err := decodeUTF16(units)
		if err != nil {
			if err := sc.badRun(err); err != nil {
				return nil, err
			}
		} else {
			sc.text(chars)
		}

		units = nil

		if unit == psf1Separator {
			sc.separator()
		} else {
			sc.startSeq()
		}
	}

	return sc.entries, nil
}

func parseTablePSF2(data []byte, sc *tableScanner) ([]TableEntry, error) {
	var pending []byte

	for _, b := range data {
		if b != psf2Separator && b != psf2StartSeq {
			pending = append(pending, b)
			continue
		}

		if utf8.Valid(pending) {
			sc.text([]rune(string(pending)))
		} else {
			if err := sc.badRun(errors.Errorf("invalid UTF-8 run % X", pending)); err != nil {
				return nil, err
			}
		}

		pending = nil

		if b == psf2Separator {
			sc.separator()
		} else {
			sc.startSeq()
		}
	}

	return sc.entries, nil
}

// decodeUTF16 is strict: unpaired or misordered surrogates are an error
// rather than replacement characters.
func decodeUTF16(units []uint16) ([]rune, error) {
	chars := make([]rune, 0, len(units))

	for i := 0; i < len(units); i++ {
		u := rune(units[i])

		if !utf16.IsSurrogate(u) {
			chars = append(chars, u)
			continue
		}

		if i+1 >= len(units) {
			return nil, errors.Errorf("unpaired surrogate 0x%04X", units[i])
		}

		r := utf16.DecodeRune(u, rune(units[i+1]))
		if r == utf8.RuneError {
			return nil, errors.Errorf("invalid surrogate pair 0x%04X 0x%04X", units[i], units[i+1])
		}

		chars = append(chars, r)
		i++
	}

	return chars, nil
}
