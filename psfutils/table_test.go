package psfutils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func psf1Units(units ...uint16) []byte {
	buf := make([]byte, 0, len(units)*2)

	for _, u := range units {
		buf = append(buf, byte(u), byte(u>>8))
	}

	return buf
}

func TestParseTablePSF1(t *testing.T) {
	cases := []struct {
		name    string
		data    []byte
		entries []TableEntry
	}{
		{
			"single represented character",
			psf1Units(0x0041, psf1Separator),
			[]TableEntry{{Represented: []rune{'A'}}},
		},
		{
			"combining sequence",
			psf1Units(0x0041, psf1StartSeq, 0x0301, psf1Separator),
			[]TableEntry{{Represented: []rune{'A'}, Sequences: []rune{0x0301}}},
		},
		{
			"multiple sequences concatenate",
			psf1Units(0x0041, psf1StartSeq, 0x0301, psf1StartSeq, 0x0302, psf1Separator),
			[]TableEntry{{Represented: []rune{'A'}, Sequences: []rune{0x0301, 0x0302}}},
		},
		{
			"consecutive separators give empty entries",
			psf1Units(psf1Separator, psf1Separator),
			[]TableEntry{{Represented: []rune{}}, {Represented: []rune{}}},
		},
		{
			"surrogate pair decodes to one character",
			psf1Units(0xD83D, 0xDE00, psf1Separator),
			[]TableEntry{{Represented: []rune{0x1F600}}},
		},
		{
			"trailing run without separator is dropped",
			psf1Units(0x0041),
			nil,
		},
		{
			"odd trailing byte is dropped",
			append(psf1Units(0x0042, psf1Separator), 0x41),
			[]TableEntry{{Represented: []rune{'B'}}},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			entries, err := ParseTable(c.data, PSF1, FailOnBadEntry)
			require.NoError(t, err)
			requireEntries(t, c.entries, entries)
		})
	}
}

func TestParseTablePSF2(t *testing.T) {
	cases := []struct {
		name    string
		data    []byte
		entries []TableEntry
	}{
		{
			"single represented character",
			[]byte{0x41, psf2Separator},
			[]TableEntry{{Represented: []rune{'A'}}},
		},
		{
			"multi-byte UTF-8",
			[]byte{0xC3, 0xA9, psf2Separator},
			[]TableEntry{{Represented: []rune{0xE9}}},
		},
		{
			"combining sequence",
			[]byte{0x61, psf2StartSeq, 0xCC, 0x81, psf2Separator},
			[]TableEntry{{Represented: []rune{'a'}, Sequences: []rune{0x0301}}},
		},
		{
			"consecutive separators give empty entries",
			[]byte{psf2Separator, psf2Separator},
			[]TableEntry{{Represented: []rune{}}, {Represented: []rune{}}},
		},
		{
			"start-sequence with no text",
			[]byte{psf2StartSeq, psf2Separator},
			[]TableEntry{{Represented: []rune{}}},
		},
		{
			"trailing run without separator is dropped",
			[]byte{0x41},
			nil,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			entries, err := ParseTable(c.data, PSF2, FailOnBadEntry)
			require.NoError(t, err)
			requireEntries(t, c.entries, entries)
		})
	}
}

func TestParseTablePSF1BadRun(t *testing.T) {
	data := psf1Units(0xD800, psf1Separator, 0x0042, psf1Separator)

	_, err := ParseTable(data, PSF1, FailOnBadEntry)

	var decodeErr *TableDecodeError
	require.ErrorAs(t, err, &decodeErr)
	require.Equal(t, 0, decodeErr.Entry)

	entries, err := ParseTable(data, PSF1, SkipBadEntry)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Empty(t, entries[0].Represented)
	require.Equal(t, []rune{'B'}, entries[1].Represented)
}

func TestParseTablePSF2BadRun(t *testing.T) {
	data := []byte{0x41, psf2Separator, 0xC3, psf2Separator}

	_, err := ParseTable(data, PSF2, FailOnBadEntry)

	var decodeErr *TableDecodeError
	require.ErrorAs(t, err, &decodeErr)
	require.Equal(t, 1, decodeErr.Entry)

	entries, err := ParseTable(data, PSF2, SkipBadEntry)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, []rune{'A'}, entries[0].Represented)
	require.Empty(t, entries[1].Represented)
}

func TestParseTableUnknownFormat(t *testing.T) {
	_, err := ParseTable([]byte{psf2Separator}, Format(0), FailOnBadEntry)
	require.Error(t, err)
}

func requireEntries(t *testing.T, expected []TableEntry, actual []TableEntry) {
	t.Helper()

	require.Len(t, actual, len(expected))

	for i := range expected {
		require.Equal(t, string(expected[i].Represented), string(actual[i].Represented), "entry %d represented", i)
		require.Equal(t, string(expected[i].Sequences), string(actual[i].Sequences), "entry %d sequences", i)
	}
}
