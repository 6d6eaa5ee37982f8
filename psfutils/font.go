package psfutils

// Format selects the binary layout of a PSF file. Every downstream decode
// rule dispatches on it.
type Format int

const (
	PSF1 Format = iota + 1
	PSF2
)

func (f Format) String() string {
	switch f {
	case PSF1:
		return "PSF1"
	case PSF2:
		return "PSF2"
	}

	return "unknown"
}

const (
	psf1Mode512    = 0x01
	psf1ModeHasTab = 0x02
	psf1ModeHasSeq = 0x04

	psf1Separator uint16 = 0xFFFF
	psf1StartSeq  uint16 = 0xFFFE

	psf2HeaderSize      = 32
	psf2MaxVersion      = 0
	psf2HasUnicodeTable = 0x01

	psf2Separator byte = 0xFF
	psf2StartSeq  byte = 0xFE
)

var (
	psf1Magic = []byte{0x36, 0x04}
	psf2Magic = []byte{0x72, 0xb5, 0x4a, 0x86}
)

// TableEntry holds the unicode text one glyph stands for. Represented is the
// directly represented text; Sequences is the concatenation of every
// combining sequence aliasing the same glyph, in file order.
type TableEntry struct {
	Represented []rune
	Sequences   []rune
}

// Font is the fully parsed PSF file. Table is nil when the file carries no
// unicode table.
type Font struct {
	Format   Format
	Charsize uint32
	Height   uint32
	Width    uint32
	Bitmap   []byte
	Table    []TableEntry
}

func (f *Font) GlyphCount() int {
	if f.Charsize == 0 {
		return 0
	}

	return len(f.Bitmap) / int(f.Charsize)
}

// Glyph returns the raw raster bytes of glyph i.
func (f *Font) Glyph(i int) []byte {
	cs := int(f.Charsize)
	return f.Bitmap[i*cs : (i+1)*cs]
}

func (f *Font) HasTable() bool {
	return f.Table != nil
}
