package psfutils

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type psf2Header struct {
	Version    uint32
	HeaderSize uint32
	Flags      uint32
	Length     uint32
	Charsize   uint32
	Height     uint32
	Width      uint32
}

// Parse reads a PSF font of either generation from r, consuming the stream
// to its end. policy controls how invalid unicode table runs are handled.
func Parse(r io.ReadSeeker, policy TablePolicy) (*Font, error) {
	magic := make([]byte, 4)
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, errors.Wrap(err, "reading magic")
	}

	if bytes.Equal(magic[0:2], psf1Magic) {
		return parsePSF1(r, magic[2], magic[3], policy)
	}

	if bytes.Equal(magic, psf2Magic) {
		return parsePSF2(r, policy)
	}

	return nil, ErrNotPSF
}

func parsePSF1(r io.Reader, mode byte, height byte, policy TablePolicy) (*Font, error) {
	length := 256
	if mode&psf1Mode512 != 0 {
		length = 512
	}

	font := &Font{
		Format:   PSF1,
		Charsize: uint32(height),
		Height:   uint32(height),
		Width:    8,
	}

	font.Bitmap = make([]byte, int(height)*length)
	if _, err := io.ReadFull(r, font.Bitmap); err != nil {
		return nil, errors.Wrap(err, "reading glyph bitmap")
	}

	if mode&(psf1ModeHasTab|psf1ModeHasSeq) != 0 {
		raw, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.Wrap(err, "reading unicode table")
		}

		font.Table, err = ParseTable(raw, PSF1, policy)
		if err != nil {
			return nil, err
		}
	}

	return font, nil
}

func parsePSF2(r io.ReadSeeker, policy TablePolicy) (*Font, error) {
	var hdr psf2Header
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, errors.Wrap(err, "reading PSF2 header")
	}

	if hdr.HeaderSize >= psf2HeaderSize {
		// Skip whatever extra header space the file declares
		if _, err := r.Seek(int64(hdr.HeaderSize-psf2HeaderSize), io.SeekCurrent); err != nil {
			return nil, errors.Wrap(err, "seeking to glyph bitmap")
		}
	} else {
		log.Warnf("headersize should be >= %d but = %d", psf2HeaderSize, hdr.HeaderSize)
	}

	font := &Font{
		Format:   PSF2,
		Charsize: hdr.Charsize,
		Height:   hdr.Height,
		Width:    hdr.Width,
	}

	font.Bitmap = make([]byte, int(hdr.Charsize)*int(hdr.Length))
	if _, err := io.ReadFull(r, font.Bitmap); err != nil {
		return nil, errors.Wrap(err, "reading glyph bitmap")
	}

	if hdr.Flags&psf2HasUnicodeTable != 0 {
		raw, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.Wrap(err, "reading unicode table")
		}

		font.Table, err = ParseTable(raw, PSF2, policy)
		if err != nil {
			return nil, err
		}
	}

	// The version field is checked only once the whole stream has been
	// consumed; unsupported files still cost a full read.
	if hdr.Version > psf2MaxVersion {
		return nil, ErrUnsupportedVersion
	}

	return font, nil
}
