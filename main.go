package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/hwfonts/psf2verilog/psfutils"
	"github.com/hwfonts/psf2verilog/verilog"
)

var args struct {
	ModuleName     string `short:"m" default:"charactermap" help:"Name of the generated Verilog module"`
	Output         string `short:"o" type:"path" help:"Write the Verilog module to a file instead of stdout"`
	TableJSON      string `short:"t" type:"path" help:"Write the decoded unicode table to this path as JSON"`
	Preview        string `short:"p" type:"path" help:"Render a PNG preview sheet of the glyph bitmaps"`
	SkipBadEntries bool   `short:"s" help:"Skip unicode table entries that fail to decode"`

	InputPSF string `arg:"" name:"input" help:"Path to input PSF font" type:"path"`
}

func main() {
	kong.Parse(&args)

	f, err := os.Open(args.InputPSF)
	endIfErr(err)

	defer f.Close()

	policy := psfutils.FailOnBadEntry
	if args.SkipBadEntries {
		policy = psfutils.SkipBadEntry
	}

	font, err := psfutils.Parse(f, policy)
	endIfErr(err)

	var out io.Writer = os.Stdout

	if args.Output != "" {
		fd, err := os.Create(args.Output)
		endIfErr(err)

		defer fd.Close()
		out = fd
	}

	endIfErr(verilog.WriteModule(out, args.ModuleName, int(font.Charsize), font.Bitmap))

	if args.TableJSON != "" {
		endIfErr(writeTableJSON(font, args.TableJSON))
	}

	if args.Preview != "" {
		img, err := renderPreview(font)
		endIfErr(err)

		endIfErr(writePNGImage(img, args.Preview))
	}
}
