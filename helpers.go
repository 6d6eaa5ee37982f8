package main

import (
	"log"
	"os"

	"github.com/hwfonts/psf2verilog/psfutils"
)

func endIfErr(e error) {
	if e != nil {
		eLog := log.New(os.Stderr, "", 0)
		eLog.Fatalln(e)
	}
}

func glyphHasText(font *psfutils.Font, i int) bool {
	if i >= len(font.Table) {
		return false
	}

	entry := font.Table[i]

	return len(entry.Represented) > 0 || len(entry.Sequences) > 0
}
