package main

import (
	"encoding/json"
	"os"

	"github.com/hwfonts/psf2verilog/psfutils"
)

type tableEntry struct {
	Glyph       int    `json:"glyph"`
	Represented string `json:"represented,omitempty"`
	Sequences   string `json:"sequences,omitempty"`
}

func writeTableJSON(font *psfutils.Font, path string) error {
	entries := []*tableEntry{}

	for i, e := range font.Table {
		entries = append(entries, &tableEntry{
			Glyph:       i,
			Represented: string(e.Represented),
			Sequences:   string(e.Sequences),
		})
	}

	jsonEntries, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	return os.WriteFile(path, jsonEntries, 0644)
}
