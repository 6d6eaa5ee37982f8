package verilog

import (
	"bufio"
	"fmt"
	"io"
	"math/bits"
	"strings"

	"github.com/pkg/errors"
)

// AddressWidth returns the number of address bits needed to index count
// glyphs. Exact powers of two do not claim an extra bit; a single glyph
// needs none.
func AddressWidth(count int) int {
	if count <= 1 {
		return 0
	}

	return bits.Len(uint(count - 1))
}

// DataWidth returns the register width in bits for one glyph raster.
func DataWidth(charsize int) int {
	return charsize * 8
}

// WriteModule renders the bitmap as a clocked Verilog case table mapping a
// character code to its glyph raster. Output is deterministic: one case arm
// per glyph in ascending code order, raster bytes as uppercase hex with the
// most significant byte first.
func WriteModule(w io.Writer, name string, charsize int, bitmap []byte) error {
	if charsize <= 0 {
		return errors.Errorf("glyph byte size must be positive, got %d", charsize)
	}

	count := len(bitmap) / charsize
	addrWidth := AddressWidth(count)
	dataWidth := DataWidth(charsize)

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "module %s ( input wire clk, input wire [%d:0] character, output reg [%d:0] characterraster );\n", name, addrWidth-1, dataWidth-1)
	fmt.Fprintln(bw, "always @(posedge clk) begin case (character)")

	var hex strings.Builder
	for i := 0; i < count; i++ {
		hex.Reset()
		for _, b := range bitmap[i*charsize : (i+1)*charsize] {
			fmt.Fprintf(&hex, "%02X", b)
		}

		fmt.Fprintf(bw, "    %d'b%0*b : characterraster = %d'h%s;\n", addrWidth, addrWidth, i, dataWidth, hex.String())
	}

	fmt.Fprintln(bw, "    default : characterraster = 0;")
	fmt.Fprintln(bw, "endcase end")
	fmt.Fprintln(bw, "endmodule")

	return bw.Flush()
}
