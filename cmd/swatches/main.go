// Swatches - Procreate palette tool
//
// Swatches reads, writes and converts Procreate .swatches palette files and
// extracts palettes from images.
package main

import (
	"github.com/jmylchreest/swatches/internal/cli"
)

func main() {
	cli.Execute()
}
