package diskspace

import (
	"fmt"
	"math"
)

// BlockSize is the number of bytes in one accounting block.
const BlockSize = 512

// sizeLabels are the unit suffixes, one per power of 1024.
// Pb, Eb and Zb cover the full int64 block range.
//
//nolint:gochecknoglobals // Lookup table
var sizeLabels = []string{"B", "Kb", "Mb", "Gb", "Tb", "Pb", "Eb", "Zb"}

// FormatBlocks converts a block count to a human-readable size such as "1.50Mb".
func FormatBlocks(blocks int64) string {
	if blocks < 0 {
		blocks = 0
	}

	value := float64(blocks) * BlockSize
	unit := 0

	for value >= 1024 && unit < len(sizeLabels)-1 {
		value /= 1024
		unit++
	}

	// Avoid printing "1024.00Kb" when rounding reaches the next unit.
	if math.Round(value*100)/100 >= 1024 && unit < len(sizeLabels)-1 {
		value /= 1024
		unit++
	}

	return fmt.Sprintf("%.2f%s", value, sizeLabels[unit])
}
