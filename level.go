package parzip

import (
	"fmt"
	"strconv"
)

// CompressionLevel is the deflate effort setting, 0 through 9. Level 0
// performs no compression work, level 9 spends the most effort for the best
// ratio. The zero value is level 0; entries registered without an explicit
// level use the balanced default instead.
type CompressionLevel struct {
	n uint8
}

// NewCompressionLevel validates n and wraps it as a CompressionLevel.
// Returns ErrInvalidLevel outside [0, 9].
func NewCompressionLevel(n int) (CompressionLevel, error) {
	if n < 0 || n > 9 {
		return CompressionLevel{}, fmt.Errorf("%w: %d", ErrInvalidLevel, n)
	}
	return CompressionLevel{n: uint8(n)}, nil
}

// CompressionLevelNone performs no compression work (level 0).
func CompressionLevelNone() CompressionLevel { return CompressionLevel{n: 0} }

// CompressionLevelFast trades ratio for speed (level 1).
func CompressionLevelFast() CompressionLevel { return CompressionLevel{n: 1} }

// CompressionLevelBalanced is the default for new entries (level 6).
func CompressionLevelBalanced() CompressionLevel { return CompressionLevel{n: 6} }

// CompressionLevelBest spends maximum effort (level 9).
func CompressionLevelBest() CompressionLevel { return CompressionLevel{n: 9} }

// Int returns the wrapped level for handing to the compressor.
func (l CompressionLevel) Int() int { return int(l.n) }

func (l CompressionLevel) String() string { return strconv.Itoa(int(l.n)) }
