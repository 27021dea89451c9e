package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit is the unit of a Length.
type Unit string

const (
	UnitRows    Unit = ""
	UnitPx      Unit = "px"
	UnitVH      Unit = "vh"
	UnitPercent Unit = "%"
	UnitEm      Unit = "em"
	UnitRem     Unit = "rem"
)

// PixelsPerRow approximates the height of one terminal row in CSS pixels.
const PixelsPerRow = 16

// Length is a CSS-like length. A bare number is a count of terminal rows.
type Length struct {
	Value float64
	Unit  Unit
}

// units are tried longest suffix first so "rem" is not read as "em".
var units = []Unit{UnitRem, UnitPx, UnitVH, UnitEm, UnitPercent}

// ParseLength parses values such as "180px", "50vh", "40%", "2rem" or "12".
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Length{}, fmt.Errorf("empty length")
	}
	unit := UnitRows
	num := s
	for _, u := range units {
		if strings.HasSuffix(s, string(u)) {
			unit = u
			num = strings.TrimSpace(strings.TrimSuffix(s, string(u)))
			break
		}
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Length{}, fmt.Errorf("invalid length %q", s)
	}
	if v < 0 {
		return Length{}, fmt.Errorf("negative length %q", s)
	}
	return Length{Value: v, Unit: unit}, nil
}

func mustLength(s string) Length {
	l, err := ParseLength(s)
	if err != nil {
		return Length{}
	}
	return l
}

// String formats the length the way ParseLength accepts it.
func (l Length) String() string {
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + string(l.Unit)
}

// Rows resolves the length to terminal rows for a viewport of the given
// height. The result is at least 1.
func (l Length) Rows(viewportRows int) int {
	var rows float64
	switch l.Unit {
	case UnitPx:
		rows = l.Value / PixelsPerRow
	case UnitVH, UnitPercent:
		rows = float64(viewportRows) * l.Value / 100
	case UnitEm, UnitRem, UnitRows:
		rows = l.Value
	}
	n := int(math.Round(rows))
	if n < 1 {
		n = 1
	}
	return n
}
