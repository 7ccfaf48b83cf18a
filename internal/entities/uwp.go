package entities

import (
	"github.com/KirkDiggler/starjumper/internal/errors"
)

// MaxDigit is the largest value a single profile digit can show.
const MaxDigit = 34

// Digit renders v as a compact radix-35 digit: 0-9 as decimal, 10 as 'A'
// through 34 as 'Y'. Values outside 0..34 are a contract breach and panic.
func Digit(v int) byte {
	switch {
	case v >= 0 && v <= 9:
		return byte('0' + v)
	case v >= 10 && v <= MaxDigit:
		return byte('A' + v - 10)
	default:
		panic(errors.OutOfRangef("digit value %d outside 0..%d", v, MaxDigit).
			WithMeta("value", v))
	}
}

// UWP returns the universal world profile string, for example "A788899-C".
func (p Profile) UWP() string {
	return string([]byte{
		byte(p.Starport),
		Digit(p.Size),
		Digit(p.Atmosphere),
		Digit(p.Hydrographics),
		Digit(p.Population),
		Digit(p.Government),
		Digit(p.LawLevel),
		'-',
		Digit(p.TechLevel),
	})
}
