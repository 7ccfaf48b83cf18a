// Package description renders worlds as fixed-width summary lines.
package description

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/starjumper/internal/entities"
)

// Column widths of a summary line.
const (
	NameWidth            = 18
	ClassificationBudget = 42
	Separator            = ". "
)

const lineFormat = "%-18s %4s %c%c%c%c%c%c%c-%c %c %-42s%c"

// Render returns the summary line for w, for example
//
//	Regina             1910 A788899-C A Agricultural. Rich.                       G
//
// A classification list too long even as abbreviations overflows the column
// rather than being cut.
func Render(w *entities.World) string {
	gasGiant := byte(' ')
	if w.GasGiant {
		gasGiant = 'G'
	}

	return fmt.Sprintf(lineFormat,
		w.Name,
		w.Hex.String(),
		byte(w.Starport),
		HexDigit(w.Size),
		HexDigit(w.Atmosphere),
		HexDigit(w.Hydrographics),
		HexDigit(w.Population),
		HexDigit(w.Government),
		HexDigit(w.LawLevel),
		HexDigit(w.TechLevel),
		w.BaseCode(),
		Classifications(w.TradeClassifications),
		gasGiant,
	)
}

// Header returns a column heading aligned with Render output.
func Header() string {
	return fmt.Sprintf("%-18s %4s %-9s %c %-42s%c", "Name", "Hex", "UWP", 'B', "Remarks", 'G')
}

// HexDigit renders v as a single radix-35 digit. It panics outside 0..34.
func HexDigit(v int) byte {
	return entities.Digit(v)
}

// Classifications joins the list into the remarks column. Full names are
// used when they fit the budget, then short names, then abbreviations.
// The abbreviation join is returned even when it does not fit.
func Classifications(list []*entities.TradeClassification) string {
	joined := JoinWithSuffix(collect(list, fullName), Separator)
	if len(joined) <= ClassificationBudget {
		return joined
	}

	joined = JoinWithSuffix(collect(list, shortName), Separator)
	if len(joined) <= ClassificationBudget {
		return joined
	}

	return JoinWithSuffix(collect(list, abbreviation), Separator)
}

// JoinWithSuffix concatenates parts, each followed by suffix.
func JoinWithSuffix(parts []string, suffix string) string {
	var b strings.Builder
	for _, part := range parts {
		b.WriteString(part)
		b.WriteString(suffix)
	}
	return b.String()
}

func fullName(tc *entities.TradeClassification) string     { return tc.Name }
func shortName(tc *entities.TradeClassification) string    { return tc.ShortName }
func abbreviation(tc *entities.TradeClassification) string { return tc.Abbreviation }

func collect(list []*entities.TradeClassification, field func(*entities.TradeClassification) string) []string {
	out := make([]string, len(list))
	for i, tc := range list {
		out[i] = field(tc)
	}
	return out
}
