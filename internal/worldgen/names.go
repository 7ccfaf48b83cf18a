package worldgen

import (
	"strings"

	"github.com/KirkDiggler/starjumper/internal/random"
)

var (
	nameOnsets = []string{
		"Ar", "Bel", "Cor", "Dra", "Es", "Fen", "Gal", "Hal", "Ir", "Jun",
		"Kal", "Lor", "Mar", "Nor", "Or", "Pax", "Quin", "Reg", "Sol", "Tar",
		"Ul", "Vel", "Wyn", "Xan", "Yor", "Zed",
	}
	nameMiddles = []string{
		"a", "e", "i", "o", "u", "an", "el", "is", "on", "ur", "ae", "io",
	}
	nameCodas = []string{
		"ris", "dor", "nia", "lax", "mar", "tis", "ven", "rus", "ka", "th",
		"lon", "sa", "gard", "x", "phe", "nor",
	}
)

// MaxNameLength bounds generated names so they fit the description column.
const MaxNameLength = 14

// Name draws a world name from s: an onset, an optional middle syllable and
// a coda. It returns the stream after the last draw.
func Name(s random.Stream) (string, random.Stream) {
	var b strings.Builder

	onset, s := pick(nameOnsets, s)
	b.WriteString(onset)

	roll, s := s.Next(2)
	if roll == 2 {
		var middle string
		middle, s = pick(nameMiddles, s)
		b.WriteString(middle)
	}

	coda, s := pick(nameCodas, s)
	b.WriteString(coda)

	return b.String(), s
}

func pick(list []string, s random.Stream) (string, random.Stream) {
	face, s := s.Next(len(list))
	return list[face-1], s
}
