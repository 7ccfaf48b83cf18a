package dice

import (
	"strconv"
	"strings"
)

// Modifiers is an ordered chain of signed die modifiers. Its effect on a
// throw is the sum of its entries; the order only records how the chain was
// built.
type Modifiers []int

// NewModifiers returns a chain holding values in order.
func NewModifiers(values ...int) Modifiers {
	if len(values) == 0 {
		return nil
	}
	chain := make(Modifiers, len(values))
	copy(chain, values)
	return chain
}

// Prepend returns a new chain with value in front of m. The receiver is not
// modified, so a shared base chain can be extended by several stages.
func (m Modifiers) Prepend(value int) Modifiers {
	chain := make(Modifiers, 0, len(m)+1)
	chain = append(chain, value)
	return append(chain, m...)
}

// Sum returns the total effect of the chain.
func (m Modifiers) Sum() int {
	total := 0
	for _, v := range m {
		total += v
	}
	return total
}

// String renders the chain in order, e.g. "-4-7+3". An empty chain renders
// as "".
func (m Modifiers) String() string {
	var b strings.Builder
	for _, v := range m {
		if v >= 0 {
			b.WriteByte('+')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
