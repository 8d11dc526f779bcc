package rain

import "math/rand/v2"

// Alphabet is the set of symbols the rain is drawn from.
const Alphabet = "$%#@!*abcdefghijklmnopqrstuvwxyz1234567890?;:ABCDEFGHIJKLMNOPQRSTUVWXYZ^&"

// RandomGlyph draws a symbol from Alphabet. Unless full is set the last
// symbol is never drawn, which is how the effect has always looked.
func RandomGlyph(rng *rand.Rand, full bool) rune {
	n := len(Alphabet)
	if !full {
		n--
	}
	return rune(Alphabet[rng.IntN(n)])
}
