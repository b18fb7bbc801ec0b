// Package randid generates random labels for demo content.
package randid

import "math/rand/v2"

const (
	alphanumeric = "abcdefghijklmnopqrstuvwxyz0123456789"
	consonants   = "bcdfghjklmnprstvz"
	vowels       = "aeiou"
)

// Generator draws labels from its own source. Generators created with the
// same non-zero seed produce the same labels.
type Generator struct {
	r *rand.Rand
}

// New returns a Generator for seed. Seed 0 picks a random seed.
func New(seed uint64) *Generator {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Generator{r: rand.New(rand.NewPCG(seed, seed>>1|1))}
}

// ID returns a random alphanumeric string of length n.
func (g *Generator) ID(n int) string {
	b := make([]byte, max(0, n))
	for i := range b {
		b[i] = alphanumeric[g.r.IntN(len(alphanumeric))]
	}
	return string(b)
}

// Word returns a pronounceable lowercase word made of consonant and vowel
// pairs.
func (g *Generator) Word(syllables int) string {
	b := make([]byte, 0, 2*max(0, syllables))
	for range syllables {
		b = append(b, consonants[g.r.IntN(len(consonants))], vowels[g.r.IntN(len(vowels))])
	}
	return string(b)
}

// Labels returns n menu labels, each a word followed by a short id.
func (g *Generator) Labels(n int) []string {
	out := make([]string, max(0, n))
	for i := range out {
		out[i] = g.Word(3) + "-" + g.ID(4)
	}
	return out
}
