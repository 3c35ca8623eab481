package phraser

import (
	"fmt"
	"math/rand"
)

// Phraser hands out format strings for repeated prompts so that asking for
// several variables in a row doesn't read like a form. It always starts with
// the first phrase, after that it cycles through the remaining phrases in a
// random order.
//
// Usage:
//
//	phraser := phraser.New([]string{
//		"%c is not bound. Is it true? [y/N]: ",
//		"And %c? [y/N]: ",
//		"What about %c? [y/N]: ",
//	})
//
//	for _, label := range missing {
//		fmt.Print(phraser.Get(label))
//	}
type Phraser struct {
	first     string
	rest      []string
	next      int
	firstUsed bool

	random *rand.Rand
}

func New(phrases []string) *Phraser {
	return NewWithRand(phrases, rand.New(rand.NewSource(rand.Int63())))
}

// NewWithRand creates a Phraser that shuffles using random.
func NewWithRand(phrases []string, random *rand.Rand) *Phraser {
	p := &Phraser{random: random}
	if len(phrases) > 0 {
		p.first = phrases[0]
		// copy the phrases so we don't shuffle the caller's slice
		p.rest = append([]string(nil), phrases[1:]...)
	}
	p.next = len(p.rest) // forces a shuffle before the first non-first phrase
	return p
}

func (p *Phraser) Get(formatArgs ...any) string {
	if p.first == "" && len(p.rest) == 0 {
		return ""
	}
	return fmt.Sprintf(p.pick(), formatArgs...)
}

func (p *Phraser) pick() string {
	if !p.firstUsed || len(p.rest) == 0 {
		p.firstUsed = true
		return p.first
	}

	if p.next >= len(p.rest) {
		// we've used all phrases, shuffle and start again
		p.random.Shuffle(len(p.rest), func(i, j int) {
			p.rest[i], p.rest[j] = p.rest[j], p.rest[i]
		})
		p.next = 0
	}

	phrase := p.rest[p.next]
	p.next++
	return phrase
}
