// Package vingen issues vehicle identification numbers.
package vingen

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/core/ports"
)

const (
	wmiLength     = 3
	checkPosition = 8
)

var (
	weights = [17]int{8, 7, 6, 5, 4, 3, 2, 10, 0, 9, 8, 7, 6, 5, 4, 3, 2}

	transliteration = map[rune]int{
		'A': 1, 'B': 2, 'C': 3, 'D': 4, 'E': 5, 'F': 6, 'G': 7, 'H': 8,
		'J': 1, 'K': 2, 'L': 3, 'M': 4, 'N': 5, 'P': 7, 'R': 9,
		'S': 2, 'T': 3, 'U': 4, 'V': 5, 'W': 6, 'X': 7, 'Y': 8, 'Z': 9,
	}
)

// Generator builds VINs from a fixed world manufacturer identifier, random
// characters and a check digit in position 9.
type Generator struct {
	wmi string

	mu  sync.Mutex
	rnd *rand.Rand
}

var _ ports.VINGenerator = (*Generator)(nil)

// NewGenerator returns a generator for a three character manufacturer
// identifier. rnd may be nil.
func NewGenerator(wmi string, rnd *rand.Rand) (*Generator, error) {
	wmi = strings.ToUpper(strings.TrimSpace(wmi))
	if len(wmi) != wmiLength || strings.IndexFunc(wmi, notInAlphabet) >= 0 {
		return nil, fmt.Errorf("vingen: invalid manufacturer identifier %q", wmi)
	}
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{wmi: wmi, rnd: rnd}, nil
}

func (g *Generator) Generate() (kernel.VIN, error) {
	var b [17]byte
	copy(b[:], g.wmi)

	g.mu.Lock()
	for i := wmiLength; i < len(b); i++ {
		b[i] = kernel.VINAlphabet[g.rnd.IntN(len(kernel.VINAlphabet))]
	}
	g.mu.Unlock()

	b[checkPosition] = CheckDigit(string(b[:]))
	return kernel.NewVIN(string(b[:]))
}

// CheckDigit computes the position 9 check character of a 17 character VIN.
// The current character in position 9 is ignored.
func CheckDigit(vin string) byte {
	sum := 0
	for i, r := range vin {
		if i >= len(weights) {
			break
		}
		sum += value(r) * weights[i]
	}
	rem := sum % 11
	if rem == 10 {
		return 'X'
	}
	return byte('0' + rem)
}

func value(r rune) int {
	if r >= '0' && r <= '9' {
		return int(r - '0')
	}
	return transliteration[r]
}

func notInAlphabet(r rune) bool {
	return !strings.ContainsRune(kernel.VINAlphabet, r)
}
