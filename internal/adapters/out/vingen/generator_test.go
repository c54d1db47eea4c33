package vingen_test

import (
	"math/rand/v2"
	"testing"

	"automfg/internal/adapters/out/vingen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDigit(t *testing.T) {
	tests := []struct {
		vin  string
		want byte
	}{
		{"1M8GDM9AXKP042788", 'X'},
		{"11111111111111111", '1'},
		{"1HGCM82633A004352", '3'},
	}

	for _, tt := range tests {
		t.Run(tt.vin, func(t *testing.T) {
			assert.Equal(t, tt.want, vingen.CheckDigit(tt.vin))
		})
	}
}

func TestGenerator_Generate(t *testing.T) {
	g, err := vingen.NewGenerator("5yj", rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	seen := make(map[string]bool)
	for range 200 {
		vin, err := g.Generate()
		require.NoError(t, err)

		s := vin.String()
		assert.Len(t, s, 17)
		assert.Equal(t, "5YJ", s[:3])
		assert.Equal(t, vingen.CheckDigit(s), s[8])
		assert.NotContains(t, s, "I")
		assert.NotContains(t, s, "O")
		assert.NotContains(t, s, "Q")
		assert.False(t, seen[s], "duplicate VIN %s", s)
		seen[s] = true
	}
}

func TestGenerator_SameSeedSameSequence(t *testing.T) {
	a, _ := vingen.NewGenerator("5YJ", rand.New(rand.NewPCG(7, 7)))
	b, _ := vingen.NewGenerator("5YJ", rand.New(rand.NewPCG(7, 7)))

	for range 5 {
		va, err := a.Generate()
		require.NoError(t, err)
		vb, err := b.Generate()
		require.NoError(t, err)
		assert.Equal(t, va, vb)
	}
}

func TestNewGenerator_RejectsInvalidIdentifier(t *testing.T) {
	for _, wmi := range []string{"", "5Y", "5YJX", "IOQ"} {
		_, err := vingen.NewGenerator(wmi, nil)
		assert.Error(t, err, wmi)
	}

	g, err := vingen.NewGenerator("1HG", nil)
	require.NoError(t, err)
	_, err = g.Generate()
	require.NoError(t, err)
}
