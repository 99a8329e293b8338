package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   \t\n "))
	assert.Equal(t, "болгарский перец", Normalize("  Болгарский   Перец "))
	assert.Equal(t, "свекла", Normalize("СВЁКЛА"))
	assert.Equal(t, "green onion", Normalize("Green\tOnion"))
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"  Болгарский   Перец ",
		"ЗелЁный лук",
		"tomato   PASTE",
		" ё ё ё ",
	}
	for _, s := range inputs {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", s)
	}
}
