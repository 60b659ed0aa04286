package token

import "testing"

func TestGenerateLengthAndAlphabet(t *testing.T) {
	key := Generate(32)
	if len(key) != 32 {
		t.Fatalf("len = %d, want 32", len(key))
	}
	for _, c := range key {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		default:
			t.Fatalf("key %q contains non-alphanumeric %q", key, c)
		}
	}
}

func TestGenerateIsUniform(t *testing.T) {
	// With 320k characters each of the 62 symbols expects ~5161 hits; a
	// modulo-biased mapping would put the alphabet's head 25% above its
	// tail, far outside the 15% band checked here.
	counts := make(map[rune]int)
	for i := 0; i < 10000; i++ {
		for _, c := range Generate(32) {
			counts[c]++
		}
	}
	if len(counts) != 62 {
		t.Fatalf("distinct characters = %d, want 62", len(counts))
	}
	mean := 10000 * 32 / 62
	for c, n := range counts {
		if n < mean*85/100 || n > mean*115/100 {
			t.Fatalf("character %q count = %d, want within 15%% of %d", c, n, mean)
		}
	}
}

func TestGenerateIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		key := Generate(32)
		if seen[key] {
			t.Fatalf("duplicate key %q", key)
		}
		seen[key] = true
	}
}
