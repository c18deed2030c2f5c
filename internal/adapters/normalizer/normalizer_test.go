package normalizer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultNormalizer(t *testing.T) {
	n := NewDefaultNormalizer()
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"Hello, World!", "hello world"},
		{"  New-York   Mets ", "new york mets"},
		{"C'est la VIE", "c est la vie"},
		{"Café 42", "café 42"},
		{"!!!", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, n.Normalize(tc.in), "Normalize(%q)", tc.in)
	}
}

func TestASCIINormalizer(t *testing.T) {
	n := NewASCIINormalizer()
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Hello, World!", "hello world"},
		{"Café au lait", "caf au lait"},
		{"日本 Tokyo", "tokyo"},
		{"A\tB\nC", "a b c"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, n.Normalize(tc.in), "Normalize(%q)", tc.in)
	}
}

func TestFoldingNormalizer(t *testing.T) {
	n := NewFoldingNormalizer()
	assert.Equal(t, "cafe creme", n.Normalize("Café Crème"))
	assert.Equal(t, "naive", n.Normalize("naïve"))
	assert.Equal(t, "", n.Normalize(""))
	// Decomposed input folds the same way as precomposed input.
	assert.Equal(t, "e", n.Normalize("e\u0301"))
}

func TestNoopNormalizer(t *testing.T) {
	assert.Equal(t, "  Keep As Is! ", NewNoopNormalizer().Normalize("  Keep As Is! "))
}

func TestParseNormalizerType(t *testing.T) {
	for name, want := range map[string]NormalizerType{
		"":        NoopNormalizerType,
		"none":    NoopNormalizerType,
		"Default": DefaultNormalizerType,
		" ascii ": ASCIINormalizerType,
		"FOLDING": FoldingNormalizerType,
	} {
		got, err := ParseNormalizerType(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseNormalizerType("soundex")
	assert.Error(t, err)
}

func TestFactory(t *testing.T) {
	f := NewNormalizerFactory()
	assert.IsType(t, NoopNormalizer{}, f.CreateNormalizer(NoopNormalizerType))
	assert.IsType(t, &DefaultNormalizer{}, f.CreateNormalizer(DefaultNormalizerType))
	assert.IsType(t, &ASCIINormalizer{}, f.CreateNormalizer(ASCIINormalizerType))
	assert.IsType(t, &FoldingNormalizer{}, f.CreateNormalizer(FoldingNormalizerType))
	assert.Equal(t, "ascii", ASCIINormalizerType.String())
}

func TestNormalizersAreSafeForConcurrentUse(t *testing.T) {
	f := NewNormalizerFactory()
	for _, typ := range []NormalizerType{DefaultNormalizerType, ASCIINormalizerType, FoldingNormalizerType} {
		n := f.CreateNormalizer(typ)
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					assert.Equal(t, "fuzzy wuzzy", n.Normalize("Fuzzy, WUZZY!"))
				}
			}()
		}
		wg.Wait()
	}
}
