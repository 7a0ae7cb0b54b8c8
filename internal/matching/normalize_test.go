package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "accents", in: "áéíóú", want: "aeiou"},
		{name: "upper_accents", in: "EDUCACIÓN Ñandú", want: "educacion nandu"},
		{name: "plain", in: "Go Developer", want: "go developer"},
		{name: "keeps_punctuation", in: "C++, Node.js; 20%", want: "c++, node.js; 20%"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"", "Formación Académica", "Aumenté las ventas un 20%", "ÀÉÎÕÜ çñ", "İstanbul"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 0, WordCount("   \n\t"))
	assert.Equal(t, 3, WordCount(" uno\tdos\n tres "))
}
