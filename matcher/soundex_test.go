package matcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSoundex(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Smith", "S530"},
		{"Smyth", "S530"},
		{"Katherine", "K365"},
		{"Kathryn", "K365"},
		{"Rodriguez", "R362"},
		{"Robert", "R163"},
		{"Rupert", "R163"},
		{"", ""},
		{"   ", ""},
		{"h", "H000"},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			require.Equal(t, c.want, Soundex(c.input))
		})
	}
}

func TestSoundex_CaseInsensitive(t *testing.T) {
	require.Equal(t, Soundex("smith"), Soundex("SMITH"))
}
