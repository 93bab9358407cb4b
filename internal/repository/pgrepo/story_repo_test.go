package pgrepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikeEscaper(t *testing.T) {
	cases := []struct {
		name     string
		query    string
		expected string
	}{
		{name: "plain", query: "tien hiep", expected: "tien hiep"},
		{name: "percent", query: "%", expected: `\%`},
		{name: "underscore", query: "so_long", expected: `so\_long`},
		{name: "backslash", query: `a\b`, expected: `a\\b`},
		{name: "mixed", query: `100%_\`, expected: `100\%\_\\`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, likeEscaper.Replace(c.query))
		})
	}
}
