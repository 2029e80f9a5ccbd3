package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFields(t *testing.T) {
	cases := []struct {
		command  string
		expected []string
	}{
		{``, nil},
		{`   `, nil},
		{`touch a.txt`, []string{"touch", "a.txt"}},
		// Quotes are retained and the quoted space does not split.
		{`mkdir "my dir"`, []string{"mkdir", `"my dir"`}},
		{`mkdir "a b" c`, []string{"mkdir", `"a b"`, "c"}},
		{`touch "a b".txt`, []string{"touch", `"a b".txt`}},
		{`mkdir   foo   `, []string{"mkdir", "foo"}},
		{`rm -rf foo`, []string{"rm", "-rf", "foo"}},
		// Unbalanced quotes leave the flag toggled, no error.
		{`mkdir "a b`, []string{"mkdir", `"a b`}},
		{`"`, []string{`"`}},
		{`cd ""`, []string{"cd", `""`}},
	}

	for _, tc := range cases {
		t.Run(tc.command, func(t *testing.T) {
			assert.Equal(t, tc.expected, Fields(tc.command))
		})
	}
}

func TestSplit(t *testing.T) {
	cases := []struct {
		line     string
		expected []string
	}{
		{`a`, []string{"a"}},
		{`a;b;c`, []string{"a", "b", "c"}},
		{`mkdir foo;touch foo/bar.txt`, []string{"mkdir foo", "touch foo/bar.txt"}},
		{`a;`, []string{"a", ""}},
		{`;;`, []string{"", "", ""}},
		// The splitter is not quote-aware.
		{`mkdir "a;b"`, []string{`mkdir "a`, `b"`}},
	}

	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			assert.Equal(t, tc.expected, Split(tc.line))
		})
	}
}
