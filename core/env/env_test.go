package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableSetGet(t *testing.T) {
	tbl := New()

	_, ok := tbl.LookupEnv("PATH")
	assert.False(t, ok)

	tbl.Setenv("PATH", "/bin")
	val, ok := tbl.LookupEnv("PATH")
	assert.True(t, ok)
	assert.Equal(t, "/bin", val)

	// Overwrite keeps position.
	tbl.Setenv("HOME", "/root")
	tbl.Setenv("PATH", "/usr/bin")
	assert.Equal(t, []string{"PATH=/usr/bin", "HOME=/root"}, tbl.Environ())
}

func TestTableInsertionOrder(t *testing.T) {
	tbl := New()
	tbl.Setenv("C", "3")
	tbl.Setenv("A", "1")
	tbl.Setenv("B", "2")

	assert.Equal(t, []string{"C=3", "A=1", "B=2"}, tbl.Environ())
}

func TestTableUnvaluedExports(t *testing.T) {
	tbl := New()
	tbl.Export("FOO")

	_, ok := tbl.LookupEnv("FOO")
	assert.False(t, ok, "unvalued exports have no value")
	assert.Empty(t, tbl.Environ(), "snapshot omits unvalued entries")

	// Export of an existing name keeps its value.
	tbl.Setenv("BAR", "x")
	tbl.Export("BAR")
	assert.Equal(t, "x", tbl.Getenv("BAR"))

	// Assigning an unvalued name upgrades it in place.
	tbl.Setenv("FOO", "y")
	assert.Equal(t, []string{"FOO=y", "BAR=x"}, tbl.Environ())
}

func TestTableUnset(t *testing.T) {
	tbl := New()
	tbl.Setenv("A", "1")
	tbl.Setenv("B", "2")
	tbl.Setenv("C", "3")

	tbl.Unsetenv("B")
	tbl.Unsetenv("NOPE")

	assert.Equal(t, []string{"A=1", "C=3"}, tbl.Environ())

	// Index stays consistent after removal.
	tbl.Setenv("C", "33")
	assert.Equal(t, []string{"A=1", "C=33"}, tbl.Environ())
}

func TestNewFromEnviron(t *testing.T) {
	tbl := NewFromEnviron([]string{"A=1", "B=x=y", "NOVALUE"})

	assert.Equal(t, "1", tbl.Getenv("A"))
	assert.Equal(t, "x=y", tbl.Getenv("B"), "only the first = splits")

	_, ok := tbl.LookupEnv("NOVALUE")
	assert.False(t, ok)
}

func TestClone(t *testing.T) {
	tbl := New()
	tbl.Setenv("A", "1")

	clone := tbl.Clone()
	clone.Setenv("A", "2")
	clone.Setenv("B", "3")

	assert.Equal(t, "1", tbl.Getenv("A"))
	assert.Equal(t, "", tbl.Getenv("B"))
	assert.Equal(t, "2", clone.Getenv("A"))
}

func TestValidName(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"PATH", true},
		{"_x", true},
		{"a1", true},
		{"1a", false},
		{"", false},
		{"FOO-BAR", false},
		{"a b", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidName(tc.name))
		})
	}
}
