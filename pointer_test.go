package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointerRoundTrip(t *testing.T) {
	cases := []string{"", "/", "#", "#/", "/a/b/0", "#/a/b/0", "/a~1b/c~0d"}
	for _, c := range cases {
		p := ParsePointer(c)
		roundTripped := ParsePointer(p.ToURI())
		assert.True(t, p.Equal(roundTripped), "round trip mismatch for %q", c)
	}
}

func TestPointerToURIEscaping(t *testing.T) {
	p := RootPointer().Join("a/b").Join("c~d")
	assert.Equal(t, "#/a~1b/c~0d", p.ToURI())
}

func TestPointerToRFC6901(t *testing.T) {
	assert.Equal(t, "", RootPointer().ToRFC6901())
	assert.Equal(t, "/a/b", RootPointer().Join("a").Join("b").ToRFC6901())
}

func TestPointerJoinLeavesReceiverUnmodified(t *testing.T) {
	base := RootPointer().Join("properties")
	extended := base.Join("number")
	assert.Equal(t, "#/properties", base.ToURI())
	assert.Equal(t, "#/properties/number", extended.ToURI())
}

func TestPointerJoinIndex(t *testing.T) {
	p := RootPointer().Join("items").JoinIndex(3)
	assert.Equal(t, "#/items/3", p.ToURI())
}

func TestPointerToFunIDInjective(t *testing.T) {
	a := RootPointer().Join("properties").Join("foo").ToFunID("main")
	b := RootPointer().Join("properties").Join("bar").ToFunID("main")
	c := RootPointer().Join("properties").Join("foo").ToFunID("other")
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)

	again := RootPointer().Join("properties").Join("foo").ToFunID("main")
	assert.Equal(t, a, again)
}

func TestPointerIsRoot(t *testing.T) {
	assert.True(t, RootPointer().IsRoot())
	assert.True(t, ParsePointer("#").IsRoot())
	assert.False(t, RootPointer().Join("a").IsRoot())
}
