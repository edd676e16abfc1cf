package jsonschema

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryRequestRecordsNeeded(t *testing.T) {
	reg := NewRegistry()
	id := reg.Request("main", RootPointer().Join("$defs").Join("node"))
	assert.Equal(t, "main#$defs#node", id)

	pending := reg.Needed()
	assert.Len(t, pending, 1)
	assert.Equal(t, "main", pending[0].authority)
	assert.Equal(t, "/$defs/node", pending[0].pointer)
}

func TestRegistryRequestDeduplicates(t *testing.T) {
	reg := NewRegistry()
	ptr := RootPointer().Join("properties").Join("x")
	reg.Request("main", ptr)
	reg.Request("main", ptr)

	assert.Len(t, reg.Needed(), 1)
}

func TestRegistryMarkMaterializedRemovesFromNeeded(t *testing.T) {
	reg := NewRegistry()
	ptr := RootPointer().Join("items")
	reg.Request("main", ptr)
	reg.MarkMaterialized("main", ptr)

	assert.True(t, reg.IsMaterialized("main", ptr))
	assert.Empty(t, reg.Needed())
}

func TestRegistryRequestAfterMaterializedDoesNotReQueue(t *testing.T) {
	reg := NewRegistry()
	ptr := RootPointer().Join("items")
	reg.MarkMaterialized("main", ptr)

	reg.Request("main", ptr)
	assert.Empty(t, reg.Needed())
}

func TestRegistryNeededDrainsOnce(t *testing.T) {
	reg := NewRegistry()
	reg.Request("main", RootPointer().Join("a"))
	reg.Request("main", RootPointer().Join("b"))

	first := reg.Needed()
	assert.Len(t, first, 2)

	second := reg.Needed()
	assert.Empty(t, second)
}

func TestRegistryAuthorityScoping(t *testing.T) {
	reg := NewRegistry()
	ptr := RootPointer()
	idA := reg.Request("a", ptr)
	idB := reg.Request("b", ptr)
	assert.NotEqual(t, idA, idB)

	reg.MarkMaterialized("a", ptr)
	assert.True(t, reg.IsMaterialized("a", ptr))
	assert.False(t, reg.IsMaterialized("b", ptr))
}

func TestRegistryGetFileIsIdempotent(t *testing.T) {
	reg := NewRegistry()
	path := t.TempDir() + "/schema.json"
	assert.NoError(t, os.WriteFile(path, []byte(`{"type":"object"}`), 0o600))

	data1, cached1, err := reg.GetFile(path)
	assert.NoError(t, err)
	assert.False(t, cached1)

	data2, cached2, err := reg.GetFile(path)
	assert.NoError(t, err)
	assert.True(t, cached2)
	assert.Equal(t, data1, data2)
}

func TestRegistryPrecache(t *testing.T) {
	reg := NewRegistry()
	path := t.TempDir() + "/schema.json"
	assert.NoError(t, os.WriteFile(path, []byte(`{"type":"string"}`), 0o600))

	assert.NoError(t, reg.Precache(path))
	_, cached, err := reg.GetFile(path)
	assert.NoError(t, err)
	assert.True(t, cached)
}

func TestRegistryNodeIndexAndLookup(t *testing.T) {
	reg := NewRegistry()
	node := &Schema{}
	ptr := RootPointer().Join("$defs").Join("foo")

	reg.IndexNode("main", ptr, node)
	found, ok := reg.Lookup("main", ptr)
	assert.True(t, ok)
	assert.Same(t, node, found)

	_, ok = reg.Lookup("other", ptr)
	assert.False(t, ok)
}
