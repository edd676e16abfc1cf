package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDraftOrdinalOrdering(t *testing.T) {
	assert.True(t, Draft2020.atLeast(Draft2019))
	assert.True(t, Draft7.before(Draft2019))
	assert.False(t, Draft4.atLeast(Draft6))
	assert.True(t, Draft2020.atLeast(Draft4))
}

func TestKeywordEnabledByDraft(t *testing.T) {
	assert.False(t, keywordEnabled(Draft7, "dependentRequired"))
	assert.True(t, keywordEnabled(Draft2019, "dependentRequired"))
	assert.True(t, keywordEnabled(Draft2020, "dependentRequired"))

	assert.True(t, keywordEnabled(Draft7, "dependencies"))
	assert.False(t, keywordEnabled(Draft2019, "dependencies"))

	assert.True(t, keywordEnabled(Draft7, "additionalItems"))
	assert.False(t, keywordEnabled(Draft2019, "additionalItems"))

	assert.False(t, keywordEnabled(Draft4, "$anchor"))
	assert.True(t, keywordEnabled(Draft2020, "$anchor"))

	assert.False(t, keywordEnabled(Draft7, "$dynamicRef"))
	assert.True(t, keywordEnabled(Draft2019, "$dynamicRef"))
}

func TestKeywordEnabledDefaultsTrueForUnlistedKeywords(t *testing.T) {
	assert.True(t, keywordEnabled(Draft4, "minimum"))
	assert.True(t, keywordEnabled(Draft2020, "properties"))
}

func TestCompilerSetDraft(t *testing.T) {
	c := NewCompiler()
	assert.Equal(t, defaultDraft, c.Draft)

	c.SetDraft(Draft7)
	assert.Equal(t, Draft7, c.Draft)
}

func TestSchemaEffectiveDraftFallsBackToDefault(t *testing.T) {
	s := &Schema{}
	assert.Equal(t, defaultDraft, s.effectiveDraft())
}

func TestSchemaEffectiveDraftFollowsCompiler(t *testing.T) {
	c := NewCompiler().SetDraft(Draft6)
	schema, err := c.Compile([]byte(`{"type":"string"}`))
	assert.NoError(t, err)
	assert.Equal(t, Draft6, schema.effectiveDraft())
}
