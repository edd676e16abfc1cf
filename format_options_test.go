package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatOptionDisablesByTypeName(t *testing.T) {
	c := NewCompiler().SetAssertFormat(true)
	c.SetFormatOption("email", FormatOption{Disabled: true})

	schema, err := c.Compile([]byte(`{"type":"string","format":"email"}`))
	assert.NoError(t, err)

	result := schema.Validate("not-an-email")
	assert.True(t, result.IsValid())
}

func TestFormatOptionOverridesValidator(t *testing.T) {
	c := NewCompiler().SetAssertFormat(true)
	c.SetFormatOption("widget-id", FormatOption{
		Validator: func(v any) bool {
			s, ok := v.(string)
			return ok && len(s) == 4
		},
	})

	schema, err := c.Compile([]byte(`{"type":"string","format":"widget-id"}`))
	assert.NoError(t, err)

	assert.True(t, schema.Validate("ABCD").IsValid())
	assert.False(t, schema.Validate("AB").IsValid())
}

func TestFormatOptionUTCRequiresTrailingZ(t *testing.T) {
	c := NewCompiler().SetAssertFormat(true)
	c.SetFormatOption("date-time", FormatOption{UTC: true})

	schema, err := c.Compile([]byte(`{"type":"string","format":"date-time"}`))
	assert.NoError(t, err)

	assert.True(t, schema.Validate("2020-01-02T03:04:05Z").IsValid())
	assert.False(t, schema.Validate("2020-01-02T03:04:05+02:00").IsValid())
}
