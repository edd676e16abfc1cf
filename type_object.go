package jsonschema

// The object type module wires properties, patternProperties,
// additionalProperties, propertyNames, maxProperties, minProperties,
// required and dependentRequired — the same grouping evaluateObject used
// — plus dependentSchemas and unevaluatedProperties, which need the same
// evaluatedProps bookkeeping.

func isObjectInstance(instance any) bool {
	_, ok := instance.(map[string]interface{})
	return ok
}

func objectFiltersPresent(schema *Schema) bool {
	return schema.Properties != nil ||
		schema.PatternProperties != nil ||
		schema.AdditionalProperties != nil ||
		schema.PropertyNames != nil ||
		schema.MaxProperties != nil ||
		schema.MinProperties != nil ||
		len(schema.Required) > 0 ||
		len(schema.DependentRequired) > 0
}

// dependentSchemasFilterPresent and unevaluatedPropertiesFilterPresent
// mirror validate.go's separate gates for dependentSchemas and
// unevaluatedProperties, which run after (and depend on the output of) the
// main object gate above.
func dependentSchemasFilterPresent(schema *Schema) bool {
	return schema.DependentSchemas != nil && keywordEnabled(schema.effectiveDraft(), "dependentSchemas")
}

func unevaluatedPropertiesFilterPresent(schema *Schema) bool {
	return schema.UnevaluatedProperties != nil && keywordEnabled(schema.effectiveDraft(), "unevaluatedProperties")
}
