package jsonschema

// The array type module wires prefixItems, items, contains/minContains/
// maxContains, maxItems, minItems and uniqueItems — the same grouping
// evaluateArray used — plus unevaluatedItems, which needs the
// evaluatedItems set evaluateArray produces.

func isArrayInstance(instance any) bool {
	_, ok := instance.([]interface{})
	return ok
}

func arrayFiltersPresent(schema *Schema) bool {
	return len(schema.PrefixItems) > 0 ||
		schema.Items != nil ||
		schema.Contains != nil ||
		schema.MaxContains != nil ||
		schema.MinContains != nil ||
		schema.MaxItems != nil ||
		schema.MinItems != nil ||
		schema.UniqueItems != nil
}

// unevaluatedItemsFilterPresent mirrors validate.go's separate gate for
// unevaluatedItems, which needs the evaluatedItems set the main array gate
// produces and so is evaluated afterward.
func unevaluatedItemsFilterPresent(schema *Schema) bool {
	return schema.UnevaluatedItems != nil && keywordEnabled(schema.effectiveDraft(), "unevaluatedItems")
}
