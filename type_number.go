package jsonschema

// The number type module wires multipleOf/maximum/exclusiveMaximum/minimum/
// exclusiveMinimum for both "number" and "integer" instances — "integer" is
// a refinement of "number", not a disjoint type, matching getDataType's
// convention of reporting whole-valued numerics as "integer" directly.

func isNumberInstance(instanceType string) bool {
	return instanceType == "number" || isIntegerInstance(instanceType)
}

func numericFiltersPresent(schema *Schema) bool {
	return schema.MultipleOf != nil || schema.Maximum != nil || schema.ExclusiveMaximum != nil ||
		schema.Minimum != nil || schema.ExclusiveMinimum != nil
}
