package jsonschema

// The integer type module: "type": "integer" admits any numeric instance
// with a zero fractional part, including floats like 2.0 — getDataType
// already classifies those as "integer", and this module does not attempt
// any stricter float-vs-integer reconciliation beyond that (excluded, see
// SPEC_FULL.md §6). It shares multipleOf/maximum/minimum/exclusiveMaximum/
// exclusiveMinimum with the number module rather than duplicating them.

func isIntegerInstance(instanceType string) bool {
	return instanceType == "integer"
}
