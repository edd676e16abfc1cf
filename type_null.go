package jsonschema

// The null type module: "type": "null" admits exactly the JSON null value.
// There is no dedicated keyword family for null beyond type/enum/const,
// which evaluate() already applies to every instance type uniformly, so
// this module carries only the admission predicate.

func isNullInstance(instance any) bool {
	return instance == nil
}
