package jsonschema

import (
	"strings"
)

// EvaluateType checks if the data's type matches the type specified in the schema.
// According to the JSON Schema Draft 2020-12:
//   - The value of the "type" keyword must be either a string or an array of unique strings.
//   - Valid string values are the six primitive types ("null", "boolean", "object", "array", "number", "string")
//     and "integer", which matches any number with a zero fractional part.
//   - If "type" is a single string, the data matches if its type corresponds to that string.
//   - If "type" is an array, the data matches if its type corresponds to any string in that array.
//
// This method ensures that the data instance conforms to the type constraints defined in the schema.
// If the instance does not conform, it returns an EvaluationError detailing the expected and actual types.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-type
func evaluateType(schema *Schema, instance interface{}) *EvaluationError {
	// A compiled node already carries its admissible types from compile
	// time (dispatch.go); an uncompiled one (built directly through the
	// constructor helpers, never run through Compiler.Compile) derives
	// them here on the fly.
	var admissible []string
	if schema.compiledValidator != nil {
		admissible = schema.admissibleTypes
	} else {
		admissible = admissibleTypes(schema)
	}
	if len(admissible) == 0 {
		return nil // No type constraints, so no validation needed
	}

	instanceType := getDataType(instance) // Determine the type of the provided instance
	if typeAdmits(admissible, instanceType) {
		return nil // Correct type found, validation successful
	}

	// If no valid type match is found, return an EvaluationError
	return NewEvaluationError("type", "type_mismatch", "Value is {received} but should be {expected}", map[string]interface{}{
		"expected": strings.Join(admissible, ", "), // Expected types
		"received": instanceType,                   // Actual type of the input data
		"value":    instance,                       // The offending value itself
	})
}
