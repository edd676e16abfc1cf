package jsonschema

// The string type module wires maxLength, minLength and pattern — the
// same grouping evaluateString used — plus contentEncoding/
// contentMediaType/contentSchema (content.go), which only ever apply to
// string instances.

func isStringInstance(instance any) bool {
	_, ok := instance.(string)
	return ok
}

// stringFiltersPresent reports whether schema carries any of the length/
// pattern filters, mirroring validate.go's gate before calling
// evaluateString.
func stringFiltersPresent(schema *Schema) bool {
	return schema.MaxLength != nil || schema.MinLength != nil || schema.Pattern != nil
}

// contentFiltersPresent reports whether schema carries any string-encoded-
// data filter, mirroring validate.go's gate before calling evaluateContent.
func contentFiltersPresent(schema *Schema) bool {
	return schema.ContentEncoding != nil || schema.ContentMediaType != nil || schema.ContentSchema != nil
}
