package jsonschema

// The boolean type module: "type": "boolean" admits Go bool values. Like
// null, booleans have no keyword family beyond type/enum/const.

func isBooleanInstance(instance any) bool {
	_, ok := instance.(bool)
	return ok
}
