package jsonschema

import "strconv"

// validatorFunc is the compiled-validator closure a Schema node carries once
// compile has run: the "check(value, path) -> Result" procedure of Design
// Notes option (b), built once and reused on every call to Validate.
type validatorFunc func(instance any, dynamicScope *DynamicScope) (*EvaluationResult, map[string]bool, map[int]bool)

// admissibleTypes returns the JSON primitive type names this node's "type"
// keyword admits, or nil if the node carries no type constraint (meaning
// every type is admissible). Grounded on type.go's evaluateType, lifted out
// of the per-call evaluate path into a standalone, memoizable step so the
// type dispatcher can decide which type modules to wire into the node's
// compiled validator without re-deriving this on every Validate call.
func admissibleTypes(s *Schema) []string {
	if s == nil || len(s.Type) == 0 {
		return nil
	}
	out := make([]string, len(s.Type))
	copy(out, s.Type)
	return out
}

// typeAdmits reports whether instanceType is allowed by admissible, treating
// "integer" as a subtype of "number" the same way evaluateType does.
func typeAdmits(admissible []string, instanceType string) bool {
	if len(admissible) == 0 {
		return true
	}
	for _, t := range admissible {
		if t == instanceType {
			return true
		}
		if t == "number" && instanceType == "integer" {
			return true
		}
	}
	return false
}

// pointerSegmentsFor enumerates this node's structurally-nested children
// together with the JSON Pointer segment each is reached by, in the same
// traversal order initializeNestedSchemasCore uses. It is the single place
// that knows how a Schema's fields map onto JSON Pointer path segments, so
// assignPointers and Schema.compile (which both need to recurse the same
// way) cannot drift apart.
func pointerSegmentsFor(s *Schema, visit func(child *Schema, segments ...string)) {
	if s.Defs != nil {
		for name, def := range s.Defs {
			if def != nil {
				visit(def, "$defs", name)
			}
		}
	}
	for i, child := range s.AllOf {
		if child != nil {
			visit(child, "allOf", strconv.Itoa(i))
		}
	}
	for i, child := range s.AnyOf {
		if child != nil {
			visit(child, "anyOf", strconv.Itoa(i))
		}
	}
	for i, child := range s.OneOf {
		if child != nil {
			visit(child, "oneOf", strconv.Itoa(i))
		}
	}
	if s.Not != nil {
		visit(s.Not, "not")
	}
	if s.If != nil {
		visit(s.If, "if")
	}
	if s.Then != nil {
		visit(s.Then, "then")
	}
	if s.Else != nil {
		visit(s.Else, "else")
	}
	if s.DependentSchemas != nil {
		for name, child := range s.DependentSchemas {
			if child != nil {
				visit(child, "dependentSchemas", name)
			}
		}
	}
	for i, child := range s.PrefixItems {
		if child != nil {
			visit(child, "prefixItems", strconv.Itoa(i))
		}
	}
	if s.Items != nil {
		visit(s.Items, "items")
	}
	if s.Contains != nil {
		visit(s.Contains, "contains")
	}
	if s.AdditionalProperties != nil {
		visit(s.AdditionalProperties, "additionalProperties")
	}
	if s.Properties != nil {
		for name, child := range *s.Properties {
			if child != nil {
				visit(child, "properties", name)
			}
		}
	}
	if s.PatternProperties != nil {
		for pattern, child := range *s.PatternProperties {
			if child != nil {
				visit(child, "patternProperties", pattern)
			}
		}
	}
	if s.UnevaluatedProperties != nil {
		visit(s.UnevaluatedProperties, "unevaluatedProperties")
	}
	if s.UnevaluatedItems != nil {
		visit(s.UnevaluatedItems, "unevaluatedItems")
	}
	if s.ContentSchema != nil {
		visit(s.ContentSchema, "contentSchema")
	}
	if s.PropertyNames != nil {
		visit(s.PropertyNames, "propertyNames")
	}
}

// assignPointers gives s and every structurally-nested descendant an
// authority and a schemaPointer, so every node carries an injective
// (authority, pointer) identity. It runs as a pass
// separate from initializeSchemaCore, after parsing/$ref-resolution, so
// schemas built directly through the constructor helpers (authority-less)
// are unaffected unless a Compiler explicitly assigns them one.
//
// $ref/$dynamicRef targets are not descended into here: a reference target
// either lives in the same document (and already has its own pointer from
// being walked as some other node's structural child) or in a different
// document entirely (and gets its own authority when that document is
// itself compiled). Either way it is not *this* node's descendant.
func assignPointers(s *Schema, authority string, ptr Pointer, reg *Registry, visited map[*Schema]bool) {
	if s == nil || visited[s] {
		return
	}
	visited[s] = true
	s.authority = authority
	s.schemaPointer = ptr
	if reg != nil {
		reg.IndexNode(authority, ptr, s)
	}

	pointerSegmentsFor(s, func(child *Schema, segments ...string) {
		childPtr := ptr
		for _, seg := range segments {
			childPtr = childPtr.Join(seg)
		}
		assignPointers(child, authority, childPtr, reg, visited)
	})
}

// compile builds s.compiledValidator exactly once (via sync.Once, so
// concurrent first calls from goroutines sharing a Compiler are safe) and
// recurses into every structurally-nested child, requesting identifiers for
// any `$ref`/`$dynamicRef` target through the registry instead of
// descending into it directly. It also memoizes s.admissibleTypes, so the
// "which types does this node admit" decision is made once here rather
// than re-derived by evaluateType on every Validate call. s.Validate is
// the caller: it invokes s.compiledValidator instead of the interpreter
// directly, so a node that has already been compiled never re-walks this
// decision.
func (s *Schema) compile(reg *Registry) {
	if s == nil {
		return
	}
	s.compileOnce.Do(func() {
		s.admissibleTypes = admissibleTypes(s)
		if reg != nil {
			reg.MarkMaterialized(s.authority, s.schemaPointer)
		}

		s.compiledValidator = func(instance any, dynamicScope *DynamicScope) (*EvaluationResult, map[string]bool, map[int]bool) {
			return s.evaluate(instance, dynamicScope)
		}

		if reg != nil {
			if s.ResolvedRef != nil && s.ResolvedRef.authority != "" {
				reg.Request(s.ResolvedRef.authority, s.ResolvedRef.schemaPointer)
				// A same-document target is also reachable structurally from
				// this node's own authority's root and gets compiled by that
				// traversal; a different-authority target (a separately
				// compiled document) needs compiling here directly, since no
				// structural traversal from this authority's root will ever
				// reach it.
				if s.ResolvedRef.authority != s.authority {
					s.ResolvedRef.compile(reg)
				}
			}
			if s.ResolvedDynamicRef != nil && s.ResolvedDynamicRef.authority != "" {
				reg.Request(s.ResolvedDynamicRef.authority, s.ResolvedDynamicRef.schemaPointer)
				if s.ResolvedDynamicRef.authority != s.authority {
					s.ResolvedDynamicRef.compile(reg)
				}
			}
		}

		pointerSegmentsFor(s, func(child *Schema, _ ...string) {
			child.compile(reg)
		})
	})
}

