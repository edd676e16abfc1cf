package jsonschema

// Draft selects which JSON Schema specification revision a Compiler
// targets, gating keyword availability rather than reparsing the schema
// differently per draft.
type Draft string

const (
	Draft4    Draft = "4"
	Draft6    Draft = "6"
	Draft7    Draft = "7"
	Draft2019 Draft = "2019"
	Draft2020 Draft = "2020"
)

// defaultDraft is what a Compiler targets when SetDraft is never called.
const defaultDraft = Draft2020

// draftIndex orders drafts chronologically so "introduced in" / "removed
// in" checks can be expressed as simple comparisons.
var draftIndex = map[Draft]int{
	Draft4:    0,
	Draft6:    1,
	Draft7:    2,
	Draft2019: 3,
	Draft2020: 4,
}

func (d Draft) ordinal() int {
	if idx, ok := draftIndex[d]; ok {
		return idx
	}
	return draftIndex[defaultDraft]
}

func (d Draft) atLeast(other Draft) bool {
	return d.ordinal() >= other.ordinal()
}

func (d Draft) before(other Draft) bool {
	return d.ordinal() < other.ordinal()
}

// keywordEnabled reports whether keyword is honored under draft. Unlisted
// keywords are always enabled — this table only needs entries for
// keywords whose availability actually changed across drafts.
func keywordEnabled(draft Draft, keyword string) bool {
	switch keyword {
	case "dependentRequired", "dependentSchemas", "prefixItems", "$anchor", "$dynamicRef", "$dynamicAnchor",
		"unevaluatedItems", "unevaluatedProperties":
		// Introduced in 2019-09, restructuring draft-7's "dependencies"
		// and "items" tuple form into their own keywords.
		return draft.atLeast(Draft2019)
	case "dependencies", "additionalItems":
		// Both are superseded in 2019-09 (by dependentRequired/
		// dependentSchemas, and by "items" applying to the tuple tail once
		// prefixItems exists). These two aren't read through keywordEnabled
		// anywhere: schema.go's UnmarshalJSON translates them into their
		// replacement fields at parse time, before a Compiler/draft is
		// known, so the cases here document the cutoff rather than gate a
		// call site.
		return draft.before(Draft2019)
	default:
		return true
	}
}

// SetDraft configures which draft the Compiler targets. Schemas compiled
// afterward gate draft-introduced keywords accordingly.
func (c *Compiler) SetDraft(draft Draft) *Compiler {
	c.Draft = draft
	return c
}

// effectiveDraft returns the draft a schema should honor: its own, if set
// via its compiler, else defaultDraft.
func (s *Schema) effectiveDraft() Draft {
	c := s.GetCompiler()
	if c != nil && c.Draft != "" {
		return c.Draft
	}
	return defaultDraft
}
