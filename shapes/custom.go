package shapes

import "github.com/shaclgo/shacl/term"

// CustomParameter is one sh:parameter declared by a custom constraint
// component definition.
type CustomParameter struct {
	Path     string // predicate IRI local to the parameter
	Optional bool
}

// CustomValidator is a single SPARQL validator body (sh:validator,
// sh:nodeValidator, or sh:propertyValidator) attached to a custom
// component definition.
type CustomValidator struct {
	IsAsk   bool // true: ASK body; false: SELECT body
	Query   string
	Prefixes map[string]string
	Message  []term.Term
}

// CustomComponent is a custom sh:ConstraintComponent definition: its IRI,
// declared parameters, and up to three validator bodies. Node-shape
// contexts prefer NodeValidator then Validator; property-shape contexts
// prefer PropertyValidator then Validator.
type CustomComponent struct {
	IRI               string
	Parameters        []CustomParameter
	Validator         *CustomValidator
	NodeValidator     *CustomValidator
	PropertyValidator *CustomValidator
}

// SelectValidator returns the validator body to use for a given shape
// context, per the preference order above.
func (c *CustomComponent) SelectValidator(isPropertyContext bool) *CustomValidator {
	if isPropertyContext {
		if c.PropertyValidator != nil {
			return c.PropertyValidator
		}
		return c.Validator
	}
	if c.NodeValidator != nil {
		return c.NodeValidator
	}
	return c.Validator
}
