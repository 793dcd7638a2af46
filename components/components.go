// Package components implements the constraint-component validators, one
// file per component family, each exposing a Validator function with a
// uniform signature so validate.Driver can dispatch on
// shapes.ComponentDescriptor.Kind without a type switch per call site.
package components

import (
	"context"

	"github.com/shaclgo/shacl/ids"
	"github.com/shaclgo/shacl/shapes"
	"github.com/shaclgo/shacl/store"
	"github.com/shaclgo/shacl/term"
)

// Env is the set of collaborators every component validator needs. The
// Conforms callback implements the recursive conformance sub-check used by
// Node, Not, And, Or, Xone, and QualifiedValueShape without components
// importing validate — validate.Driver wires its own
// recursive-validate entry point in here when it dispatches, which keeps
// the dependency one-directional (validate depends on components, not
// the reverse) despite the mutual recursion SHACL's shape graph allows.
type Env struct {
	Store     store.Store
	Model     *shapes.Model
	DataGraph store.Dataset

	// Conforms runs shape's full validation against focus as the sole
	// focus node and reports whether it produced zero failures, without
	// emitting anything into the report builder.
	Conforms func(ctx context.Context, focus term.Term, shape ids.NodeShapeID) (bool, error)

	// ValidateProperty runs propShape's full validation against each of
	// valueNodes as its own focus node, returning every result produced;
	// used by the Property component to delegate into a nested property
	// shape.
	ValidateProperty func(ctx context.Context, vctx shapes.Context, propShape ids.PropertyShapeID) ([]shapes.ComponentValidationResult, error)

	// SiblingPropertyPaths returns the predicate IRI of every simple-path
	// property shape declared on the given node shape other than exclude
	// (non-simple paths contribute nothing, since Closed only permits
	// exact predicates), used by Closed to compare against the predicates
	// declared on sibling property shapes.
	SiblingPropertyPaths func(owner ids.NodeShapeID, exclude ids.PropertyShapeID) []string

	// QualifiedSiblingValueNodes returns the value nodes claimed by
	// sibling qualified-value-shape components (those attached to the
	// same property shape other than self), used when
	// qualifiedValueShapesDisjoint is true.
	QualifiedSiblingValueNodes func(owner ids.PropertyShapeID, self ids.ComponentID) map[term.Term]bool
}

// Validator validates one component instance against vctx.ValueNodes,
// returning zero or more results.
type Validator func(ctx context.Context, env Env, vctx shapes.Context, comp *shapes.ComponentDescriptor) ([]shapes.ComponentValidationResult, error)

// Dispatch maps every ComponentKind to its validator. validate.Driver
// looks up entries here rather than switching on Kind itself.
var Dispatch = map[shapes.ComponentKind]Validator{
	shapes.KindMinCount: ValidateMinCount,
	shapes.KindMaxCount: ValidateMaxCount,

	shapes.KindMinExclusive: ValidateMinExclusive,
	shapes.KindMinInclusive: ValidateMinInclusive,
	shapes.KindMaxExclusive: ValidateMaxExclusive,
	shapes.KindMaxInclusive: ValidateMaxInclusive,

	shapes.KindMinLength:  ValidateMinLength,
	shapes.KindMaxLength:  ValidateMaxLength,
	shapes.KindPattern:    ValidatePattern,
	shapes.KindLanguageIn: ValidateLanguageIn,
	shapes.KindUniqueLang: ValidateUniqueLang,

	shapes.KindEquals:           ValidateEquals,
	shapes.KindDisjoint:         ValidateDisjoint,
	shapes.KindLessThan:         ValidateLessThan,
	shapes.KindLessThanOrEquals: ValidateLessThanOrEquals,

	shapes.KindHasValue: ValidateHasValue,
	shapes.KindIn:       ValidateIn,
	shapes.KindClass:    ValidateClass,
	shapes.KindDatatype: ValidateDatatype,
	shapes.KindNodeKind: ValidateNodeKind,

	shapes.KindNot:                 ValidateNot,
	shapes.KindAnd:                 ValidateAnd,
	shapes.KindOr:                  ValidateOr,
	shapes.KindXone:                ValidateXone,
	shapes.KindNode:                ValidateNode,
	shapes.KindProperty:            ValidateProperty,
	shapes.KindQualifiedValueShape: ValidateQualifiedValueShape,
	shapes.KindClosed:              ValidateClosed,

	shapes.KindSparql: ValidateSparql,
	shapes.KindCustom: ValidateCustom,
}

// fail is a small helper every family file uses to build a
// ComponentValidationResult for one offending value node.
func fail(vctx shapes.Context, comp *shapes.ComponentDescriptor, value term.Term, hasValue bool, message string) shapes.ComponentValidationResult {
	return shapes.Failed(vctx.WithComponent(comp.ID), shapes.Failure{
		FailedValueNode: value,
		HasValueNode:    hasValue,
		Message:         message,
	})
}
