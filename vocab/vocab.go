// Package vocab collects the IRI constants for the RDF, RDFS, XSD, and SHACL
// vocabularies the engine recognises. Grouping them here keeps every other
// package free of inline string literals for well-known terms.
package vocab

// RDF namespace.
const (
	RDFType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
	RDFFirst = "http://www.w3.org/1999/02/22-rdf-syntax-ns#first"
	RDFRest  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#rest"
	RDFNil   = "http://www.w3.org/1999/02/22-rdf-syntax-ns#nil"
	RDFLangString = "http://www.w3.org/1999/02/22-rdf-syntax-ns#langString"
)

// RDFS namespace.
const (
	RDFSSubClassOf = "http://www.w3.org/2000/01/rdf-schema#subClassOf"
)

// XSD namespace (the subset the engine compares/validates against).
const (
	XSDString   = "http://www.w3.org/2001/XMLSchema#string"
	XSDBoolean  = "http://www.w3.org/2001/XMLSchema#boolean"
	XSDInteger  = "http://www.w3.org/2001/XMLSchema#integer"
	XSDDecimal  = "http://www.w3.org/2001/XMLSchema#decimal"
	XSDDouble   = "http://www.w3.org/2001/XMLSchema#double"
	XSDFloat    = "http://www.w3.org/2001/XMLSchema#float"
	XSDDate     = "http://www.w3.org/2001/XMLSchema#date"
	XSDDateTime = "http://www.w3.org/2001/XMLSchema#dateTime"
	XSDAnyURI   = "http://www.w3.org/2001/XMLSchema#anyURI"
)

// SH namespace — shapes-graph input vocabulary.
const (
	NS = "http://www.w3.org/ns/shacl#"

	NodeShape     = NS + "NodeShape"
	PropertyShape = NS + "PropertyShape"

	Property = NS + "property"
	Path     = NS + "path"

	TargetClass       = NS + "targetClass"
	TargetNode        = NS + "targetNode"
	TargetSubjectsOf  = NS + "targetSubjectsOf"
	TargetObjectsOf   = NS + "targetObjectsOf"

	Deactivated = NS + "deactivated"
	Severity    = NS + "severity"
	Message     = NS + "message"

	SeverityInfo      = NS + "Info"
	SeverityWarning   = NS + "Warning"
	SeverityViolation = NS + "Violation"

	// Path operators.
	InversePath     = NS + "inversePath"
	AlternativePath = NS + "alternativePath"
	ZeroOrMorePath  = NS + "zeroOrMorePath"
	OneOrMorePath   = NS + "oneOrMorePath"
	ZeroOrOnePath   = NS + "zeroOrOnePath"

	// Cardinality.
	MinCount = NS + "minCount"
	MaxCount = NS + "maxCount"

	// Value range.
	MinExclusive = NS + "minExclusive"
	MaxExclusive = NS + "maxExclusive"
	MinInclusive = NS + "minInclusive"
	MaxInclusive = NS + "maxInclusive"

	// String-based.
	MinLength   = NS + "minLength"
	MaxLength   = NS + "maxLength"
	Pattern     = NS + "pattern"
	Flags       = NS + "flags"
	LanguageIn  = NS + "languageIn"
	UniqueLang  = NS + "uniqueLang"

	// Property pair.
	Equals           = NS + "equals"
	Disjoint         = NS + "disjoint"
	LessThan         = NS + "lessThan"
	LessThanOrEquals = NS + "lessThanOrEquals"

	// Value.
	HasValue = NS + "hasValue"
	In       = NS + "in"
	Class    = NS + "class"
	Datatype = NS + "datatype"
	NodeKind = NS + "nodeKind"

	// NodeKind individuals.
	IRI            = NS + "IRI"
	BlankNode      = NS + "BlankNode"
	Literal        = NS + "Literal"
	BlankNodeOrIRI = NS + "BlankNodeOrIRI"
	BlankNodeOrLiteral = NS + "BlankNodeOrLiteral"
	IRIOrLiteral   = NS + "IRIOrLiteral"

	// Logical.
	Not  = NS + "not"
	And  = NS + "and"
	Or   = NS + "or"
	Xone = NS + "xone"

	// Shape-based.
	Node                       = NS + "node"
	QualifiedValueShape        = NS + "qualifiedValueShape"
	QualifiedMinCount          = NS + "qualifiedMinCount"
	QualifiedMaxCount          = NS + "qualifiedMaxCount"
	QualifiedValueShapesDisjoint = NS + "qualifiedValueShapesDisjoint"

	// Closed.
	Closed            = NS + "closed"
	IgnoredProperties = NS + "ignoredProperties"

	// SPARQL extension vocabulary.
	Sparql              = NS + "sparql"
	SPARQLConstraint    = NS + "SPARQLConstraint"
	ConstraintComponent = NS + "ConstraintComponent"
	Parameter           = NS + "parameter"
	Optional            = NS + "optional"
	Select              = NS + "select"
	Ask                 = NS + "ask"
	Validator           = NS + "validator"
	NodeValidator       = NS + "nodeValidator"
	PropertyValidator   = NS + "propertyValidator"
	Prefixes            = NS + "prefixes"
	Declare             = NS + "declare"
	Prefix              = NS + "prefix"
	Namespace           = NS + "namespace"

	// SHACL-AF rules vocabulary (modeled, never executed — see SPEC_FULL §7).
	Rule              = NS + "rule"
	TripleRule        = NS + "TripleRule"
	SPARQLRule        = NS + "SPARQLRule"
	Subject           = NS + "subject"
	Predicate         = NS + "predicate"
	Object            = NS + "object"
	Construct         = NS + "construct"

	// Report vocabulary (output).
	ValidationReport    = NS + "ValidationReport"
	Conforms            = NS + "conforms"
	Result              = NS + "result"
	ValidationResult    = NS + "ValidationResult"
	FocusNode           = NS + "focusNode"
	ResultPath          = NS + "resultPath"
	ResultMessage       = NS + "resultMessage"
	ResultSeverity      = NS + "resultSeverity"
	SourceShape         = NS + "sourceShape"
	SourceConstraintComponent = NS + "sourceConstraintComponent"
	Value               = NS + "value"

	// Component-IRI identifiers used for sh:sourceConstraintComponent.
	MinCountConstraintComponent          = NS + "MinCountConstraintComponent"
	MaxCountConstraintComponent          = NS + "MaxCountConstraintComponent"
	MinExclusiveConstraintComponent      = NS + "MinExclusiveConstraintComponent"
	MaxExclusiveConstraintComponent      = NS + "MaxExclusiveConstraintComponent"
	MinInclusiveConstraintComponent      = NS + "MinInclusiveConstraintComponent"
	MaxInclusiveConstraintComponent      = NS + "MaxInclusiveConstraintComponent"
	MinLengthConstraintComponent         = NS + "MinLengthConstraintComponent"
	MaxLengthConstraintComponent         = NS + "MaxLengthConstraintComponent"
	PatternConstraintComponent           = NS + "PatternConstraintComponent"
	LanguageInConstraintComponent        = NS + "LanguageInConstraintComponent"
	UniqueLangConstraintComponent        = NS + "UniqueLangConstraintComponent"
	EqualsConstraintComponent            = NS + "EqualsConstraintComponent"
	DisjointConstraintComponent          = NS + "DisjointConstraintComponent"
	LessThanConstraintComponent          = NS + "LessThanConstraintComponent"
	LessThanOrEqualsConstraintComponent  = NS + "LessThanOrEqualsConstraintComponent"
	HasValueConstraintComponent          = NS + "HasValueConstraintComponent"
	InConstraintComponent                = NS + "InConstraintComponent"
	ClassConstraintComponent             = NS + "ClassConstraintComponent"
	DatatypeConstraintComponent          = NS + "DatatypeConstraintComponent"
	NodeKindConstraintComponent          = NS + "NodeKindConstraintComponent"
	NotConstraintComponent               = NS + "NotConstraintComponent"
	AndConstraintComponent               = NS + "AndConstraintComponent"
	OrConstraintComponent                = NS + "OrConstraintComponent"
	XoneConstraintComponent              = NS + "XoneConstraintComponent"
	NodeConstraintComponent              = NS + "NodeConstraintComponent"
	PropertyConstraintComponent          = NS + "PropertyConstraintComponent"
	QualifiedValueShapeConstraintComponent = NS + "QualifiedValueShapeConstraintComponent"
	ClosedConstraintComponent            = NS + "ClosedConstraintComponent"
	SPARQLConstraintComponent            = NS + "SPARQLConstraintComponent"
)
