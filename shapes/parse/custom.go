package parse

import (
	"fmt"

	"github.com/shaclgo/shacl/shapes"
	"github.com/shaclgo/shacl/term"
	"github.com/shaclgo/shacl/vocab"
)

// discoverCustomComponents finds every sh:ConstraintComponent instance in
// the shapes graph, parses its declared parameters and validator bodies,
// and indexes it by every parameter path it declares so instance
// discovery (below) can recognise a shape that uses it.
func (p *parser) discoverCustomComponents() error {
	for _, subj := range p.idx.subjectsWithType(vocab.ConstraintComponent) {
		def := &shapes.CustomComponent{IRI: subj.Value()}
		for _, paramNode := range p.idx.objects(subj, vocab.Parameter) {
			pathTerm, ok := p.idx.object(paramNode, vocab.Path)
			if !ok {
				return &ParseError{Subject: subj.String(), Predicate: vocab.Parameter, Reason: "sh:parameter node missing sh:path"}
			}
			optional := p.boolOf(paramNode, vocab.Optional)
			def.Parameters = append(def.Parameters, shapes.CustomParameter{Path: pathTerm.Value(), Optional: optional})
			p.model.ParameterOwners[pathTerm.Value()] = append(p.model.ParameterOwners[pathTerm.Value()], def)
		}
		if v, ok := p.idx.object(subj, vocab.Validator); ok {
			cv, err := p.customValidator(v)
			if err != nil {
				return err
			}
			def.Validator = cv
		}
		if v, ok := p.idx.object(subj, vocab.NodeValidator); ok {
			cv, err := p.customValidator(v)
			if err != nil {
				return err
			}
			def.NodeValidator = cv
		}
		if v, ok := p.idx.object(subj, vocab.PropertyValidator); ok {
			cv, err := p.customValidator(v)
			if err != nil {
				return err
			}
			def.PropertyValidator = cv
		}
		p.model.CustomComponents[subj.Value()] = def
	}
	return nil
}

func (p *parser) customValidator(node term.Term) (*shapes.CustomValidator, error) {
	prefixes, err := p.prefixesOf(node)
	if err != nil {
		return nil, err
	}
	cv := &shapes.CustomValidator{Prefixes: prefixes}
	if ask, ok := p.idx.object(node, vocab.Ask); ok {
		cv.IsAsk = true
		cv.Query = ask.Value()
	} else if sel, ok := p.idx.object(node, vocab.Select); ok {
		cv.Query = sel.Value()
	} else {
		return nil, &ParseError{Subject: node.String(), Reason: "validator node carries neither sh:ask nor sh:select"}
	}
	cv.Message = p.idx.objects(node, vocab.Message)
	return cv, nil
}

// prefixesOf gathers a validator's own sh:prefixes declarations plus
// sh:declare triples attached to the nodes it references. Two
// declarations mapping the same prefix to different namespaces are a
// ParseError.
func (p *parser) prefixesOf(node term.Term) (map[string]string, error) {
	out := make(map[string]string)
	for _, ontologyNode := range p.idx.objects(node, vocab.Prefixes) {
		for _, decl := range p.idx.objects(ontologyNode, vocab.Declare) {
			prefix, hasPrefix := p.idx.object(decl, vocab.Prefix)
			ns, hasNS := p.idx.object(decl, vocab.Namespace)
			if hasPrefix && hasNS {
				if existing, ok := out[prefix.Value()]; ok && existing != ns.Value() {
					return nil, &ParseError{Subject: node.String(), Predicate: vocab.Prefixes,
						Reason: fmt.Sprintf("prefix %q maps to both %q and %q", prefix.Value(), existing, ns.Value())}
				}
				out[prefix.Value()] = ns.Value()
			}
		}
	}
	return out, nil
}

// scanCustomComponentInstances recognises custom component instances: a
// shape that carries any of a custom component's parameter predicates
// gets a Custom descriptor gathering every declared parameter/value pair
// present on that shape into ParamBindings.
func (p *parser) scanCustomComponentInstances(shapeTerm term.Term, out *[]shapes.ComponentDescriptor) error {
	matched := make(map[*shapes.CustomComponent]bool)
	for _, def := range p.model.CustomComponents {
		for _, param := range def.Parameters {
			if _, ok := p.idx.object(shapeTerm, param.Path); ok {
				matched[def] = true
				break
			}
		}
	}
	i := 0
	for def := range matched {
		bindings := make(map[string]term.Term)
		for _, param := range def.Parameters {
			if v, ok := p.idx.object(shapeTerm, param.Path); ok {
				bindings[param.Path] = v
			} else if !param.Optional {
				return &ParseError{Subject: shapeTerm.String(), Predicate: param.Path,
					Reason: fmt.Sprintf("missing required parameter of custom component %s", def.IRI)}
			}
		}
		c := p.newComponent(shapes.KindCustom, componentKey(shapeTerm, def.IRI, i))
		c.Custom = def
		c.ParamBindings = bindings
		*out = append(*out, *c)
		i++
	}
	return nil
}
