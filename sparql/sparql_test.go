package sparql_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaclgo/shacl/sparql"
	"github.com/shaclgo/shacl/term"
)

func TestPreBindOnlyReplacesMentionedVariables(t *testing.T) {
	query := "ASK { $this ex:p ?value }"
	out := sparql.PreBind(query, map[string]term.Term{
		"this":         term.NewIRI("http://ex/a"),
		"currentShape": term.NewIRI("http://ex/S"), // not mentioned, must not appear
	})
	assert.Equal(t, "ASK { <http://ex/a> ex:p ?value }", out)
}

func TestPreBindDoesNotPartiallyMatchLongerNames(t *testing.T) {
	query := "ASK { $this ex:p $thisOther }"
	out := sparql.PreBind(query, map[string]term.Term{"this": term.NewIRI("http://ex/a")})
	assert.Equal(t, "ASK { <http://ex/a> ex:p $thisOther }", out)
}

func TestSubstitutePath(t *testing.T) {
	out := sparql.SubstitutePath("SELECT ?v WHERE { $this $PATH ?v }", "<http://ex/p>")
	assert.Equal(t, "SELECT ?v WHERE { $this <http://ex/p> ?v }", out)
}

func TestAssemblePrefixesRejectsConflicting(t *testing.T) {
	_, err := sparql.AssemblePrefixes(
		map[string]string{"ex": "http://a/"},
		map[string]string{"ex": "http://b/"},
	)
	require.Error(t, err)
}

func TestAssemblePrefixesMergesDistinctSources(t *testing.T) {
	merged, err := sparql.AssemblePrefixes(
		map[string]string{"ex": "http://a/"},
		map[string]string{"foo": "http://b/"},
	)
	require.NoError(t, err)
	assert.Equal(t, "http://a/", merged["ex"])
	assert.Equal(t, "http://b/", merged["foo"])
}

func TestCheckSafeRejectsValuesMinusService(t *testing.T) {
	for _, q := range []string{
		"SELECT ?v WHERE { VALUES ?v { 1 2 } }",
		"SELECT ?v WHERE { ?s ?p ?v MINUS { ?s a ?v } }",
		"SELECT ?v WHERE { SERVICE <http://ex/sparql> { ?s ?p ?v } }",
	} {
		err := sparql.CheckSafe(q, []string{"this"})
		require.Error(t, err, q)
	}
}

func TestCheckSafeRejectsHidingNestedSelect(t *testing.T) {
	q := "SELECT ?v WHERE { { SELECT ?v WHERE { ?s ?p ?v } } }"
	err := sparql.CheckSafe(q, []string{"this"})
	require.Error(t, err)
}

func TestCheckSafeAllowsProjectingNestedSelect(t *testing.T) {
	q := "SELECT ?v WHERE { { SELECT ?this ?v WHERE { $this ?p ?v } } }"
	err := sparql.CheckSafe(q, []string{"this"})
	assert.NoError(t, err)
}

func TestCheckSafeAllowsSimpleAsk(t *testing.T) {
	err := sparql.CheckSafe("ASK { $this ex:p ?value }", []string{"this"})
	assert.NoError(t, err)
}
