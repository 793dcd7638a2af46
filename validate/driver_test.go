package validate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaclgo/shacl/ids"
	"github.com/shaclgo/shacl/path"
	"github.com/shaclgo/shacl/shapes"
	"github.com/shaclgo/shacl/store"
	"github.com/shaclgo/shacl/term"
	"github.com/shaclgo/shacl/validate"
)

const (
	dataGraph = "http://ex/data"
	exPerson  = "http://ex/Person"
	exName    = "http://ex/name"
)

func newFixtureStore(t *testing.T, quads ...store.Quad) store.Store {
	t.Helper()
	ctx := context.Background()
	mem := store.NewMemory()
	require.NoError(t, mem.AddGraph(ctx, dataGraph, quads))
	return mem
}

// buildModel assembles a shapes.Model with a single node shape targeting
// alice, owning one property shape over ex:name constrained by MinCount(1).
func buildModel(t *testing.T, minCount int) (*shapes.Model, ids.NodeShapeID, ids.PropertyShapeID) {
	t.Helper()
	model := shapes.NewModel("http://ex/shapes", dataGraph)

	nsID := model.NodeShapeIDs.Intern(term.NewIRI(exPerson))
	psID := model.PropertyShapeIDs.Intern(term.NewIRI(exPerson + "-name"))
	compID := model.ComponentIDs.Intern(term.NewIRI(exPerson + "-name-minCount"))

	model.PutComponent(&shapes.ComponentDescriptor{ID: compID, Kind: shapes.KindMinCount, Count: minCount})
	model.PutPropertyShape(&shapes.PropertyShape{
		ID:         psID,
		Path:       path.Simple{IRI: exName},
		Components: []ids.ComponentID{compID},
	})
	model.PutNodeShape(&shapes.NodeShape{
		ID:             nsID,
		Targets:        []shapes.Target{shapes.NewNodeTarget(term.NewIRI("http://ex/alice"))},
		PropertyShapes: []ids.PropertyShapeID{psID},
	})

	require.NoError(t, model.Freeze())
	return model, nsID, psID
}

func TestDriverValidatePasses(t *testing.T) {
	model, _, _ := buildModel(t, 1)
	st := newFixtureStore(t, store.Quad{
		Subject: term.NewIRI("http://ex/alice"), Predicate: term.NewIRI(exName),
		Object: term.NewLiteral("Alice", ""), Graph: dataGraph,
	})

	driver := validate.NewDriver(st, model, nil)
	results, err := driver.Validate(context.Background())
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestDriverValidateReportsMinCountFailure(t *testing.T) {
	model, _, _ := buildModel(t, 1)
	st := newFixtureStore(t) // alice has no ex:name triple at all

	driver := validate.NewDriver(st, model, nil)
	results, err := driver.Validate(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, shapes.SeverityViolation, results[0].Severity)
	assert.Equal(t, "http://ex/alice", results[0].Context.FocusNode.Value())
}

func TestDriverSkipsDeactivatedShape(t *testing.T) {
	model, nsID, _ := buildModel(t, 1)
	ns, _ := model.NodeShape(nsID)
	ns.Deactivated = true

	st := newFixtureStore(t)
	driver := validate.NewDriver(st, model, nil)
	results, err := driver.Validate(context.Background())
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestDriverAppliesShapeMessageOverride(t *testing.T) {
	model, _, psID := buildModel(t, 1)
	ps, _ := model.PropertyShape(psID)
	ps.Messages = []term.Term{term.NewLiteral("alice must have a name", "")}

	st := newFixtureStore(t)
	driver := validate.NewDriver(st, model, nil)
	results, err := driver.Validate(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "alice must have a name", results[0].Failure.Message)
}
