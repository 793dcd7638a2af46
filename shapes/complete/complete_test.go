package complete_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaclgo/shacl/ids"
	"github.com/shaclgo/shacl/shapes"
	"github.com/shaclgo/shacl/shapes/complete"
	"github.com/shaclgo/shacl/term"
)

func freshModel(t *testing.T) *shapes.Model {
	t.Helper()
	return shapes.NewModel("http://ex/shapes", "http://ex/data")
}

func TestRunAcceptsWellFormedModel(t *testing.T) {
	model := freshModel(t)
	psID := model.PropertyShapeIDs.Intern(term.NewIRI("http://ex/ps"))
	nsID := model.NodeShapeIDs.Intern(term.NewIRI("http://ex/ns"))

	model.PutPropertyShape(&shapes.PropertyShape{ID: psID})
	model.PutNodeShape(&shapes.NodeShape{ID: nsID, PropertyShapes: []ids.PropertyShapeID{psID}})

	require.NoError(t, complete.Run(model))
	assert.True(t, model.Frozen())
}

func TestRunRejectsDanglingPropertyShapeReference(t *testing.T) {
	model := freshModel(t)
	nsID := model.NodeShapeIDs.Intern(term.NewIRI("http://ex/ns"))
	ghostPsID := model.PropertyShapeIDs.Intern(term.NewIRI("http://ex/ghost"))

	model.PutNodeShape(&shapes.NodeShape{ID: nsID, PropertyShapes: []ids.PropertyShapeID{ghostPsID}})

	err := complete.Run(model)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dangling property shape reference")
	assert.False(t, model.Frozen())
}

func TestRunRejectsSelfReferentialNotComponent(t *testing.T) {
	model := freshModel(t)
	nsID := model.NodeShapeIDs.Intern(term.NewIRI("http://ex/ns"))
	compID := model.ComponentIDs.Intern(term.NewIRI("http://ex/ns-not"))

	model.PutComponent(&shapes.ComponentDescriptor{ID: compID, Kind: shapes.KindNot, Shape: nsID})
	model.PutNodeShape(&shapes.NodeShape{ID: nsID, Components: []ids.ComponentID{compID}})

	err := complete.Run(model)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "referencing itself directly")
}

func TestRunAllowsNodeComponentReferencingAnotherShape(t *testing.T) {
	model := freshModel(t)
	nsID := model.NodeShapeIDs.Intern(term.NewIRI("http://ex/ns"))
	otherID := model.NodeShapeIDs.Intern(term.NewIRI("http://ex/other"))
	compID := model.ComponentIDs.Intern(term.NewIRI("http://ex/ns-node"))

	model.PutComponent(&shapes.ComponentDescriptor{ID: compID, Kind: shapes.KindNode, Shape: otherID})
	model.PutNodeShape(&shapes.NodeShape{ID: nsID, Components: []ids.ComponentID{compID}})
	model.PutNodeShape(&shapes.NodeShape{ID: otherID})

	require.NoError(t, complete.Run(model))
}

func TestRunIsIdempotent(t *testing.T) {
	model := freshModel(t)
	require.NoError(t, complete.Run(model))
	require.NoError(t, complete.Run(model))
	assert.True(t, model.Frozen())
}
