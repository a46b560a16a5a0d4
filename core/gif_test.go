package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atopile/graphcore/core"
)

func TestGIF_FullName(t *testing.T) {
	root := core.NewNode(core.ModuleInterfaceType, "Module", nil)
	child := core.NewNode(core.ModuleInterfaceType, "Power", nil)
	require.NoError(t, root.AddChild("power", child))

	assert.Equal(t, "*.power.self", child.Self().FullName(false))
	assert.Equal(t, "*.power.self|Self", child.Self().FullName(true))
	assert.Equal(t, "*.power.parent|Hierarchical", child.ParentGIF().FullName(true))
}

func TestGIF_UplinkDownlinkClassification(t *testing.T) {
	parent := core.NewNode(core.ModuleInterfaceType, "Module", nil)
	child := core.NewNode(core.ModuleInterfaceType, "Module", nil)
	require.NoError(t, parent.AddChild("c", child))

	assert.True(t, core.IsUplink(child.ParentGIF(), parent.ChildrenGIF()))
	assert.False(t, core.IsUplink(parent.ChildrenGIF(), child.ParentGIF()))
	assert.True(t, core.IsDownlink(parent.ChildrenGIF(), child.ParentGIF()))
	assert.False(t, core.IsUplink(parent.Self(), child.ParentGIF()))
}

func TestGIF_ChildrenEnumeration(t *testing.T) {
	parent := core.NewNode(core.ModuleInterfaceType, "Module", nil)
	c1 := core.NewNode(core.ModuleInterfaceType, "Module", nil)
	c2 := core.NewNode(core.ModuleInterfaceType, "Module", nil)
	require.NoError(t, parent.AddChild("one", c1))
	require.NoError(t, parent.AddChild("two", c2))

	children, err := parent.ChildrenGIF().GetChildren()
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, "one", children[0].Name)
	assert.Same(t, c1.ParentGIF(), children[0].GIF)
	assert.Equal(t, "two", children[1].Name)

	_, err = parent.Self().GetChildren()
	assert.ErrorIs(t, err, core.ErrWrongKind)
}

func TestGIF_DisconnectParentDetaches(t *testing.T) {
	parent := core.NewNode(core.ModuleInterfaceType, "Module", nil)
	child := core.NewNode(core.ModuleInterfaceType, "Module", nil)
	require.NoError(t, parent.AddChild("c", child))

	require.NoError(t, child.DetachParent())
	assert.Equal(t, core.RootName, child.GetName())

	assert.ErrorIs(t, child.DetachParent(), core.ErrNodeNoParent)

	// a detached node can be re-attached under a new name
	require.NoError(t, parent.AddChild("again", child))
	assert.Equal(t, "again", child.GetName())
}
