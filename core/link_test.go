package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atopile/graphcore/core"
)

func TestParent_RejectsNonHierarchical(t *testing.T) {
	a := core.NewSelfGIF()
	b := core.NewSelfGIF()

	err := a.Connect(b, core.NewParent())
	assert.ErrorIs(t, err, core.ErrInvalidHierarchy)
}

func TestParent_RejectsSameSidedPair(t *testing.T) {
	a := core.NewHierarchicalGIF(true)
	b := core.NewHierarchicalGIF(true)

	err := a.Connect(b, core.NewParent())
	assert.ErrorIs(t, err, core.ErrInvalidHierarchy)
}

func TestNamedParent_RejectsEmptyName(t *testing.T) {
	parent := core.NewHierarchicalGIF(true)
	child := core.NewHierarchicalGIF(false)

	err := parent.Connect(child, core.NewNamedParent(""))
	assert.ErrorIs(t, err, core.ErrEmptyChildName)
}

func TestPointer_RequiresSelfEndpoint(t *testing.T) {
	a := core.NewHierarchicalGIF(true)
	b := core.NewHierarchicalGIF(false)

	err := a.Connect(b, core.NewPointer())
	assert.ErrorIs(t, err, core.ErrInvalidPointer)
}

func TestSibling_RequiresSameOwningNode(t *testing.T) {
	a := core.NewNode(core.ModuleInterfaceType, "Module", nil)
	b := core.NewNode(core.ModuleInterfaceType, "Module", nil)

	err := a.Self().Connect(b.ParentGIF(), core.NewSibling())
	assert.ErrorIs(t, err, core.ErrInvalidSibling)

	orphan := core.NewSelfGIF()
	err = orphan.Connect(core.NewSelfGIF(), core.NewSibling())
	assert.ErrorIs(t, err, core.ErrInvalidSibling)
}

func TestSibling_WiredAtNodeConstruction(t *testing.T) {
	n := core.NewNode(core.ModuleInterfaceType, "Module", nil)

	link, ok := n.Self().IsConnected(n.ParentGIF())
	require.True(t, ok)
	assert.Equal(t, core.KindSibling, link.Kind())

	link, ok = n.Self().IsConnected(n.ChildrenGIF())
	require.True(t, ok)
	assert.Equal(t, core.KindSibling, link.Kind())
}

func TestPointer_ResolvesReference(t *testing.T) {
	self := core.NewSelfGIF()
	ref := core.NewReferenceGIF("ref")

	require.NoError(t, ref.Connect(self, core.NewPointer()))

	resolved, err := ref.GetReferencedGIF()
	require.NoError(t, err)
	assert.Same(t, self, resolved)
}

func TestReference_UnboundBeforeConnect(t *testing.T) {
	ref := core.NewReferenceGIF("ref")
	_, err := ref.GetReferencedGIF()
	assert.ErrorIs(t, err, core.ErrUnboundReference)
}

func TestLink_CannotSetupTwice(t *testing.T) {
	a := core.NewSelfGIF()
	b := core.NewSelfGIF()
	link := core.NewDirect()

	require.NoError(t, a.Connect(b, link))
	err := link.SetConnections(a, b)
	assert.ErrorIs(t, err, core.ErrLinkAlreadyBound)
}

func TestDirectConditional_UnrecoverableRejectsAtBindTime(t *testing.T) {
	a := core.NewSelfGIF()
	b := core.NewSelfGIF()

	always := func(core.PathView) core.FilterResult { return core.FailUnrecoverable }
	err := a.Connect(b, core.NewDirectConditional(always, true))
	assert.ErrorIs(t, err, core.ErrLinkFiltered)
}

func TestDirectConditional_PassAdmitsLink(t *testing.T) {
	a := core.NewSelfGIF()
	b := core.NewSelfGIF()

	always := func(core.PathView) core.FilterResult { return core.Pass }
	err := a.Connect(b, core.NewDirectConditional(always, true))
	assert.NoError(t, err)
}

// pathStub adapts a vertex slice to core.PathView for predicate tests.
type pathStub []*core.GraphInterface

func (p pathStub) Len() int                           { return len(p) }
func (p pathStub) At(i int) *core.GraphInterface      { return p[i] }
func (p pathStub) First() *core.GraphInterface        { return p[0] }
func (p pathStub) Last() *core.GraphInterface         { return p[len(p)-1] }
func (p pathStub) Contains(g *core.GraphInterface) bool {
	for _, v := range p {
		if v == g {
			return true
		}
	}
	return false
}

func TestDirectDerived_ConjoinsConditionalsAlongPath(t *testing.T) {
	a := core.NewSelfGIF()
	b := core.NewSelfGIF()
	c := core.NewSelfGIF()

	// both pass the degenerate two-vertex check at bind time and only
	// show their verdicts on longer paths
	soft := func(p core.PathView) core.FilterResult {
		if p.Len() > 2 {
			return core.FailRecoverable
		}
		return core.Pass
	}
	hard := func(p core.PathView) core.FilterResult {
		if p.Len() > 3 {
			return core.FailUnrecoverable
		}
		return core.Pass
	}
	require.NoError(t, a.Connect(b, core.NewDirectConditional(soft, false)))
	require.NoError(t, b.Connect(c, core.NewDirectConditional(hard, true)))

	derived := core.NewDirectDerived(pathStub{a, b, c})
	// first-only is the AND of the collected links' hints
	assert.False(t, derived.FirstOnly())

	filter := derived.Filter()
	assert.Equal(t, core.Pass, filter(pathStub{a, b}))
	assert.Equal(t, core.FailRecoverable, filter(pathStub{a, b, c}))

	d := core.NewSelfGIF()
	assert.Equal(t, core.FailUnrecoverable, filter(pathStub{a, b, c, d}))
}

func TestDirectShallow_RejectsExcludedGranularType(t *testing.T) {
	root := core.NewNode(core.ModuleInterfaceType, "Resistor", nil)
	other := core.NewSelfGIF()

	link := core.NewDirectShallow([]string{"Resistor"})
	err := root.Self().Connect(other, link)
	assert.ErrorIs(t, err, core.ErrLinkFiltered)
}
