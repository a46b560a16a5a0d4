package pathfinder_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atopile/graphcore/core"
	"github.com/atopile/graphcore/pathfinder"
)

// mif builds a module-interface fixture node. Most topology tests share
// one granular type so the same-end-type stage stays out of the way;
// tests exercising type matching construct their nodes directly.
func mif(granular string) *core.Node {
	return core.NewNode(core.ModuleInterfaceType, granular, nil)
}

func counterByName(t *testing.T, res *pathfinder.Result, name string) pathfinder.Counter {
	t.Helper()
	for _, c := range res.Counters {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("no counter named %q", name)
	return pathfinder.Counter{}
}

func TestFindPaths_DirectLink(t *testing.T) {
	a := mif("Module")
	b := mif("Module")
	require.NoError(t, a.Self().ConnectDirect(b.Self()))

	res, err := pathfinder.New().FindPaths(a, []*core.Node{b})
	require.NoError(t, err)

	require.Len(t, res.Paths, 1)
	p := res.Paths[0]
	assert.Equal(t, 2, p.Len())
	assert.Same(t, a.Self(), p.First())
	assert.Same(t, b.Self(), p.Last())
	assert.Equal(t, 1.0, p.Confidence())
}

func TestFindPaths_TrivialSelfQuery(t *testing.T) {
	a := mif("Module")
	b := mif("Module")
	require.NoError(t, a.Self().ConnectDirect(b.Self()))

	res, err := pathfinder.New().FindPaths(a, []*core.Node{a})
	require.NoError(t, err)

	require.Len(t, res.Paths, 1)
	assert.Equal(t, 1, res.Paths[0].Len())
	assert.Same(t, a.Self(), res.Paths[0].First())
}

func TestFindPaths_EmptyDestinationSet(t *testing.T) {
	a := mif("Module")

	res, err := pathfinder.New().FindPaths(a, nil)
	require.NoError(t, err)
	assert.Empty(t, res.Paths)
	assert.NotNil(t, res.Counters)
}

func TestFindPaths_RejectsNonModuleInterfaceEnds(t *testing.T) {
	trait := core.NewNode("Trait", "SomeTrait", nil)
	m := mif("Module")

	_, err := pathfinder.New().FindPaths(trait, []*core.Node{m})
	assert.ErrorIs(t, err, pathfinder.ErrSrcNotModuleInterface)

	res, err := pathfinder.New().FindPaths(m, []*core.Node{trait})
	assert.ErrorIs(t, err, pathfinder.ErrDstNotModuleInterface)
	assert.NotNil(t, res.Counters)
}

func TestFindPaths_SplitJoinTwoChildren(t *testing.T) {
	parent := mif("Module")
	c1 := mif("Module")
	c2 := mif("Module")
	x := mif("Module")

	require.NoError(t, parent.AddChild("c1", c1))
	require.NoError(t, parent.AddChild("c2", c2))
	require.NoError(t, x.Self().ConnectDirect(c1.Self()))
	require.NoError(t, x.Self().ConnectDirect(c2.Self()))

	// x reaches the parent only once both its branches have arrived at
	// the parent's self interface; the completing arrival is returned at
	// full confidence with its obligations discharged.
	res, err := pathfinder.New().FindPaths(x, []*core.Node{parent})
	require.NoError(t, err)

	require.Len(t, res.Paths, 1)
	p := res.Paths[0]
	assert.Equal(t, 1.0, p.Confidence())
	assert.False(t, p.NotComplete())
	assert.Empty(t, p.SplitStack())
	assert.Empty(t, p.UnresolvedStack())
	assert.Same(t, parent.Self(), p.Last())
}

func TestFindPaths_SplitJoinIncompleteBranchYieldsNothing(t *testing.T) {
	parent := mif("Module")
	c1 := mif("Module")
	c2 := mif("Module")
	x := mif("Module")

	require.NoError(t, parent.AddChild("c1", c1))
	require.NoError(t, parent.AddChild("c2", c2))
	// only one branch is reachable from x
	require.NoError(t, x.Self().ConnectDirect(c1.Self()))

	res, err := pathfinder.New().FindPaths(x, []*core.Node{parent})
	require.NoError(t, err)
	assert.Empty(t, res.Paths)
}

func TestFindPaths_SplitJoinDownward(t *testing.T) {
	parent := mif("Module")
	c1 := mif("Module")
	c2 := mif("Module")
	x := mif("Module")

	require.NoError(t, parent.AddChild("c1", c1))
	require.NoError(t, parent.AddChild("c2", c2))
	require.NoError(t, x.Self().ConnectDirect(c1.Self()))
	require.NoError(t, x.Self().ConnectDirect(c2.Self()))

	res, err := pathfinder.New().FindPaths(parent, []*core.Node{x})
	require.NoError(t, err)

	require.Len(t, res.Paths, 1)
	p := res.Paths[0]
	assert.Equal(t, 1.0, p.Confidence())
	assert.Empty(t, p.SplitStack())
	assert.Same(t, x.Self(), p.Last())
}

func TestFindPaths_HierarchyUpWithoutSplit(t *testing.T) {
	root := mif("Module")
	child := mif("Module")
	require.NoError(t, root.AddChild("only", child))

	// a single-child parent imposes no sibling obligation: the climb
	// completes on its own at full confidence.
	res, err := pathfinder.New().FindPaths(child, []*core.Node{root})
	require.NoError(t, err)

	require.Len(t, res.Paths, 1)
	assert.Equal(t, 1.0, res.Paths[0].Confidence())
}

func TestFindPaths_ConnectionAtParentLevelCarriesChildren(t *testing.T) {
	p1 := mif("Conn")
	p2 := mif("Conn")
	a1 := mif("Pin")
	a2 := mif("Pin")
	require.NoError(t, p1.AddChild("a", a1))
	require.NoError(t, p2.AddChild("a", a2))
	require.NoError(t, p1.Self().ConnectDirect(p2.Self()))

	// climbing out of a child named "a" and descending into the
	// same-typed "a" of the peer instance balances the hierarchy stack.
	res, err := pathfinder.New().FindPaths(a1, []*core.Node{a2})
	require.NoError(t, err)

	require.Len(t, res.Paths, 1)
	p := res.Paths[0]
	assert.Equal(t, 1.0, p.Confidence())
	assert.Empty(t, p.UnresolvedStack())
	assert.Same(t, a1.Self(), p.First())
	assert.Same(t, a2.Self(), p.Last())
}

func TestFindPaths_RejectsDeadEndSplitLateralMove(t *testing.T) {
	parent := mif("Module")
	c1 := mif("Module")
	c2 := mif("Module")
	require.NoError(t, parent.AddChild("c1", c1))
	require.NoError(t, parent.AddChild("c2", c2))

	// the only route from c1 to c2 climbs out of one child and straight
	// down into its sibling — the dead-end pattern.
	res, err := pathfinder.New().FindPaths(c1, []*core.Node{c2})
	require.NoError(t, err)
	assert.Empty(t, res.Paths)
}

func TestFindPaths_RejectsDifferentGranularEndType(t *testing.T) {
	r := mif("Resistor")
	c := mif("Capacitor")
	require.NoError(t, r.Self().ConnectDirect(c.Self()))

	res, err := pathfinder.New().FindPaths(r, []*core.Node{c})
	require.NoError(t, err)
	assert.Empty(t, res.Paths)
}

func TestFindPaths_ShallowLinkBlocksListedSourceType(t *testing.T) {
	s1 := mif("Sensor")
	s2 := mif("Sensor")
	t1 := mif("Timer")
	t2 := mif("Timer")
	m := mif("Module")

	shallow := core.NewDirectShallow([]string{"Sensor"})
	require.NoError(t, m.Self().Connect(s2.Self(), shallow))
	require.NoError(t, s1.Self().ConnectDirect(m.Self()))
	require.NoError(t, t1.Self().ConnectDirect(m.Self()))
	require.NoError(t, s2.Self().ConnectDirect(t2.Self()))

	// a Sensor-rooted path may not traverse the shallow link
	res, err := pathfinder.New().FindPaths(s1, []*core.Node{s2})
	require.NoError(t, err)
	assert.Empty(t, res.Paths)

	// a Timer-rooted path crosses the very same link
	res, err = pathfinder.New().FindPaths(t1, []*core.Node{t2})
	require.NoError(t, err)
	require.Len(t, res.Paths, 1)
	assert.Equal(t, 4, res.Paths[0].Len())
}

func TestFindPaths_UnrecoverableConditionalDropsExtensions(t *testing.T) {
	a := mif("Module")
	b := mif("Module")
	c := mif("Module")

	// passes the degenerate two-vertex check at bind time, fails for
	// every real extension through it
	longerThanEdge := func(p core.PathView) core.FilterResult {
		if p.Len() > 2 {
			return core.FailUnrecoverable
		}
		return core.Pass
	}
	require.NoError(t, a.Self().ConnectDirect(b.Self()))
	require.NoError(t, b.Self().Connect(c.Self(), core.NewDirectConditional(longerThanEdge, true)))

	res, err := pathfinder.New().FindPaths(a, []*core.Node{c})
	require.NoError(t, err)
	assert.Empty(t, res.Paths)

	cond := counterByName(t, res, "conditional link")
	assert.Less(t, cond.OutCount, cond.InCount)
}

func TestFindPaths_RecoverableConditionalAttenuates(t *testing.T) {
	a := mif("Module")
	b := mif("Module")
	c := mif("Module")

	soft := func(p core.PathView) core.FilterResult {
		if p.Len() > 2 {
			return core.FailRecoverable
		}
		return core.Pass
	}
	require.NoError(t, a.Self().ConnectDirect(b.Self()))
	require.NoError(t, b.Self().Connect(c.Self(), core.NewDirectConditional(soft, true)))

	res, err := pathfinder.New().FindPaths(a, []*core.Node{c})
	require.NoError(t, err)
	require.Len(t, res.Paths, 1)
	assert.Equal(t, 0.5, res.Paths[0].Confidence())
}

func TestFindPaths_NewWeakLimitStopsSplits(t *testing.T) {
	parent := mif("Module")
	c1 := mif("Module")
	c2 := mif("Module")
	x := mif("Module")
	require.NoError(t, parent.AddChild("c1", c1))
	require.NoError(t, parent.AddChild("c2", c2))
	require.NoError(t, x.Self().ConnectDirect(c1.Self()))
	require.NoError(t, x.Self().ConnectDirect(c2.Self()))

	// with the new-weak budget exhausted from the start, no split
	// obligation may be opened, so the join through the parent never
	// forms
	res, err := pathfinder.New().FindPaths(x, []*core.Node{parent}, pathfinder.WithNewWeakLimit(1))
	require.NoError(t, err)
	assert.Empty(t, res.Paths)
}

func TestFindPaths_OptionViolation(t *testing.T) {
	a := mif("Module")
	b := mif("Module")
	require.NoError(t, a.Self().ConnectDirect(b.Self()))

	_, err := pathfinder.New().FindPaths(a, []*core.Node{b}, pathfinder.WithAbsoluteLimit(-1))
	assert.ErrorIs(t, err, pathfinder.ErrOptionViolation)
}

func TestFindPaths_CanceledContext(t *testing.T) {
	a := mif("Module")
	b := mif("Module")
	require.NoError(t, a.Self().ConnectDirect(b.Self()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := pathfinder.New().FindPaths(a, []*core.Node{b}, pathfinder.WithContext(ctx))
	assert.ErrorIs(t, err, pathfinder.ErrCanceled)
	assert.NotNil(t, res.Counters)
}

func TestFindPaths_CountersAlwaysReported(t *testing.T) {
	a := mif("Module")
	b := mif("Module")
	require.NoError(t, a.Self().ConnectDirect(b.Self()))

	res, err := pathfinder.New().FindPaths(a, []*core.Node{b})
	require.NoError(t, err)

	require.NotEmpty(t, res.Counters)
	assert.Equal(t, "total", res.Counters[len(res.Counters)-1].Name)
	total := counterByName(t, res, "total")
	assert.Positive(t, total.InCount)
}

func TestFindPaths_FoundPathCanDeriveLink(t *testing.T) {
	a := mif("Module")
	b := mif("Module")
	require.NoError(t, a.Self().ConnectDirect(b.Self()))

	res, err := pathfinder.New().FindPaths(a, []*core.Node{b})
	require.NoError(t, err)
	require.Len(t, res.Paths, 1)

	// a found path is a valid PathView to synthesize a derived link from
	derived := core.NewDirectDerived(res.Paths[0])
	x := mif("Module")
	y := mif("Module")
	assert.NoError(t, x.Self().Connect(y.Self(), derived))
	assert.Equal(t, core.KindDirectDerived, derived.Kind())
}

func TestFindPaths_NoRepeatedVertices(t *testing.T) {
	a := mif("Module")
	b := mif("Module")
	c := mif("Module")
	require.NoError(t, a.Self().ConnectDirect(b.Self()))
	require.NoError(t, b.Self().ConnectDirect(c.Self()))
	require.NoError(t, c.Self().ConnectDirect(a.Self()))

	res, err := pathfinder.New().FindPaths(a, []*core.Node{c})
	require.NoError(t, err)

	for _, p := range res.Paths {
		seen := make(map[*core.GraphInterface]struct{})
		for _, v := range p.Vertices() {
			_, dup := seen[v]
			assert.False(t, dup, "vertex repeated in path")
			seen[v] = struct{}{}
		}
	}
}
