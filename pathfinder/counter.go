// File: counter.go
// Role: per-filter cost attribution. Every pipeline stage carries a
// Counter so callers can see where paths were spent even when a query
// returns nothing.
package pathfinder

import "time"

// Counter instruments one stage of the filter pipeline: how many paths
// entered, how many survived, and how their strength changed crossing
// the stage.
type Counter struct {
	Name        string
	InCount     int           // paths presented to this stage
	OutCount    int           // paths that survived it
	WeakInCount int           // of those presented, how many arrived weak
	OutWeaker   int           // survivors whose confidence dropped in this stage
	OutStronger int           // survivors whose confidence rose in this stage
	TimeSpent   time.Duration // cumulative wall time spent in this stage
}

// exec runs fn against p under this counter's bookkeeping and returns
// fn's verdict.
func (c *Counter) exec(p *Path, fn func() bool) bool {
	c.InCount++
	if !p.Strong() {
		c.WeakInCount++
	}
	before := p.confidence
	start := time.Now()
	res := fn()
	c.TimeSpent += time.Since(start)
	if !res {
		return false
	}
	c.OutCount++
	if p.confidence < before {
		c.OutWeaker++
	} else if p.confidence > before {
		c.OutStronger++
	}
	return true
}
