// Package tagset holds registries of tag transforms consulted by the parser.
//
// When the parser closes a tag it looks up the tag's name, its first
// positional value, in the [Tagset] it was given.  If a [Tagdef] is
// registered under that name, the tag is replaced by whatever the Tagdef
// returns.
package tagset

import (
	"sync"

	"github.com/signadot/snow-format/go-snow/ir"
)

// Tagdef transforms a completed tag.  A nil result keeps the tag.
type Tagdef func(tag *ir.Node) (*ir.Node, error)

type entry struct {
	name *ir.Node
	def  Tagdef
}

// Tagset maps tag names, compared with [ir.Equal], to Tagdefs.  A nil
// *Tagset is an empty registry.  A Tagset may be shared by concurrent
// parses and registered into at the same time.
type Tagset struct {
	mu      sync.RWMutex
	buckets map[uint64][]entry
	order   []*ir.Node
}

func New() *Tagset {
	return &Tagset{buckets: map[uint64][]entry{}}
}

// Add registers def under a copy of name.  It returns false if name is nil
// or already registered.
func (ts *Tagset) Add(name *ir.Node, def Tagdef) bool {
	if name == nil || def == nil {
		return false
	}
	h := name.Hash()
	ts.mu.Lock()
	defer ts.mu.Unlock()
	for _, e := range ts.buckets[h] {
		if ir.Equal(e.name, name) {
			return false
		}
	}
	name = name.Clone()
	ts.buckets[h] = append(ts.buckets[h], entry{name: name, def: def})
	ts.order = append(ts.order, name)
	return true
}

func (ts *Tagset) AddString(name string, def Tagdef) bool {
	return ts.Add(ir.FromString(name), def)
}

// Get returns the Tagdef registered under name, or nil.
func (ts *Tagset) Get(name *ir.Node) Tagdef {
	if ts == nil || name == nil {
		return nil
	}
	h := name.Hash()
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	for _, e := range ts.buckets[h] {
		if ir.Equal(e.name, name) {
			return e.def
		}
	}
	return nil
}

// Names returns copies of the registered names in registration order.
func (ts *Tagset) Names() []*ir.Node {
	if ts == nil {
		return nil
	}
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	res := make([]*ir.Node, len(ts.order))
	for i, n := range ts.order {
		res[i] = n.Clone()
	}
	return res
}

func (ts *Tagset) Len() int {
	if ts == nil {
		return 0
	}
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return len(ts.order)
}
