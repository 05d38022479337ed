package tagset

import (
	"fmt"
	"sync"
	"testing"

	"github.com/signadot/snow-format/go-snow/ir"
)

func keep(tag *ir.Node) (*ir.Node, error) { return nil, nil }

func TestAddGet(t *testing.T) {
	ts := New()
	if !ts.AddString("b", keep) {
		t.Fatal("first add failed")
	}
	if ts.Add(ir.FromQuoted("b", ir.DoubleQuote), keep) {
		t.Error("duplicate name accepted")
	}
	name := ir.NewTag(ir.FromString("x"))
	if !ts.Add(name, keep) {
		t.Fatal("tag name rejected")
	}
	name.Values[0].String = "y"
	if ts.Get(ir.NewTag(ir.FromString("x"))) == nil {
		t.Error("registry does not own its names")
	}
	if ts.Get(ir.FromString("c")) != nil {
		t.Error("unregistered name found")
	}
	if ts.Get(nil) != nil {
		t.Error("nil name found")
	}
	if ts.Len() != 2 {
		t.Errorf("len %d", ts.Len())
	}
	names := ts.Names()
	if len(names) != 2 || names[0].String != "b" {
		t.Errorf("names %v", names)
	}
}

func TestNilTagset(t *testing.T) {
	var ts *Tagset
	if ts.Get(ir.FromString("a")) != nil || ts.Len() != 0 || ts.Names() != nil {
		t.Error("nil tagset not empty")
	}
}

func TestConcurrent(t *testing.T) {
	ts := New()
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 50 {
				name := fmt.Sprintf("t%d-%d", i, j)
				ts.AddString(name, keep)
				if ts.Get(ir.FromString(name)) == nil {
					t.Errorf("%s not found", name)
				}
			}
		}()
	}
	wg.Wait()
	if ts.Len() != 400 {
		t.Errorf("len %d", ts.Len())
	}
}
