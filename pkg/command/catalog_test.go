package command

import "testing"

func TestCatalogLookupUnknown(t *testing.T) {
	c := NewCatalog()
	if _, err := c.Lookup("nosuchcommand"); err == nil {
		t.Error("expected an error for an unregistered name")
	}
}

func TestCatalogIncrDecrAreDistinctDescriptors(t *testing.T) {
	c := NewCatalog()
	incr, err := c.Lookup("incr")
	if err != nil {
		t.Fatalf("lookup incr: %v", err)
	}
	decr, err := c.Lookup("decr")
	if err != nil {
		t.Fatalf("lookup decr: %v", err)
	}
	if incr == decr {
		t.Fatal("incr and decr must not share a descriptor")
	}
	if incr.Verb == decr.Verb {
		t.Errorf("incr and decr must carry different verbs, both got %q", incr.Verb)
	}
}

func TestCatalogAliasesShareDescriptor(t *testing.T) {
	c := NewCatalog()
	setnx, _ := c.Lookup("setnx")
	preserve, err := c.Lookup("setPreserve")
	if err != nil {
		t.Fatalf("lookup setPreserve: %v", err)
	}
	if setnx != preserve {
		t.Error("setPreserve should alias the same descriptor as setnx")
	}
}

func TestCatalogRegisterOverridesBuiltin(t *testing.T) {
	c := NewCatalog()
	custom := &Descriptor{Verb: "GET", Encoding: MultiBulk, Shaper: ShapeBulkString, Shardable: true}
	c.Register("get", custom)
	got, err := c.Lookup("get")
	if err != nil {
		t.Fatalf("lookup get: %v", err)
	}
	if got != custom {
		t.Error("Register should overwrite an existing name")
	}
}

func TestSortArgFilter(t *testing.T) {
	opts := &SortOptions{By: "weight_*", HasLimit: true, Offset: 0, Count: 10, Order: "DESC", Alpha: true}
	flattened := BuildArgs([]interface{}{opts.ToPairs()})
	args := append([][]byte{[]byte("mylist")}, flattened...)
	got := SortArgFilter(args)
	want := []string{"mylist", "BY", "weight_*", "LIMIT", "0", "10", "DESC", "ALPHA"}
	if len(got) != len(want) {
		t.Fatalf("got %d args %q, want %d args %q", len(got), got, len(want), want)
	}
	for i := range want {
		if string(got[i]) != want[i] {
			t.Errorf("arg %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSlaveofFilterNoArgs(t *testing.T) {
	got := SlaveofFilter(nil)
	if len(got) != 2 || string(got[0]) != "NO" || string(got[1]) != "ONE" {
		t.Errorf("expected [NO ONE], got %q", got)
	}
}
