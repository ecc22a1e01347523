package embryogen

import "testing"

func TestStringsDictionaryRegisterAndTranslate(t *testing.T) {
	d := NewStringsDictionary()
	h := d.RegisterThisString("NucleusAgent")

	s, ok := d.TranslateIDToString(h)
	if !ok || s != "NucleusAgent" {
		t.Fatalf("expected to resolve freshly registered string, got %q ok=%v", s, ok)
	}

	pending := d.NewEntriesToBroadcast()
	if len(pending) != 1 {
		t.Fatalf("expected 1 pending entry, got %d", len(pending))
	}

	d.MarkAllWasBroadcast()
	if len(d.NewEntriesToBroadcast()) != 0 {
		t.Error("expected no pending entries after MarkAllWasBroadcast")
	}
	if _, ok := d.known[h]; !ok {
		t.Error("expected entry to move into known after broadcast")
	}
}

func TestStringsDictionaryEnlistRejectsCollision(t *testing.T) {
	d := NewStringsDictionary()
	d.known[42] = "alpha"

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected EnlistTheIncomingItem to panic on hash collision")
		}
	}()
	d.EnlistTheIncomingItem(42, "beta")
}

func TestStringsDictionaryCleanUp(t *testing.T) {
	d := NewStringsDictionary()
	hReferenced := d.RegisterThisString("x")
	hStale := d.RegisterThisString("y")
	d.MarkAllWasBroadcast()

	d.CleanUp([]NamedAABB{{AgentTypeID: hReferenced}})

	if _, ok := d.known[hReferenced]; !ok {
		t.Error("expected hash still referenced by an AABB to survive CleanUp")
	}
	if _, ok := d.known[hStale]; ok {
		t.Error("expected hash with no referencing AABB to be pruned by CleanUp")
	}
}
