package embryogen

import "hash/fnv"

// StringsDictionary is a hash<->string map that lets agent type names and
// other repeated strings be referenced by a cheap uint64 hash instead of the
// string itself. FrontOfficer does not hold one; ShadowAgent carries its
// TypeName directly, and nothing in the round driver broadcasts dictionary
// entries. Grounded on
// original_source/util/strings.hpp's StringsDictionary, split (as the
// original is) into entries already known to every peer and entries newly
// registered locally and not yet broadcast.
type StringsDictionary struct {
	known map[uint64]string
	fresh map[uint64]string
}

func NewStringsDictionary() *StringsDictionary {
	return &StringsDictionary{
		known: make(map[uint64]string),
		fresh: make(map[uint64]string),
	}
}

func hashString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// RegisterThisString hashes s, recording it in the "not yet broadcast" half
// of the dictionary unless it is already known, and returns the hash the
// caller should use to refer to s from now on.
func (d *StringsDictionary) RegisterThisString(s string) uint64 {
	h := hashString(s)
	if _, ok := d.known[h]; ok {
		return h
	}
	d.fresh[h] = s
	return h
}

// TranslateIDToString resolves a hash back to its string, searching the
// known dictionary first (the common case) and falling back to the not-yet-
// broadcast half.
func (d *StringsDictionary) TranslateIDToString(id uint64) (string, bool) {
	if s, ok := d.known[id]; ok {
		return s, true
	}
	s, ok := d.fresh[id]
	return s, ok
}

// NewEntriesToBroadcast returns the hash/string pairs registered locally
// since the last MarkAllWasBroadcast, for the Director to fan out to every
// FrontOfficer.
func (d *StringsDictionary) NewEntriesToBroadcast() map[uint64]string {
	out := make(map[uint64]string, len(d.fresh))
	for h, s := range d.fresh {
		out[h] = s
	}
	return out
}

// MarkAllWasBroadcast moves every pending entry into the known half once the
// caller has confirmed the broadcast reached its peers.
func (d *StringsDictionary) MarkAllWasBroadcast() {
	for h, s := range d.fresh {
		d.known[h] = s
	}
	d.fresh = make(map[uint64]string)
}

// EnlistTheIncomingItem merges one hash/string pair received from a peer
// broadcast into the known dictionary. A hash collision against an existing,
// different string is an InvariantError: the dictionary promises a hash
// identifies exactly one string for the run's lifetime.
func (d *StringsDictionary) EnlistTheIncomingItem(id uint64, s string) {
	if existing, ok := d.known[id]; ok {
		if existing != s {
			Invariantf("StringsDictionary.EnlistTheIncomingItem", "hash %d already maps to %q, got conflicting %q", id, existing, s)
		}
		return
	}
	if existing, ok := d.fresh[id]; ok && existing != s {
		Invariantf("StringsDictionary.EnlistTheIncomingItem", "hash %d already maps to %q, got conflicting %q", id, existing, s)
	}
	d.known[id] = s
}

// CleanUp retires from the known dictionary every hash not referenced by
// AgentTypeID on any of currentAABBs, per original_source's
// StringsDictionary::cleanUp(currentAABBs). Entries still referenced survive
// so a live agent's type name stays resolvable; fresh (not-yet-broadcast)
// entries are never pruned here since they have not had a chance to be
// referenced by a published AABB yet.
func (d *StringsDictionary) CleanUp(currentAABBs []NamedAABB) {
	referenced := make(map[uint64]struct{}, len(currentAABBs))
	for _, n := range currentAABBs {
		referenced[n.AgentTypeID] = struct{}{}
	}
	for h := range d.known {
		if _, ok := referenced[h]; !ok {
			delete(d.known, h)
		}
	}
}
