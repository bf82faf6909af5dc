package slot

import (
	"strings"
	"sync"
)

// Direction selects the axis of a bipartition: Horizontal divides a slot
// into a lower-Y and upper-Y half (the way SLRs stack on a multi-die
// device); Vertical divides into a lower-X and upper-X half.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	if d == Horizontal {
		return "H"
	}
	return "V"
}

// ManagerOption configures a Manager at construction time.
type ManagerOption func(*Manager)

// Manager owns the root slot of a device/region and derives + caches leaf
// slots for a given sequence of bipartition directions.
//
// Manager is safe for concurrent read access once constructed: leaf
// derivation is cached behind a read-write lock the way core.Graph guards
// its adjacency state, even though the partitioning core itself is
// single-threaded (outer callers may share one Manager across goroutines
// when recursively refining sibling regions in parallel).
type Manager struct {
	mu   sync.RWMutex
	root *Slot

	// leaves caches GetLeafSlotsAfterPartition results keyed by the
	// partition order (encoded as a string of 'H'/'V' characters), so a
	// repeated call with the same order is O(1) after the first.
	leaves map[string][]*Slot
}

// NewManager returns a Manager rooted at root.
func NewManager(root *Slot, opts ...ManagerOption) *Manager {
	m := &Manager{root: root, leaves: make(map[string][]*Slot)}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Root returns the device's root slot.
func (m *Manager) Root() *Slot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.root
}

// orderKey encodes a partition order into a cache key.
func orderKey(order []Direction) string {
	var sb strings.Builder
	sb.Grow(len(order))
	for _, d := range order {
		sb.WriteString(d.String())
	}
	return sb.String()
}

// GetLeafSlotsAfterPartition returns the leaves produced by applying each
// split direction in order, starting from the root. The result is in
// canonical bit-major order: for order [H,H] the leaves are
// [L(y1=0,y2=0), L(y1=0,y2=1), L(y1=1,y2=0), L(y1=1,y2=1)]; for three
// splits the eight leaves enumerate (y1,y2,y3) in binary-counting order.
// Results are cached per distinct order.
func (m *Manager) GetLeafSlotsAfterPartition(order []Direction) ([]*Slot, error) {
	key := orderKey(order)

	m.mu.RLock()
	if cached, ok := m.leaves[key]; ok {
		m.mu.RUnlock()
		return cached, nil
	}
	m.mu.RUnlock()

	leaves := []*Slot{m.root}
	for _, dir := range order {
		next := make([]*Slot, 0, len(leaves)*2)
		for _, s := range leaves {
			lo, hi, err := bipartition(s, dir)
			if err != nil {
				return nil, err
			}
			next = append(next, lo, hi)
		}
		leaves = next
	}

	m.mu.Lock()
	m.leaves[key] = leaves
	m.mu.Unlock()

	return leaves, nil
}

// bipartition splits s in half along dir, returning the y=0 (lower
// coordinate) half first and the y=1 (upper coordinate) half second.
// Capacity is divided so that lo+hi reconstitutes s's capacity exactly
// (lo takes the floor, hi absorbs the remainder per resource).
func bipartition(s *Slot, dir Direction) (lo, hi *Slot, err error) {
	loCap := make(ResourceVector, len(RESOURCE_TYPES))
	hiCap := make(ResourceVector, len(RESOURCE_TYPES))
	for _, r := range RESOURCE_TYPES {
		total := s.capacity.Get(r)
		half := total / 2
		loCap[r] = half
		hiCap[r] = total - half
	}

	switch dir {
	case Horizontal:
		if s.urY-s.dlY < 2 {
			return nil, nil, ErrNotBipartitionable
		}
		mid := s.dlY + (s.urY-s.dlY)/2
		lo, err = New(s.dlX, s.dlY, s.urX, mid, loCap)
		if err != nil {
			return nil, nil, err
		}
		hi, err = New(s.dlX, mid, s.urX, s.urY, hiCap)
		if err != nil {
			return nil, nil, err
		}
	case Vertical:
		if s.urX-s.dlX < 2 {
			return nil, nil, ErrNotBipartitionable
		}
		mid := s.dlX + (s.urX-s.dlX)/2
		lo, err = New(s.dlX, s.dlY, mid, s.urY, loCap)
		if err != nil {
			return nil, nil, err
		}
		hi, err = New(mid, s.dlY, s.urX, s.urY, hiCap)
		if err != nil {
			return nil, nil, err
		}
	}
	return lo, hi, nil
}

// leafIndex decodes a bit-major coordinate tuple into the canonical index
// used by GetLeafSlotsAfterPartition's result slice, e.g. (y1,y2) -> 2*y1+y2.
func leafIndex(coords ...int) int {
	idx := 0
	for _, c := range coords {
		idx = idx*2 + c
	}
	return idx
}

// LeafByCoords resolves the leaf at the given binary coordinates (e.g.
// (y1,y2) for a four-way partition, (y1,y2,y3) for eight-way) against the
// leaves returned by GetLeafSlotsAfterPartition for a matching-length
// Horizontal-only order.
func (m *Manager) LeafByCoords(order []Direction, coords ...int) (*Slot, error) {
	leaves, err := m.GetLeafSlotsAfterPartition(order)
	if err != nil {
		return nil, err
	}
	idx := leafIndex(coords...)
	if idx < 0 || idx >= len(leaves) {
		return nil, ErrSlotNotFound
	}
	return leaves[idx], nil
}

// LeafIndexContaining returns the index into leaves of the leaf that
// contains target (inclusive of equality), or ErrNotDescendant if no leaf
// in the set does. Callers resolving a pre-assignment or group pin against
// a set of candidate leaves use this instead of walking
// Slot.ContainsChildSlot themselves.
func LeafIndexContaining(leaves []*Slot, target *Slot) (int, error) {
	for idx, l := range leaves {
		if l.ContainsChildSlot(target) {
			return idx, nil
		}
	}
	return -1, ErrNotDescendant
}
