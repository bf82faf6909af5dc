package slot

import "errors"

// Sentinel errors for the slot package.
var (
	// ErrInvalidRectangle indicates a slot's down-left corner is not
	// strictly below/left of its up-right corner.
	ErrInvalidRectangle = errors.New("slot: down-left corner must be strictly below/left of up-right corner")
	// ErrNotBipartitionable indicates a slot spans fewer than two grid units
	// along the requested split axis and cannot be halved into two
	// non-empty slots.
	ErrNotBipartitionable = errors.New("slot: slot spans fewer than two grid units along the requested axis")
	// ErrSlotNotFound indicates a requested leaf does not exist: an
	// out-of-range coordinate tuple, or an empty leaf set.
	ErrSlotNotFound = errors.New("slot: slot not found")
	// ErrNotDescendant indicates a target slot is not contained by any
	// slot in the candidate set (not a structural descendant of the
	// partition hierarchy being searched).
	ErrNotDescendant = errors.New("slot: target is not a descendant of any candidate slot")
)

// ResourceType enumerates the physical resource kinds tracked per slot and
// per vertex. RESOURCE_TYPES below fixes the implementation-defined set
// spec.md leaves open ("at least LUT, FF, BRAM, DSP, URAM").
type ResourceType int

const (
	LUT ResourceType = iota
	FF
	BRAM
	DSP
	URAM
)

func (r ResourceType) String() string {
	switch r {
	case LUT:
		return "LUT"
	case FF:
		return "FF"
	case BRAM:
		return "BRAM"
	case DSP:
		return "DSP"
	case URAM:
		return "URAM"
	default:
		return "UNKNOWN"
	}
}

// RESOURCE_TYPES is the fixed, ordered set of resources this module
// accounts for. Iterate this slice (not a map) wherever constraint
// generation must be deterministic across runs.
var RESOURCE_TYPES = []ResourceType{LUT, FF, BRAM, DSP, URAM}

// ResourceVector is a per-resource-type quantity: a slot's capacity, or a
// vertex's area / bundled area. Nil and non-nil-but-empty behave the same
// as "zero for every resource" (Get returns 0 for missing keys).
type ResourceVector map[ResourceType]int64

// Get returns the quantity for r, or 0 if unset.
func (rv ResourceVector) Get(r ResourceType) int64 {
	return rv[r]
}

// Add returns a new vector holding rv[r]+other[r] for every r in
// RESOURCE_TYPES. Neither operand is mutated.
func (rv ResourceVector) Add(other ResourceVector) ResourceVector {
	out := make(ResourceVector, len(RESOURCE_TYPES))
	for _, r := range RESOURCE_TYPES {
		out[r] = rv.Get(r) + other.Get(r)
	}
	return out
}

// Scale returns a new vector holding floor(rv[r]*ratio) for every resource.
func (rv ResourceVector) Scale(ratio float64) ResourceVector {
	out := make(ResourceVector, len(RESOURCE_TYPES))
	for _, r := range RESOURCE_TYPES {
		out[r] = int64(float64(rv.Get(r)) * ratio)
	}
	return out
}

// Slot is an axis-aligned rectangular region of the device, identified by
// its down-left and up-right SLR-grid coordinates, plus the per-resource
// capacity available within it. Slot values are immutable once returned by
// Manager; callers may safely share a *Slot across goroutines.
type Slot struct {
	dlX, dlY int
	urX, urY int
	capacity ResourceVector
}

// New constructs a Slot spanning [dlX,urX) x [dlY,urY) with the given
// capacity. Returns ErrInvalidRectangle if the rectangle is degenerate.
func New(dlX, dlY, urX, urY int, capacity ResourceVector) (*Slot, error) {
	if dlX >= urX || dlY >= urY {
		return nil, ErrInvalidRectangle
	}
	return &Slot{dlX: dlX, dlY: dlY, urX: urX, urY: urY, capacity: capacity}, nil
}

// DownLeft returns the slot's down-left grid coordinate.
func (s *Slot) DownLeft() (x, y int) { return s.dlX, s.dlY }

// UpRight returns the slot's up-right grid coordinate.
func (s *Slot) UpRight() (x, y int) { return s.urX, s.urY }

// Capacity returns the slot's per-resource capacity.
func (s *Slot) Capacity() ResourceVector { return s.capacity }

// ContainsChildSlot reports whether other's rectangle lies inside s's
// rectangle (inclusive of equality). This holds for s itself and for every
// descendant produced by repeated bipartition of s, and also for any other
// rectangle within s's bounds.
func (s *Slot) ContainsChildSlot(other *Slot) bool {
	if s == nil || other == nil {
		return false
	}
	return other.dlX >= s.dlX && other.dlY >= s.dlY &&
		other.urX <= s.urX && other.urY <= s.urY
}

// Equal reports whether s and other describe the same rectangle. Two
// distinct *Slot values with identical coordinates compare equal; this
// matters because Manager allocates fresh Slot values for each distinct
// partition order, so the same rectangle reached through two orders is
// two different pointers.
func (s *Slot) Equal(other *Slot) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.dlX == other.dlX && s.dlY == other.dlY &&
		s.urX == other.urX && s.urY == other.urY
}
