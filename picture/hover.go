package picture

// HoverState is the pointer state of one rendered picture. The zero value
// is Resting. It is owned by a single instance and never shared.
type HoverState uint8

const (
	Resting HoverState = iota
	Hovering
)

func (h HoverState) String() string {
	if h == Hovering {
		return "hovering"
	}
	return "resting"
}

// Enter moves the state to Hovering.
func (h *HoverState) Enter() { *h = Hovering }

// Leave moves the state back to Resting.
func (h *HoverState) Leave() { *h = Resting }

// Toggle flips the state, mirroring a single enter/leave handler.
func (h *HoverState) Toggle() {
	if *h == Hovering {
		*h = Resting
	} else {
		*h = Hovering
	}
}

// IsHovering reports whether the pointer is over the picture.
func (h HoverState) IsHovering() bool {
	return h == Hovering
}
