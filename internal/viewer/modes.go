package viewer

// ViewMode selects the projection and the fixed camera placement.
type ViewMode int

const (
	Perspective ViewMode = iota
	Front                // Oxy, looking along Z
	Top                  // Oxz, looking along Y
	Side                 // Oyz, looking along X
)

var viewNames = [...]string{
	Perspective: "Perspective",
	Front:       "Front (Oxy)",
	Top:         "Top (Oxz)",
	Side:        "Side (Oyz)",
}

func (m ViewMode) String() string {
	if m < 0 || int(m) >= len(viewNames) {
		return "Unknown"
	}
	return viewNames[m]
}

// TransformMode selects which vector held keys adjust.
type TransformMode int

const (
	Translate TransformMode = iota
	Rotate
	Scale

	numTransformModes
)

var transformNames = [...]string{
	Translate: "Translate",
	Rotate:    "Rotate",
	Scale:     "Scale",
}

func (m TransformMode) String() string {
	if m < 0 || m >= numTransformModes {
		return "Unknown"
	}
	return transformNames[m]
}

// Next returns the mode after m, wrapping back to Translate.
func (m TransformMode) Next() TransformMode {
	return (m + 1) % numTransformModes
}
