package config

// LayoutType describes the ways the picker can arrange its list
type LayoutType = string

const (
	DefaultLayoutType  = LayoutTypeTopDown // LayoutTypeTopDown makes the layout so the items read from top to bottom
	LayoutTypeTopDown  = "top-down"        // LayoutTypeTopDown displays prompt at top, list top-to-bottom
	LayoutTypeBottomUp = "bottom-up"       // LayoutTypeBottomUp displays prompt at bottom, list bottom-to-top
)

var validLayoutTypes = map[LayoutType]struct{}{
	LayoutTypeTopDown:  {},
	LayoutTypeBottomUp: {},
}

// IsValidLayoutType checks if a string is a supported layout type
func IsValidLayoutType(v LayoutType) bool {
	_, ok := validLayoutTypes[v]
	return ok
}
