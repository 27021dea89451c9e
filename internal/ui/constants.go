package ui

// Page layout
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// MinTerminalWidth and MinTerminalHeight bound the layout from below;
	// smaller terminals are laid out as if they had this size.
	MinTerminalWidth  = 40
	MinTerminalHeight = 10

	// MinAnchorHeight is the smallest anchor box; below it anchors overlap
	// the page text instead of sitting under it.
	MinAnchorHeight = 5

	// AnchorGap separates side-by-side anchor boxes.
	AnchorGap = 1

	// DefaultWrapWidth is the default width for text wrapping when the
	// chat width is unknown
	DefaultWrapWidth = 80
)

// Panel sizing
const (
	// PanelMinWidth is the narrowest panel, unless the container is
	// narrower still.
	PanelMinWidth = 24

	// PanelChromeHeight is the border plus the header row and input row.
	PanelChromeHeight = BorderSize + 2

	// EdgeInset keeps float buttons and panels off the container's right
	// and bottom edges, as the default stylesheet offsets them.
	EdgeInset = 1

	// InputCharLimit caps a single message.
	InputCharLimit = 2000
)
