package viewer

// Frame is the terminal size in character cells. Only resize events change
// it. Both dimensions are kept positive.
type Frame struct {
	Width  int
	Height int
}

// NewFrame returns a frame of the given size, raising non-positive
// dimensions to 1.
func NewFrame(width, height int) Frame {
	var f Frame
	f.Resize(width, height)
	return f
}

// Resize replaces the frame dimensions.
func (f *Frame) Resize(width, height int) {
	f.Width = max(width, 1)
	f.Height = max(height, 1)
}
