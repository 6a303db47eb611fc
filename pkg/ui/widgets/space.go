package widgets

import "github.com/odvcencio/filepane/pkg/ui/runtime"

// Space is blank filler. It takes its minimum size, so it only grows
// when a container hands it a minimum, as Flex does for flexible
// children.
type Space struct {
	runtime.Base
}

// NewSpace creates a spacer.
func NewSpace() *Space {
	return &Space{}
}

func (s *Space) Negotiate(min, max runtime.Size) runtime.Size {
	s.Track(min, max)
	return s.SetSize(min)
}

// Paint leaves the erased cells alone.
func (s *Space) Paint(*runtime.Canvas) {}

var _ runtime.Widget = (*Space)(nil)
