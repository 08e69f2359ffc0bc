package display

// Scrollbar maps a content offset onto a track and back. All sizes are
// in rows. The zero value is an empty, unscrollable bar.
type Scrollbar struct {
	MinHandle int

	total   int
	visible int
	track   int
	offset  int
}

// NewScrollbar creates a scrollbar whose handle is never shorter than
// minHandle rows.
func NewScrollbar(minHandle int) Scrollbar {
	return Scrollbar{MinHandle: minHandle}
}

// Resize updates the content, viewport and track sizes and re-clamps the
// offset.
func (s *Scrollbar) Resize(total, visible, track int) {
	s.total, s.visible, s.track = max(0, total), max(0, visible), max(0, track)
	s.clamp()
}

// Offset returns the first visible content row.
func (s Scrollbar) Offset() int { return s.offset }

// MaxOffset is the largest valid offset: max(0, total-visible).
func (s Scrollbar) MaxOffset() int { return max(0, s.total-s.visible) }

// Scrollable reports whether the content overflows the viewport.
func (s Scrollbar) Scrollable() bool { return s.MaxOffset() > 0 }

// ScrollBy moves the offset by delta rows, clamped.
func (s *Scrollbar) ScrollBy(delta int) {
	s.offset += delta
	s.clamp()
}

// ScrollTo sets the offset, clamped.
func (s *Scrollbar) ScrollTo(offset int) {
	s.offset = offset
	s.clamp()
}

// HandleSize is max(MinHandle, track*visible/total), never larger than
// the track. Content that fits fills the whole track.
func (s Scrollbar) HandleSize() int {
	if s.track <= 0 {
		return 0
	}
	if s.total <= s.visible {
		return s.track
	}
	return min(s.track, max(s.MinHandle, s.track*s.visible/s.total))
}

// HandlePos returns the handle's top row inside the track.
func (s Scrollbar) HandlePos() int {
	free := s.track - s.HandleSize()
	maxOff := s.MaxOffset()
	if free <= 0 || maxOff == 0 {
		return 0
	}
	return (free*s.offset + maxOff/2) / maxOff
}

// OnHandle reports whether a track row is covered by the handle.
func (s Scrollbar) OnHandle(row int) bool {
	p := s.HandlePos()
	return row >= p && row < p+s.HandleSize()
}

// DragTo places the handle's top at a track row and derives the offset
// from it.
func (s *Scrollbar) DragTo(row int) {
	free := s.track - s.HandleSize()
	if free <= 0 {
		s.offset = 0
		return
	}
	row = min(max(row, 0), free)
	s.offset = (row*s.MaxOffset() + free/2) / free
	s.clamp()
}

func (s *Scrollbar) clamp() {
	s.offset = min(max(s.offset, 0), s.MaxOffset())
}
