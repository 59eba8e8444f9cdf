package widgetlist

import "github.com/gdamore/tcell/v3"

const subcell = 8

// GlyphSet defines the vertical track and fractional thumb glyphs.
type GlyphSet struct {
	TrackVertical string

	ThumbVerticalLower [subcell]string
	ThumbVerticalUpper [subcell]string
}

// MinimalGlyphSet returns a glyph set with a blank track.
func MinimalGlyphSet() GlyphSet {
	g := UnicodeGlyphSet()
	g.TrackVertical = " "
	return g
}

// UnicodeGlyphSet returns a glyph set using standard block elements only.
func UnicodeGlyphSet() GlyphSet {
	return GlyphSet{
		TrackVertical: BoxDrawingsLightVertical,

		ThumbVerticalLower: [subcell]string{
			BlockLowerOneEighthBlock, BlockLowerOneQuarterBlock, BlockLowerThreeEighthsBlock, BlockLowerHalfBlock,
			BlockLowerFiveEighthsBlock, BlockLowerThreeQuartersBlock, BlockLowerSevenEighthsBlock, BlockFullBlock,
		},
		ThumbVerticalUpper: [subcell]string{
			BlockUpperOneEighthBlock, BlockUpperOneEighthBlock, BlockUpperHalfBlock, BlockUpperHalfBlock,
			BlockUpperHalfBlock, BlockUpperHalfBlock, BlockFullBlock, BlockFullBlock,
		},
	}
}

// ScrollBar renders a vertical scroll bar for content measured in rows.
type ScrollBar struct {
	*Box

	autoHide    bool
	contentLen  int
	viewportLen int
	offset      int

	trackStyle tcell.Style
	thumbStyle tcell.Style
	glyphSet   GlyphSet
}

// NewScrollBar returns a new vertical scroll bar.
func NewScrollBar() *ScrollBar {
	return &ScrollBar{
		Box:        NewBox(),
		autoHide:   true,
		trackStyle: tcell.StyleDefault.Foreground(Styles.TertiaryTextColor).Dim(true),
		thumbStyle: tcell.StyleDefault.Foreground(Styles.PrimaryTextColor),
		glyphSet:   UnicodeGlyphSet(),
	}
}

// SetLengths sets the content and viewport lengths.
func (s *ScrollBar) SetLengths(contentLen, viewportLen int) *ScrollBar {
	s.contentLen = max(contentLen, 0)
	s.viewportLen = max(viewportLen, 0)
	return s
}

// SetOffset sets the number of content rows scrolled past.
func (s *ScrollBar) SetOffset(offset int) *ScrollBar {
	s.offset = max(offset, 0)
	return s
}

// SetGlyphSet applies a glyph set.
func (s *ScrollBar) SetGlyphSet(g GlyphSet) *ScrollBar {
	s.glyphSet = g
	return s
}

// SetAutoHide controls whether the scroll bar is hidden when everything fits.
func (s *ScrollBar) SetAutoHide(autoHide bool) *ScrollBar {
	s.autoHide = autoHide
	return s
}

// SetThumbStyle sets the thumb style.
func (s *ScrollBar) SetThumbStyle(style tcell.Style) *ScrollBar {
	s.thumbStyle = style
	return s
}

// SetTrackStyle sets the track style.
func (s *ScrollBar) SetTrackStyle(style tcell.Style) *ScrollBar {
	s.trackStyle = style
	return s
}

type scrollMetrics struct {
	trackCells int
	trackLen   int
	thumbLen   int
	thumbStart int
}

// computeScrollMetrics computes the thumb geometry in 1/8 cell units.
func computeScrollMetrics(trackCells, contentLen, viewportLen, offset int) scrollMetrics {
	trackLen := trackCells * subcell
	if trackLen == 0 {
		return scrollMetrics{}
	}

	contentLen = max(contentLen, 1)
	viewportLen = min(max(viewportLen, 1), contentLen)
	maxOffset := max(contentLen-viewportLen, 0)
	offset = min(max(offset, 0), maxOffset)

	if maxOffset == 0 {
		return scrollMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: trackLen}
	}

	thumbLen := min(max((trackLen*viewportLen)/contentLen, subcell), trackLen)
	thumbStart := (max(trackLen-thumbLen, 0) * offset) / maxOffset
	return scrollMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: thumbLen, thumbStart: thumbStart}
}

// cellFill returns where the thumb starts within a cell and how much of the
// cell it covers, both in 1/8 cell units.
func cellFill(m scrollMetrics, cell int) (start int, fillLen int) {
	if m.thumbLen == 0 {
		return 0, 0
	}
	cellStart := cell * subcell
	cellEnd := cellStart + subcell
	begin := max(m.thumbStart, cellStart)
	end := min(m.thumbStart+m.thumbLen, cellEnd)
	if end <= begin {
		return 0, 0
	}
	return begin - cellStart, end - begin
}

func (s *ScrollBar) glyph(start, fillLen int) (string, tcell.Style) {
	switch {
	case fillLen <= 0:
		return s.glyphSet.TrackVertical, s.trackStyle
	case fillLen >= subcell:
		return s.glyphSet.ThumbVerticalLower[subcell-1], s.thumbStyle
	case start == 0:
		return s.glyphSet.ThumbVerticalUpper[fillLen-1], s.thumbStyle
	default:
		return s.glyphSet.ThumbVerticalLower[fillLen-1], s.thumbStyle
	}
}

// Draw draws the scroll bar.
func (s *ScrollBar) Draw(screen tcell.Screen) {
	s.DrawForSubclass(screen, s)

	x, y, width, height := s.GetInnerRect()
	if width <= 0 || height <= 0 || s.contentLen <= 0 {
		return
	}
	if s.autoHide && s.contentLen <= s.viewportLen {
		return
	}

	m := computeScrollMetrics(height, s.contentLen, s.viewportLen, s.offset)
	for cell := range m.trackCells {
		glyph, style := s.glyph(cellFill(m, cell))
		screen.Put(x, y+cell, glyph, style)
	}
}

var _ Primitive = &ScrollBar{}
