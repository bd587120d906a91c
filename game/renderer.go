package game

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

//go:generate go tool mockgen -source=renderer.go -destination=mock_surface_test.go -package=game

// Color constants
var (
	colorBackground = color.RGBA{R: 0, G: 127, B: 127, A: 255}
	colorPlayer     = color.RGBA{R: 127, G: 0, B: 127, A: 255}
	colorBullet     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	colorEnemy      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// Surface is the drawing target for one frame
type Surface interface {
	// Clear fills the whole frame with clr
	Clear(clr color.RGBA)

	// FillRect queues a filled axis-aligned rectangle
	FillRect(pos, size Vec2i, clr color.RGBA)

	// Present flushes everything queued since Clear
	Present() error
}

// ScoreDisplay shows the current score to the player
type ScoreDisplay interface {
	SetScore(score int)
}

type rect struct {
	pos, size Vec2i
	clr       color.RGBA
}

// ScreenSurface batches rectangles for an ebiten screen image and draws
// them in one pass on Present
type ScreenSurface struct {
	screen *ebiten.Image
	rects  []rect
}

// NewScreenSurface creates a surface that draws onto screen
func NewScreenSurface(screen *ebiten.Image) *ScreenSurface {
	return &ScreenSurface{
		screen: screen,
		rects:  make([]rect, 0, 64),
	}
}

// Clear fills the screen and drops any queued rectangles
func (s *ScreenSurface) Clear(clr color.RGBA) {
	s.screen.Fill(clr)
	s.rects = s.rects[:0]
}

// FillRect queues a rectangle
func (s *ScreenSurface) FillRect(pos, size Vec2i, clr color.RGBA) {
	s.rects = append(s.rects, rect{pos: pos, size: size, clr: clr})
}

// Present draws the queued rectangles in order. ebiten shows the screen
// once Draw returns.
func (s *ScreenSurface) Present() error {
	for _, r := range s.rects {
		vector.DrawFilledRect(s.screen,
			float32(r.pos.X), float32(r.pos.Y),
			float32(r.size.X), float32(r.size.Y),
			r.clr, false)
	}
	s.rects = s.rects[:0]
	return nil
}

// WindowTitle shows the score as the window title
type WindowTitle struct {
	last int
	set  bool
}

// SetScore updates the title when the score changes
func (w *WindowTitle) SetScore(score int) {
	if w.set && w.last == score {
		return
	}
	ebiten.SetWindowTitle(strconv.Itoa(score))
	w.last = score
	w.set = true
}
