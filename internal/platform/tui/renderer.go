package tui

import (
	"github.com/vovakirdan/birdfeed/internal/core"
	"github.com/vovakirdan/birdfeed/internal/game"
)

// slot is one hardware sprite: a single row of art.
type slot struct {
	visible  bool
	col, row int
	text     string
	shade    core.Shade
}

// Renderer is a terminal display with the same model as the console: a
// scrolling background tilemap, a fixed text layer, a table of retained
// sprite slots and a palette. Compose flattens it into a Screen.
type Renderer struct {
	background *core.Screen
	text       *core.Screen
	slots      [game.HardwareSprites]slot
	scroll     int // pixels
	palette    core.Palette
	out        *core.Screen
}

// NewRenderer creates a blank display.
func NewRenderer() *Renderer {
	return &Renderer{
		background: core.NewScreen(screenCols, screenRows),
		text:       newTextLayer(),
		palette:    core.DefaultPalette,
		out:        core.NewScreen(screenCols, screenRows),
	}
}

func newTextLayer() *core.Screen {
	s := core.NewScreen(screenCols, screenRows)
	s.Fill(0)
	return s
}

// LoadBackground replaces the tilemap and clears the text layer.
func (r *Renderer) LoadBackground(bg game.Background) {
	r.background = backgroundArt(bg)
	r.text = newTextLayer()
}

// DrawSprite places sprite art with one row per slot and returns the end of
// the slots it used.
func (r *Renderer) DrawSprite(slots game.SlotRange, id game.Sprite, x, y int, flip bool) int {
	art, ok := sheet[id]
	if !ok {
		return slots.Start
	}

	col := floorDiv(x, cellW) + art.dx
	row := floorDiv(y, cellH) + art.dy

	next := slots.Start
	for i, text := range art.rows {
		if next >= slots.End || next >= len(r.slots) {
			break
		}
		if flip {
			text = mirror(text)
		}
		r.slots[next] = slot{visible: true, col: col, row: row + i, text: text, shade: art.shade}
		next++
	}
	return next
}

// HideSprites hides slots [from, to).
func (r *Renderer) HideSprites(from, to int) {
	for i := max(from, 0); i < min(to, len(r.slots)); i++ {
		r.slots[i].visible = false
	}
}

// ScrollBackground sets the vertical background offset in pixels.
func (r *Renderer) ScrollBackground(offsetY int) {
	r.scroll = offsetY
}

// SetTileText writes text into the fixed text layer at tile (x, y).
func (r *Renderer) SetTileText(x, y int, text string) {
	col := x * tileCols
	row := y * game.TileSize / cellH
	r.text.DrawText(col, row, text, core.ShadeBlack)
}

// SetPalette changes the shade mapping used by Compose.
func (r *Renderer) SetPalette(p core.Palette) {
	r.palette = p
}

// Visible returns the number of visible sprite slots.
func (r *Renderer) Visible() int {
	n := 0
	for _, s := range r.slots {
		if s.visible {
			n++
		}
	}
	return n
}

// Compose renders the display into its screen buffer and returns it.
// Lower slots are drawn over higher ones.
func (r *Renderer) Compose() *core.Screen {
	bgRows := r.background.Height()
	offset := floorDiv(r.scroll, cellH)

	for y := 0; y < screenRows; y++ {
		src := y + offset
		if bgRows > 0 {
			src = ((src % bgRows) + bgRows) % bgRows
		}
		for x := 0; x < screenCols; x++ {
			r.out.SetCell(x, y, r.background.GetCell(x, src))
		}
	}

	for i := len(r.slots) - 1; i >= 0; i-- {
		s := r.slots[i]
		if !s.visible || s.row < 0 || s.row >= screenRows {
			continue
		}
		x := s.col
		for _, ch := range s.text {
			if ch != ' ' {
				r.out.SetCell(x, s.row, core.Cell{Rune: ch, Shade: s.shade})
			}
			x++
		}
	}

	for y := 0; y < screenRows; y++ {
		for x := 0; x < screenCols; x++ {
			if c := r.text.GetCell(x, y); c.Rune != 0 {
				r.out.SetCell(x, y, c)
			}
		}
	}

	for y := 0; y < screenRows; y++ {
		for x := 0; x < screenCols; x++ {
			c := r.out.GetCell(x, y)
			c.Shade = r.palette.Map(c.Shade)
			r.out.SetCell(x, y, c)
		}
	}
	return r.out
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

var _ game.Renderer = (*Renderer)(nil)
