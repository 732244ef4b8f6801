package tui

import (
	"strings"

	"github.com/vovakirdan/birdfeed/internal/core"
	"github.com/vovakirdan/birdfeed/internal/game"
)

// Terminal cells are about twice as tall as wide, so one cell covers 2x6
// display pixels and the 160x144 display fits in 80x24 cells.
const (
	cellW      = 2
	cellH      = 6
	screenCols = game.ScreenWidth / cellW
	screenRows = game.ScreenHeight / cellH
	worldRows  = game.WorldHeight / cellH
	tileCols   = game.TileSize / cellW
)

// sprite is terminal art for one sheet entry. Each row occupies one hardware
// slot, so frames with fewer rows leave slots to hide. Spaces are
// transparent. (dx, dy) is the art's top-left corner relative to the draw
// position, in cells.
type sprite struct {
	rows   []string
	dx, dy int
	shade  core.Shade
}

// Bird frames face left like the sheet; drawing flipped turns them right.
var sheet = map[game.Sprite]sprite{
	game.SpriteGlide: {rows: []string{"  ____  ", "<(o)__>-"}, dx: -4, dy: -1, shade: core.ShadeBlack},
	1:                {rows: []string{" \\\\  // ", "<(o)==>-"}, dx: -4, dy: -1, shade: core.ShadeBlack},
	2:                {rows: []string{"  \\\\//  ", "<(o)==>-"}, dx: -4, dy: -1, shade: core.ShadeBlack},
	3:                {rows: []string{"<(o)==>-", "  //\\\\  "}, dx: -4, dy: -1, shade: core.ShadeBlack},
	4:                {rows: []string{"<(o)==>-"}, dx: -4, dy: 0, shade: core.ShadeBlack},
	5:                {rows: []string{"<(o)\\   ", "    \\\\  "}, dx: -4, dy: -1, shade: core.ShadeBlack},
	6:                {rows: []string{"<(o)\\\\  ", "     \\\\ "}, dx: -4, dy: -1, shade: core.ShadeBlack},
	7:                {rows: []string{" <(o)   ", "   \\\\\\  ", "    \\\\\\ "}, dx: -4, dy: -1, shade: core.ShadeBlack},

	game.SpriteDandelion:     {rows: []string{"\\|/ ", " |  "}, shade: core.ShadeDark},
	game.SpriteDandelion + 1: {rows: []string{"-*- ", " |  "}, shade: core.ShadeDark},
	game.SpriteDandelion + 2: {rows: []string{"/|\\ ", " |  "}, shade: core.ShadeDark},
	game.SpriteDandelion + 3: {rows: []string{"-*- ", " |  "}, shade: core.ShadeDark},
	game.SpriteBerry:         {rows: []string{"(@) "}, shade: core.ShadeBlack},
	game.SpriteBerry + 1:     {rows: []string{"(o) "}, shade: core.ShadeBlack},
}

var mirrored = map[rune]rune{
	'<': '>', '>': '<',
	'(': ')', ')': '(',
	'/': '\\', '\\': '/',
}

// mirror flips one art row horizontally.
func mirror(row string) string {
	runes := []rune(row)
	out := make([]rune, len(runes))
	for i, r := range runes {
		if m, ok := mirrored[r]; ok {
			r = m
		}
		out[len(runes)-1-i] = r
	}
	return string(out)
}

// backgroundArt draws a screen's static tilemap. Text positions line up with
// the tile coordinates the simulation writes to.
func backgroundArt(bg game.Background) *core.Screen {
	switch bg {
	case game.BackgroundSky:
		return skyArt()
	case game.BackgroundTitle:
		s := core.NewScreen(screenCols, screenRows)
		s.DrawBox(core.NewRect(10, 3, 60, 9), core.ShadeDark)
		s.DrawTextCentered(6, "B I R D F E E D", core.ShadeBlack)
		s.DrawTextCentered(8, "catch the flying food before time runs out", core.ShadeDark)
		s.DrawTextCentered(15, "<(o)==>-", core.ShadeBlack)
		s.DrawTextCentered(19, "PRESS START", core.ShadeBlack)
		return s
	case game.BackgroundInstructions:
		s := core.NewScreen(screenCols, screenRows)
		s.DrawTextCentered(2, "HOW TO PLAY", core.ShadeBlack)
		s.DrawText(12, 5, "A / UP      flap", core.ShadeDark)
		s.DrawText(12, 6, "B / DOWN    dive", core.ShadeDark)
		s.DrawText(12, 7, "LEFT/RIGHT  turn around", core.ShadeDark)
		s.DrawText(12, 8, "START       pause", core.ShadeDark)
		s.DrawText(12, 10, "\\|/ dandelion  10     (@) berry  100", core.ShadeDark)
		s.DrawText(12, 12, "stay calm before a catch for a bonus", core.ShadeDark)
		s.DrawText(40, 16, "MINUTES", core.ShadeBlack)
		s.DrawText(50, 16, "<", core.ShadeBlack)
		s.DrawText(54, 16, ">", core.ShadeBlack)
		s.DrawTextCentered(20, "PRESS START", core.ShadeBlack)
		return s
	case game.BackgroundWinning:
		s := core.NewScreen(screenCols, screenRows)
		s.DrawTextCentered(4, "TIME UP!", core.ShadeBlack)
		s.DrawText(28, 9, "SCORE", core.ShadeDark)
		s.DrawText(36, 13, "dandelions", core.ShadeDark)
		s.DrawText(36, 14, "berries", core.ShadeDark)
		s.DrawTextCentered(20, "PRESS START", core.ShadeBlack)
		return s
	}
	return core.NewScreen(screenCols, screenRows)
}

// skyArt is the scrolling world: clouds up high, hills at the bottom.
func skyArt() *core.Screen {
	s := core.NewScreen(screenCols, worldRows)
	clouds := []struct {
		x, y int
	}{
		{6, 4}, {48, 7}, {22, 13}, {62, 17}, {8, 22}, {40, 27}, {66, 31},
	}
	for _, c := range clouds {
		s.DrawText(c.x, c.y, " .--. ", core.ShadeLight)
		s.DrawText(c.x, c.y+1, "(    ).", core.ShadeLight)
		s.DrawText(c.x, c.y+2, " `--'-' ", core.ShadeLight)
	}

	hills := worldRows - 3
	s.DrawText(0, hills, strings.Repeat("   _/\\_      ", screenCols/13+1), core.ShadeDark)
	s.DrawText(0, hills+1, strings.Repeat("__/    \\_____", screenCols/13+1), core.ShadeDark)
	s.DrawText(0, hills+2, strings.Repeat("^", screenCols), core.ShadeDark)
	return s
}
