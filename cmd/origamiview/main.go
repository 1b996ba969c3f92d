// Command origamiview is a terminal previewer for fold artworks: the density
// grid as colored block glyphs with a trait sidebar, navigable by seed.
//
// Keys: left/right seed +-1, up/down seed +-100, r random seed, m cycle a
// render-mode override, q or Esc to quit.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/origami"
)

// levelGlyphs maps density levels 0..3 to block characters.
var levelGlyphs = [4]rune{' ', '░', '▒', '█'}

// sidebarWidth is the trait panel width in terminal cells.
const sidebarWidth = 26

type viewer struct {
	screen tcell.Screen
	seed   int64

	// modeOverride cycles with 'm'; -1 means "use the seed's own mode".
	modeOverride int

	artwork *origami.Artwork
}

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	defer screen.Fini()

	v := &viewer{screen: screen, seed: 42, modeOverride: -1}
	v.regenerate()
	v.draw()

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			v.draw()
		case *tcell.EventKey:
			if !v.handleKey(ev) {
				return
			}
			v.draw()
		}
	}
}

// handleKey updates viewer state; false means quit.
func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		return false
	case tcell.KeyLeft:
		v.seed--
		v.regenerate()
	case tcell.KeyRight:
		v.seed++
		v.regenerate()
	case tcell.KeyUp:
		v.seed += 100
		v.regenerate()
	case tcell.KeyDown:
		v.seed -= 100
		v.regenerate()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'r':
			v.seed = rand.New(rand.NewSource(time.Now().UnixNano())).Int63()
			v.regenerate()
		case 'm':
			v.modeOverride = (v.modeOverride+2)%6 - 1 // cycles -1,0..4
		}
	}
	return true
}

func (v *viewer) regenerate() {
	v.artwork = origami.Generate(v.seed)
}

// mode returns the effective render mode, honoring the override.
func (v *viewer) mode() origami.RenderMode {
	if v.modeOverride < 0 {
		return v.artwork.Traits.RenderMode
	}
	return origami.RenderMode(v.modeOverride)
}

func (v *viewer) draw() {
	s := v.screen
	a := v.artwork
	s.Clear()

	bg := entryColor(a.Palette.BG)
	text := entryColor(a.Palette.Text)
	accent := entryColor(a.Palette.Accent)
	base := tcell.StyleDefault.Background(bg).Foreground(text)

	sw, sh := s.Size()
	gridW := sw - sidebarWidth
	if gridW < 1 || sh < 1 {
		s.Show()
		return
	}

	// Map the artwork grid onto the available terminal cells.
	g := a.Grid
	mode := v.mode()
	for ty := 0; ty < sh; ty++ {
		for tx := 0; tx < gridW; tx++ {
			col := tx * g.Cols / gridW
			row := ty * g.Rows / sh
			level := origami.OverrideLevel(mode, a.Thresholds.Level(g.Cell(col, row).Weight))

			style := base
			if a.MaxGapOk && col == a.MaxGapCol && row == a.MaxGapRow {
				style = style.Foreground(accent).Reverse(true)
			} else if a.LastTargetOk && col == a.LastTargetCol && row == a.LastTargetRow {
				style = style.Foreground(accent)
			}
			s.SetContent(tx, ty, levelGlyphs[level], nil, style)
		}
	}

	v.drawSidebar(gridW, sh, base.Reverse(false))
	s.Show()
}

func (v *viewer) drawSidebar(x, h int, style tcell.Style) {
	a := v.artwork
	lines := []string{
		fmt.Sprintf("seed %d", a.Seed),
		fmt.Sprintf("palette %s", a.Palette.Strategy),
		fmt.Sprintf("mode %s", v.mode()),
	}
	for _, l := range a.Traits.Labels() {
		lines = append(lines, fmt.Sprintf("%s: %s", l.Name, l.Value))
	}
	lines = append(lines,
		fmt.Sprintf("creases %d", len(a.Creases)),
		fmt.Sprintf("hits %d", len(a.Intersections)),
		"",
		"arrows seed  r rand",
		"m mode  q quit",
	)

	for i, line := range lines {
		if i >= h {
			break
		}
		putString(v.screen, x+1, i, line, style)
	}
}

func putString(s tcell.Screen, x, y int, str string, style tcell.Style) {
	for i, r := range str {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func entryColor(e origami.ColorEntry) tcell.Color {
	return tcell.NewRGBColor(int32(e.R), int32(e.G), int32(e.B))
}
