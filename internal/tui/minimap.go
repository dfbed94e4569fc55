package tui

import (
	"cityscape/internal/geom"
	"cityscape/internal/mapgen"
	"cityscape/internal/scene"
	"github.com/chewxy/math32"
)

// Map glyphs.
const (
	GlyphEmpty    = ' '
	GlyphRoad     = '.'
	GlyphBuilding = '#'
	GlyphModel    = 'M'
	GlyphPanel    = '='
	GlyphTarget   = '@'
	GlyphFirefly  = '*'
)

// Minimap renders a top-down view of s into a w x h rune grid centered on the
// player, north (-Z) up. scale is world units per column; rows cover twice as
// much since terminal cells are about twice as tall as wide.
func Minimap(s *scene.Scene, w, h int, scale float32) [][]rune {
	grid := make([][]rune, h)
	for r := range grid {
		grid[r] = make([]rune, w)
		for c := range grid[r] {
			grid[r][c] = GlyphEmpty
		}
	}
	if w <= 0 || h <= 0 {
		return grid
	}
	if !(scale > 0) {
		scale = 1
	}
	m := minimap{grid: grid, w: w, h: h, scale: scale, eye: s.Player.Position}

	for _, road := range s.Layout.Roads {
		m.fill(geom.BoxAt(road.Center, road.Size), GlyphRoad)
	}
	for i := range s.Layout.Objects {
		obj := &s.Layout.Objects[i]
		g := GlyphBuilding
		switch obj.Kind {
		case mapgen.KindModel:
			g = GlyphModel
		case mapgen.KindPanel:
			g = GlyphPanel
		}
		if i == s.Overlay.Target && s.Overlay.Visible {
			g = GlyphTarget
		}
		m.fill(obj.Box, g)
	}
	for _, f := range s.Fireflies.Flies() {
		if f.Glow > 0.9 {
			if c, r, ok := m.cell(f.Position[0], f.Position[2]); ok && grid[r][c] == GlyphEmpty {
				grid[r][c] = GlyphFirefly
			}
		}
	}
	grid[h/2][w/2] = Arrow(s.Player.Yaw)
	return grid
}

type minimap struct {
	grid  [][]rune
	w, h  int
	scale float32
	eye   geom.Vec3
}

func (m minimap) cell(x, z float32) (col, row int, ok bool) {
	col = int(math32.Floor((x-m.eye[0])/m.scale)) + m.w/2
	row = int(math32.Floor((z-m.eye[2])/(2*m.scale))) + m.h/2
	return col, row, col >= 0 && col < m.w && row >= 0 && row < m.h
}

// fill paints every cell the box footprint touches.
func (m minimap) fill(b geom.Box, g rune) {
	c0, r0, _ := m.cell(b.Min[0], b.Min[2])
	c1, r1, _ := m.cell(b.Max[0], b.Max[2])
	for r := max(r0, 0); r <= min(r1, m.h-1); r++ {
		for c := max(c0, 0); c <= min(c1, m.w-1); c++ {
			m.grid[r][c] = g
		}
	}
}

// Arrow picks the glyph pointing along the heading on a north-up map.
func Arrow(yaw float32) rune {
	fwd, _ := geom.Basis(yaw)
	if math32.Abs(fwd[0]) > math32.Abs(fwd[2]) {
		if fwd[0] > 0 {
			return '>'
		}
		return '<'
	}
	if fwd[2] < 0 {
		return '^'
	}
	return 'v'
}
