package mapgen

import "cityscape/internal/geom"

// Cell is one grid cell. A cell on either road line hosts no building.
type Cell struct {
	I, J  int
	RoadX bool
	RoadZ bool
}

// ClassifyCell derives the road flags for cell (i, j).
func ClassifyCell(i, j, roadEvery int) Cell {
	return Cell{I: i, J: j, RoadX: i%roadEvery == 0, RoadZ: j%roadEvery == 0}
}

// Road reports whether the cell lies on a road line.
func (c Cell) Road() bool {
	return c.RoadX || c.RoadZ
}

// RoadOffset returns the shift that pushes a building toward the adjacent road:
// negative for the first cell after a road, positive for the last cell before one.
func RoadOffset(local, roadEvery int, shift float32) float32 {
	if local == 1 {
		return -shift
	}
	if local == roadEvery-1 {
		return shift
	}
	return 0
}

// cellCenter maps a grid index to world space, centered around the origin.
func cellCenter(i, grid int, spacing float32) float32 {
	return (float32(i) - float32(grid)/2) * spacing
}

// buildings runs the grid pass: one cube per non-road cell, offset toward its road.
// When a cell touches roads on both axes one axis is kept at random.
func (g *generator) buildings() {
	o := g.opts
	size := o.BuildingSize
	shift := o.Spacing/2 - size/2
	for i := 0; i < o.Grid; i++ {
		for j := 0; j < o.Grid; j++ {
			cell := ClassifyCell(i, j, o.RoadEvery)
			if cell.Road() {
				continue
			}
			x := cellCenter(i, o.Grid, o.Spacing) + (g.rng.Float32()-0.5)*o.Jitter
			z := cellCenter(j, o.Grid, o.Spacing) + (g.rng.Float32()-0.5)*o.Jitter

			sx := RoadOffset(i%o.RoadEvery, o.RoadEvery, shift)
			sz := RoadOffset(j%o.RoadEvery, o.RoadEvery, shift)
			if sx != 0 && sz != 0 {
				if g.rng.Float32() < 0.5 {
					sz = 0
				} else {
					sx = 0
				}
			}

			center := geom.Vec3{x + sx, size / 2, z + sz}
			dims := geom.Vec3{size, size, size}
			obj := Object{
				Kind:     KindBuilding,
				Position: center,
				Size:     dims,
				Box:      geom.BoxAt(center, dims).Expand(o.Margin),
				Faces:    g.faces(dims),
			}
			for _, f := range obj.Faces {
				if f.Kind == FaceTexture {
					obj.Key = f.Source
					break
				}
			}
			g.commit(obj)
		}
	}
}

// faces picks what each side of a building shows. Top and bottom stay dark;
// a side is video with probability VideoChance, else a random texture, else dark
// when no texture loaded.
func (g *generator) faces(dims geom.Vec3) []Face {
	out := make([]Face, 6)
	for fi := range out {
		w := dims[0]
		if fi == 0 || fi == 1 {
			w = dims[2]
		}
		f := Face{Kind: FaceDark, Width: w, Height: dims[1]}
		switch {
		case fi == 2 || fi == 3:
		case g.src.Video != "" && g.rng.Float32() < g.opts.VideoChance:
			f.Kind = FaceVideo
			f.Source = g.src.Video
		case len(g.src.Textures) > 0:
			f.Kind = FaceTexture
			f.Source = g.src.Textures[g.rng.Intn(len(g.src.Textures))]
		}
		out[fi] = f
	}
	return out
}

// roads builds one ground strip per road line in each direction.
func (g *generator) roads() {
	o := g.opts
	width := o.Spacing * o.RoadWidthRatio
	for i := 0; i < o.Grid; i++ {
		if i%o.RoadEvery != 0 {
			continue
		}
		c := cellCenter(i, o.Grid, o.Spacing)
		g.layout.Roads = append(g.layout.Roads,
			Road{Center: geom.Vec3{c, 0.02, 0}, Size: geom.Vec3{width, 0.04, g.layout.Extent}},
			Road{Center: geom.Vec3{0, 0.02, c}, Size: geom.Vec3{g.layout.Extent, 0.04, width}},
		)
	}
}
