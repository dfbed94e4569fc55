package render

import (
	"cityscape/internal/geom"
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type cached struct {
	mesh        rl.Mesh
	mtl         rl.Material
	texturedMtl rl.Material
}

// Primitives draws unit meshes (cube, quad) with the lit shaders. Meshes are
// created on first use so GPU resources are allocated after the window exists.
type Primitives struct {
	cache   map[string]cached
	viewPos geom.Vec3
	light   Light
}

// NewPrimitives returns an empty cache lit by l.
func NewPrimitives(l Light) *Primitives {
	return &Primitives{cache: make(map[string]cached), light: l}
}

// SetView sets the camera position for this frame's specular term.
func (p *Primitives) SetView(eye geom.Vec3) {
	p.viewPos = eye
}

func (p *Primitives) ensure(key string) (cached, bool) {
	if c, ok := p.cache[key]; ok {
		return c, true
	}
	var mesh rl.Mesh
	switch key {
	case "cube":
		mesh = rl.GenMeshCube(1, 1, 1)
	case "quad":
		// 1x1 in XZ facing +Y
		mesh = rl.GenMeshPlane(1, 1, 1, 1)
	default:
		return cached{}, false
	}
	mtl := rl.LoadMaterialDefault()
	if s := loadLitShader(); rl.IsShaderValid(s) {
		mtl.Shader = s
	}
	texturedMtl := rl.LoadMaterialDefault()
	if albedo := texturedMtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.White
	}
	if s := loadLitTexturedShader(); rl.IsShaderValid(s) {
		texturedMtl.Shader = s
	}
	c := cached{mesh: mesh, mtl: mtl, texturedMtl: texturedMtl}
	p.cache[key] = c
	return c, true
}

// Box draws a cube of size at center, turned by yaw around Y.
func (p *Primitives) Box(center, size geom.Vec3, yaw float32, tint rl.Color) {
	c, ok := p.ensure("cube")
	if !ok {
		return
	}
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tint
	}
	p.setUniforms(c.mtl.Shader)
	m := rl.MatrixMultiply(rl.MatrixScale(size[0], size[1], size[2]), rl.MatrixRotateY(yaw))
	m = rl.MatrixMultiply(m, rl.MatrixTranslate(center[0], center[1], center[2]))
	rl.DrawMesh(c.mesh, c.mtl, m)
}

// faceRot turns the +Y quad toward each cube face, in +X, -X, +Y, -Y, +Z, -Z order.
var faceRot = [6]func() rl.Matrix{
	func() rl.Matrix { return rl.MatrixRotateZ(-math32.Pi / 2) },
	func() rl.Matrix { return rl.MatrixRotateZ(math32.Pi / 2) },
	func() rl.Matrix { return rl.MatrixIdentity() },
	func() rl.Matrix { return rl.MatrixRotateX(math32.Pi) },
	func() rl.Matrix { return rl.MatrixRotateX(math32.Pi / 2) },
	func() rl.Matrix { return rl.MatrixRotateX(-math32.Pi / 2) },
}

var faceNormal = [6]geom.Vec3{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}}

// faceScale maps the quad's local X/Z to the face extents before rotation.
func faceScale(fi int, dims geom.Vec3) (sx, sz float32) {
	switch fi {
	case 0, 1:
		return dims[1], dims[2]
	case 2, 3:
		return dims[0], dims[2]
	default:
		return dims[0], dims[1]
	}
}

// Face draws face fi of the cube at center with size dims turned by yaw, pushed
// out by a hair so it never z-fights with the body. A zero texture draws tint only.
func (p *Primitives) Face(center, dims geom.Vec3, yaw float32, fi int, tex rl.Texture2D, tint rl.Color) {
	if fi < 0 || fi >= 6 {
		return
	}
	c, ok := p.ensure("quad")
	if !ok {
		return
	}
	sx, sz := faceScale(fi, dims)
	n := faceNormal[fi]
	half := geom.Vec3{dims[0] / 2, dims[1] / 2, dims[2] / 2}
	off := geom.Vec3{n[0]*half[0] + n[0]*0.01, n[1]*half[1] + n[1]*0.01, n[2]*half[2] + n[2]*0.01}
	pos := geom.Add(center, geom.RotateY(off, yaw))

	m := rl.MatrixMultiply(rl.MatrixScale(sx, 1, sz), faceRot[fi]())
	m = rl.MatrixMultiply(m, rl.MatrixRotateY(yaw))
	m = rl.MatrixMultiply(m, rl.MatrixTranslate(pos[0], pos[1], pos[2]))

	if rl.IsTextureValid(tex) {
		rl.SetMaterialTexture(&c.texturedMtl, rl.MapAlbedo, tex)
		if albedo := c.texturedMtl.GetMap(rl.MapAlbedo); albedo != nil {
			albedo.Color = tint
		}
		p.setUniforms(c.texturedMtl.Shader)
		rl.DrawMesh(c.mesh, c.texturedMtl, m)
		return
	}
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tint
	}
	p.setUniforms(c.mtl.Shader)
	rl.DrawMesh(c.mesh, c.mtl, m)
}

// Unload releases the meshes and shaders.
func (p *Primitives) Unload() {
	for k, c := range p.cache {
		rl.UnloadMesh(&c.mesh)
		rl.UnloadShader(c.mtl.Shader)
		rl.UnloadShader(c.texturedMtl.Shader)
		delete(p.cache, k)
	}
}
