package render

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"phone3d/internal/scene"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// gpuMesh is a mesh uploaded as interleaved position/normal floats.
type gpuMesh struct {
	vao, vbo uint32
	count    int32
}

// Renderer draws a scene with one Phong program and composites the screen
// overlay on top.
type Renderer struct {
	meshProg uint32
	meshes   map[*scene.Mesh]*gpuMesh

	uViewProj   int32
	uModel      int32
	uColor      int32
	uSpecular   int32
	uEmissive   int32
	uShininess  int32
	uAmbient    int32
	uDirDir     int32
	uDirColor   int32
	uPointPos   int32
	uPointColor int32
	uPointRange int32
	uCameraPos  int32

	overlayProg uint32
	overlayVAO  uint32
	overlayVBO  uint32
	overlayTex  uint32
	ovURes      int32
	ovUTex      int32
	ovUOpacity  int32
}

// NewRenderer compiles the programs. A GL context must be current.
func NewRenderer() (*Renderer, error) {
	meshProg, err := linkProgram(meshVertSrc, meshFragSrc)
	if err != nil {
		return nil, fmt.Errorf("mesh program: %w", err)
	}
	overlayProg, err := linkProgram(overlayVertSrc, overlayFragSrc)
	if err != nil {
		gl.DeleteProgram(meshProg)
		return nil, fmt.Errorf("overlay program: %w", err)
	}

	r := &Renderer{
		meshProg:    meshProg,
		overlayProg: overlayProg,
		meshes:      make(map[*scene.Mesh]*gpuMesh),
	}

	gl.UseProgram(meshProg)
	uniform := func(name string) int32 {
		return gl.GetUniformLocation(meshProg, gl.Str(name+"\x00"))
	}
	r.uViewProj = uniform("uViewProj")
	r.uModel = uniform("uModel")
	r.uColor = uniform("uColor")
	r.uSpecular = uniform("uSpecular")
	r.uEmissive = uniform("uEmissive")
	r.uShininess = uniform("uShininess")
	r.uAmbient = uniform("uAmbient")
	r.uDirDir = uniform("uDirDir")
	r.uDirColor = uniform("uDirColor")
	r.uPointPos = uniform("uPointPos")
	r.uPointColor = uniform("uPointColor")
	r.uPointRange = uniform("uPointRange")
	r.uCameraPos = uniform("uCameraPos")

	// Overlay quad: streaming buffer of 6 vertices, pos(2) + uv(2).
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	stride := int32(4 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, 6*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	r.overlayVAO = vao
	r.overlayVBO = vbo

	gl.UseProgram(overlayProg)
	r.ovURes = gl.GetUniformLocation(overlayProg, gl.Str("uResolution\x00"))
	r.ovUTex = gl.GetUniformLocation(overlayProg, gl.Str("uTex\x00"))
	r.ovUOpacity = gl.GetUniformLocation(overlayProg, gl.Str("uOpacity\x00"))
	gl.Uniform1i(r.ovUTex, 0)

	gl.GenTextures(1, &r.overlayTex)
	gl.BindTexture(gl.TEXTURE_2D, r.overlayTex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.BindVertexArray(0)
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.94, 0.94, 0.94, 1)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, m := range r.meshes {
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteVertexArrays(1, &m.vao)
	}
	r.meshes = nil
	if r.overlayVBO != 0 {
		gl.DeleteBuffers(1, &r.overlayVBO)
	}
	if r.overlayVAO != 0 {
		gl.DeleteVertexArrays(1, &r.overlayVAO)
	}
	if r.overlayTex != 0 {
		gl.DeleteTextures(1, &r.overlayTex)
	}
	for _, id := range []uint32{r.meshProg, r.overlayProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

// upload returns the GPU copy of m, creating it on first use. Meshes are
// immutable after construction, so each is uploaded once.
func (r *Renderer) upload(m *scene.Mesh) *gpuMesh {
	if g, ok := r.meshes[m]; ok {
		return g
	}
	data := Interleave(m)
	g := &gpuMesh{count: int32(m.VertexCount())}
	gl.GenVertexArrays(1, &g.vao)
	gl.GenBuffers(1, &g.vbo)
	gl.BindVertexArray(g.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(&data[0]), gl.STATIC_DRAW)
	}
	stride := int32(6 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, glOffset(3*4))
	gl.BindVertexArray(0)
	r.meshes[m] = g
	return g
}

// DrawScene clears the framebuffer and draws every visible mesh node.
func (r *Renderer) DrawScene(sc *scene.Scene, cam *scene.Camera, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)
	gl.Disable(gl.BLEND)

	gl.UseProgram(r.meshProg)
	vp := Mat4f(cam.ViewProjection())
	gl.UniformMatrix4fv(r.uViewProj, 1, false, &vp[0])
	gl.Uniform3f(r.uCameraPos, float32(cam.Position[0]), float32(cam.Position[1]), float32(cam.Position[2]))

	ar, ag, ab := LightColor(sc.Ambient.Color, sc.Ambient.Intensity)
	gl.Uniform3f(r.uAmbient, ar, ag, ab)

	var dirs, cols [6]float32
	for i := 0; i < 2 && i < len(sc.Directional); i++ {
		d := sc.Directional[i]
		dirs[i*3], dirs[i*3+1], dirs[i*3+2] = float32(d.Position[0]), float32(d.Position[1]), float32(d.Position[2])
		cols[i*3], cols[i*3+1], cols[i*3+2] = LightColor(d.Color, d.Intensity)
	}
	gl.Uniform3fv(r.uDirDir, 2, &dirs[0])
	gl.Uniform3fv(r.uDirColor, 2, &cols[0])

	// The scene carries a single point light (the screen glow).
	gl.Uniform3f(r.uPointColor, 0, 0, 0)
	sc.Root.Walk(func(n *scene.Node, world mgl64.Mat4) {
		if n.Light == nil || n.Hidden {
			return
		}
		p := world.Col(3)
		gl.Uniform3f(r.uPointPos, float32(p[0]), float32(p[1]), float32(p[2]))
		pr, pg, pb := LightColor(n.Light.Color, n.Light.Intensity)
		gl.Uniform3f(r.uPointColor, pr, pg, pb)
		gl.Uniform1f(r.uPointRange, float32(n.Light.Range))
	})

	sc.Root.Walk(func(n *scene.Node, world mgl64.Mat4) {
		if n.Mesh == nil || n.Material == nil || n.Hidden {
			return
		}
		g := r.upload(n.Mesh)
		model := Mat4f(world)
		gl.UniformMatrix4fv(r.uModel, 1, false, &model[0])
		mat := n.Material
		cr, cg, cb := mat.Color.Floats()
		gl.Uniform3f(r.uColor, cr, cg, cb)
		sr, sg, sb := mat.Specular.Floats()
		gl.Uniform3f(r.uSpecular, sr, sg, sb)
		er, eg, eb := mat.Emissive.Floats()
		gl.Uniform3f(r.uEmissive, er, eg, eb)
		gl.Uniform1f(r.uShininess, float32(mat.Shininess))
		gl.BindVertexArray(g.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, g.count)
	})
	gl.BindVertexArray(0)
}

// DrawOverlay composites the overlay layer. Hidden or fully transparent
// placements draw nothing.
func (r *Renderer) DrawOverlay(l *OverlayLayer, fbW, fbH int) {
	p := l.Placement()
	if !p.Visible || p.Opacity <= 0 {
		return
	}
	img, changed := l.Image()

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA) // content is premultiplied

	gl.UseProgram(r.overlayProg)
	gl.Uniform2f(r.ovURes, float32(fbW), float32(fbH))
	gl.Uniform1f(r.ovUOpacity, float32(p.Opacity))

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.overlayTex)
	if changed {
		b := img.Bounds()
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(b.Dx()), int32(b.Dy()), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	}

	verts := QuadVertices(p)
	gl.BindVertexArray(r.overlayVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.overlayVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(&verts[0]))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

// Mat4f narrows a double-precision matrix for upload.
func Mat4f(m mgl64.Mat4) mgl32.Mat4 {
	var out mgl32.Mat4
	for i := range m {
		out[i] = float32(m[i])
	}
	return out
}

// LightColor premultiplies a light colour by its intensity.
func LightColor(c scene.RGB, intensity float64) (r, g, b float32) {
	r, g, b = c.Floats()
	k := float32(intensity)
	return r * k, g * k, b * k
}

// Interleave packs a mesh as x, y, z, nx, ny, nz per vertex.
func Interleave(m *scene.Mesh) []float32 {
	n := m.VertexCount()
	out := make([]float32, 0, n*6)
	for i := 0; i < n; i++ {
		out = append(out,
			m.Positions[i*3], m.Positions[i*3+1], m.Positions[i*3+2],
			m.Normals[i*3], m.Normals[i*3+1], m.Normals[i*3+2])
	}
	return out
}
