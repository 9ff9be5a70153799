package render

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Mesh vertex shader: flat-shaded triangles with per-vertex normals.
const meshVertSrc = `#version 410 core

layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;

uniform mat4 uViewProj;
uniform mat4 uModel;

out vec3 vWorldPos;
out vec3 vNormal;

void main() {
    vec4 world = uModel * vec4(aPos, 1.0);
    vWorldPos = world.xyz;
    vNormal = mat3(uModel) * aNormal;
    gl_Position = uViewProj * world;
}
` + "\x00"

// Mesh fragment shader: Phong with ambient, two directional lights and one
// point light with linear falloff to its range.
const meshFragSrc = `#version 410 core

uniform vec3 uColor;
uniform vec3 uSpecular;
uniform vec3 uEmissive;
uniform float uShininess;

uniform vec3 uAmbient;
uniform vec3 uDirDir[2];
uniform vec3 uDirColor[2];
uniform vec3 uPointPos;
uniform vec3 uPointColor;
uniform float uPointRange;
uniform vec3 uCameraPos;

in vec3 vWorldPos;
in vec3 vNormal;
out vec4 FragColor;

vec3 shade(vec3 n, vec3 l, vec3 v, vec3 light) {
    float diff = max(dot(n, l), 0.0);
    vec3 h = normalize(l + v);
    float spec = diff > 0.0 ? pow(max(dot(n, h), 0.0), uShininess) : 0.0;
    return light * (uColor * diff + uSpecular * spec);
}

void main() {
    vec3 n = normalize(vNormal);
    vec3 v = normalize(uCameraPos - vWorldPos);
    vec3 c = uColor * uAmbient + uEmissive;
    for (int i = 0; i < 2; i++) {
        c += shade(n, normalize(uDirDir[i]), v, uDirColor[i]);
    }
    vec3 toLight = uPointPos - vWorldPos;
    float dist = length(toLight);
    float falloff = uPointRange > 0.0 ? clamp(1.0 - dist / uPointRange, 0.0, 1.0) : 1.0;
    c += shade(n, toLight / max(dist, 1e-4), v, uPointColor * falloff);
    FragColor = vec4(c, 1.0);
}
` + "\x00"

// Overlay vertex shader: pixel-space quad (y down) with texture coordinates.
const overlayVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;

uniform vec2 uResolution;

out vec2 vUV;

void main() {
    vUV = aUV;
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
}
` + "\x00"

const overlayFragSrc = `#version 410 core

uniform sampler2D uTex;
uniform float uOpacity;

in vec2 vUV;
out vec4 FragColor;

void main() {
    FragColor = texture(uTex, vUV) * uOpacity;
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile %s shader: %s", shaderKind(shaderType), strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func shaderKind(shaderType uint32) string {
	if shaderType == gl.VERTEX_SHADER {
		return "vertex"
	}
	return "fragment"
}

// linkProgram compiles both stages and links them. Shader objects are
// released whether or not linking succeeds.
func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
