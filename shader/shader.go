package shader

import (
	"fmt"
	"strings"

	inputs "github.com/richinsley/goglpp/inputs"
)

const version = "#version 450 core\n"

// ────────────────────────────────── Triangle ──────────────────────────────────

// Attribute locations are left to the linker and looked up by name.
const TriangleVertex = version + `
uniform mat4 MVP;
in vec3 vCol;
in vec2 vPos;
out vec3 color;
void main()
{
    gl_Position = MVP * vec4(vPos, 0.0, 1.0);
    color = vCol;
}
`

const TriangleFragment = version + `
in vec3 color;
out vec4 fragColor;
void main()
{
    fragColor = vec4(color, 1.0);
}
`

// ─────────────────────────────────── Quad ────────────────────────────────────

const QuadVertex = version + `
layout(location = 0) in vec2 xy;
layout(location = 1) in vec2 tex;

out vec2 vTex;

uniform mat4 MVP;

void main() {
    gl_Position = MVP * vec4(xy, 0.0, 1.0);
    vTex = tex;
}
`

// QuadFragment samples the "logo" channel.
const QuadFragment = `
in vec2 vTex;

out vec4 fragColor;

void main() {
    fragColor = texture(logo, vTex);
}
`

// ─────────────────────────────────── Axes ────────────────────────────────────

const AxesVertex = version + `
layout(location = 0) in mat4 model;

out mat4 vModel;

void main() {
    vModel = model;
}
`

// AxesGeometry turns every point into three colored unit axes.
const AxesGeometry = version + `
layout(points) in;
layout(line_strip, max_vertices = 6) out;

in mat4 vModel[1];

uniform mat4 viewPersp;

out vec3 color;

void emitAxis(vec3 direction) {
  gl_Position = viewPersp*vModel[0]*vec4(0, 0, 0, 1);
  EmitVertex();
  gl_Position = viewPersp*vModel[0]*vec4(direction, 1);
  EmitVertex();
  EndPrimitive();
}

void main() {
  color = vec3(1, 0, 0);
  emitAxis(vec3(1, 0, 0));

  color = vec3(0, 1, 0);
  emitAxis(vec3(0, 1, 0));

  color = vec3(0, 0, 1);
  emitAxis(vec3(0, 0, 1));
}
`

const AxesFragment = version + `
in vec3 color;

out vec4 fragColor;

void main()
{
    fragColor = vec4(color, 1);
}
`

// ─────────────────────────────────── Dices ───────────────────────────────────

// DicesVertex reads a per-instance model matrix from locations 0-3.
const DicesVertex = version + `
layout(location = 0) in mat4 model;
layout(location = 4) in vec3 pos;

uniform mat4 viewPersp;

out vec3 vTex;

void main() {
  gl_Position = viewPersp*model*vec4(pos, 1);
  vTex = pos;
}
`

// DicesFragment samples the "faces" channel.
const DicesFragment = `
in vec3 vTex;

out vec4 fragColor;

void main()
{
    fragColor = texture(faces, vTex);
}
`

// ────────────────────────────────── N-body ───────────────────────────────────

// NBodyCompute advances one particle per work group by dt, reading every
// particle from binding 0 and writing the result to binding 1.
const NBodyCompute = version + `
layout(local_size_x = 1, local_size_y = 1, local_size_z = 1) in;

struct Particle {
  float px, py, pz;
  float vx, vy, vz;
  float ax, ay, az;
};

layout(std430, binding = 0) buffer input_particles {
    Particle inputs[];
};

layout(std430, binding = 1) buffer output_particles {
    Particle outputs[];
};

uniform float dt;

void main() {
  const uint id = gl_WorkGroupID.x;
  const vec3 p = vec3(inputs[id].px, inputs[id].py, inputs[id].pz);
  const vec3 v = vec3(inputs[id].vx, inputs[id].vy, inputs[id].vz);
  const vec3 a = vec3(inputs[id].ax, inputs[id].ay, inputs[id].az);

  vec3 a_o = vec3(0);
  for (uint i = 0; i < inputs.length(); ++i) {
    if (i == id) continue;
    const vec3 d = vec3(inputs[i].px, inputs[i].py, inputs[i].pz)-p;
    a_o += 1/dot(d, d)*normalize(d);
  }

  const vec3 v_o = v+(a+a_o)/2*dt;
  const vec3 p_o = p+(v+v_o)/2*dt;

  outputs[id].px = p_o.x;
  outputs[id].py = p_o.y;
  outputs[id].pz = p_o.z;
  outputs[id].vx = v_o.x;
  outputs[id].vy = v_o.y;
  outputs[id].vz = v_o.z;
  outputs[id].ax = a_o.x;
  outputs[id].ay = a_o.y;
  outputs[id].az = a_o.z;
}
`

// NBodyVertex colors particles by the magnitude of their acceleration,
// looked up in the "palette" channel.
const NBodyVertex = `
layout(location = 0) in vec3 pos;
layout(location = 1) in vec3 vel;
layout(location = 2) in vec3 acc;

uniform mat4 view;
uniform mat4 persp;

const float zFar = 1000;
const float accMax = 1;

out vec3 vColor;

void main() {
  const vec4 p_cam = view*vec4(pos, 1);
  gl_Position = persp*p_cam;
  gl_PointSize = max(1, (1-length(p_cam.xyz)/zFar)*20);
  vColor = texture(palette, clamp(length(acc)/accMax, 0, 1)).rgb;
}
`

const NBodyFragment = version + `
in vec3 vColor;

out vec4 fragColor;

void main()
{
    fragColor = vec4(vColor, 1);
}
`

// ──────────────────────────── Sampler declarations ───────────────────────────

// SamplerBinding names the sampler uniform a texture channel is read through.
type SamplerBinding struct {
	Name    string
	Channel inputs.Channel
}

// GeneratePreamble returns the version line followed by one sampler uniform
// per binding, typed after its channel.
func GeneratePreamble(bindings []SamplerBinding) string {
	var b strings.Builder
	b.WriteString(version)
	for _, sb := range bindings {
		sampler := "sampler2D"
		if sb.Channel != nil {
			sampler = sb.Channel.SamplerType()
		}
		fmt.Fprintf(&b, "uniform %s %s;\n", sampler, sb.Name)
	}
	return b.String()
}

// GetShader combines the preamble for bindings with body.
func GetShader(bindings []SamplerBinding, body string) string {
	return GeneratePreamble(bindings) + body
}
