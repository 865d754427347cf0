package drivertest

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/richinsley/goglpp/driver"
)

// decl is one top-level interface or uniform declaration found in a shader.
type decl struct {
	qualifier string // "uniform", "in" or "out"
	typ       string
	name      string
	size      int32 // array length, 1 for scalars
	location  int32 // explicit layout location, -1 when absent
	used      bool  // referenced outside its own declaration
}

type source struct {
	stage uint32
	decls []decl
	log   string
	ok    bool
}

var (
	declRE     = regexp.MustCompile(`^\s*(?:layout\s*\(([^)]*)\)\s*)?(?:(?:flat|smooth|noperspective|centroid)\s+)?(uniform|in|out|attribute|varying)\s+(?:(?:highp|mediump|lowp)\s+)?(\w+)\s+(\w+)\s*(?:\[\s*(\d*)\s*\])?\s*;`)
	locationRE = regexp.MustCompile(`location\s*=\s*(\d+)`)
	mainRE     = regexp.MustCompile(`\bvoid\s+main\s*\(`)
)

// compileSource models what a GLSL front end reports for src: declarations,
// an info log and the compile status.
func compileSource(stage uint32, src string) *source {
	s := &source{stage: stage, ok: true}
	var logs []string
	fail := func(line int, format string, args ...any) {
		s.ok = false
		logs = append(logs, fmt.Sprintf("0:%d(1): error: %s", line, fmt.Sprintf(format, args...)))
	}

	lines := strings.Split(src, "\n")
	first := 0
	for first < len(lines) && strings.TrimSpace(lines[first]) == "" {
		first++
	}
	if first == len(lines) || !strings.HasPrefix(strings.TrimSpace(lines[first]), "#version") {
		fail(first+1, "missing #version directive")
	}

	depth := 0
	stripped := make([]string, len(lines))
	for i, line := range lines {
		if idx := strings.Index(line, "//"); idx >= 0 {
			line = line[:idx]
		}
		stripped[i] = line
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#error") {
			fail(i+1, "%s", strings.TrimSpace(strings.TrimPrefix(trimmed, "#error")))
		}
		depth += strings.Count(line, "{") - strings.Count(line, "}")
		if depth < 0 {
			fail(i+1, "syntax error, unexpected '}'")
			depth = 0
		}
		if strings.Contains(trimmed, "gl_FragColor") && stage == driver.FRAGMENT_SHADER {
			logs = append(logs, fmt.Sprintf("0:%d(1): warning: `gl_FragColor' is deprecated", i+1))
		}
	}
	if depth != 0 {
		fail(len(lines), "syntax error, unexpected end of file")
	}
	body := strings.Join(stripped, "\n")
	if !mainRE.MatchString(body) {
		fail(len(lines), "entry point main() not found")
	}

	for _, line := range stripped {
		m := declRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		d := decl{qualifier: m[2], typ: m[3], name: m[4], size: 1, location: -1}
		switch d.qualifier {
		case "attribute":
			d.qualifier = "in"
		case "varying":
			if stage == driver.VERTEX_SHADER {
				d.qualifier = "out"
			} else {
				d.qualifier = "in"
			}
		}
		if m[5] != "" {
			n, _ := strconv.Atoi(m[5])
			d.size = int32(n)
		}
		if lm := locationRE.FindStringSubmatch(m[1]); lm != nil {
			n, _ := strconv.Atoi(lm[1])
			d.location = int32(n)
		}
		uses := regexp.MustCompile(`\b` + regexp.QuoteMeta(d.name) + `\b`).FindAllStringIndex(body, -1)
		d.used = len(uses) > 1
		s.decls = append(s.decls, d)
	}

	s.log = strings.Join(logs, "\n")
	if s.log != "" {
		s.log += "\n"
	}
	return s
}

func (s *source) find(qualifier, name string) (decl, bool) {
	for _, d := range s.decls {
		if d.qualifier == qualifier && d.name == name {
			return d, true
		}
	}
	return decl{}, false
}

// glslTypes maps GLSL type names onto the enum GetActiveUniform reports.
var glslTypes = map[string]uint32{
	"float":       driver.FLOAT,
	"vec2":        driver.FLOAT_VEC2,
	"vec3":        driver.FLOAT_VEC3,
	"vec4":        driver.FLOAT_VEC4,
	"int":         driver.INT,
	"ivec2":       driver.INT_VEC2,
	"ivec3":       driver.INT_VEC3,
	"ivec4":       driver.INT_VEC4,
	"uint":        driver.UNSIGNED_INT,
	"uvec2":       driver.UNSIGNED_INT_VEC2,
	"uvec3":       driver.UNSIGNED_INT_VEC3,
	"uvec4":       driver.UNSIGNED_INT_VEC4,
	"bool":        driver.BOOL,
	"mat2":        driver.FLOAT_MAT2,
	"mat3":        driver.FLOAT_MAT3,
	"mat4":        driver.FLOAT_MAT4,
	"sampler1D":   driver.SAMPLER_1D,
	"sampler2D":   driver.SAMPLER_2D,
	"sampler3D":   driver.SAMPLER_3D,
	"samplerCube": driver.SAMPLER_CUBE,
}

// slots is the number of consecutive attribute locations a type occupies.
func slots(typ string) int32 {
	switch typ {
	case "mat2":
		return 2
	case "mat3":
		return 3
	case "mat4":
		return 4
	}
	return 1
}

// pipelineOrder is the order in which graphics stages pass interface blocks.
var pipelineOrder = []uint32{
	driver.VERTEX_SHADER,
	driver.TESS_CONTROL_SHADER,
	driver.TESS_EVALUATION_SHADER,
	driver.GEOMETRY_SHADER,
	driver.FRAGMENT_SHADER,
}

var stageNames = map[uint32]string{
	driver.VERTEX_SHADER:          "vertex",
	driver.TESS_CONTROL_SHADER:    "tessellation control",
	driver.TESS_EVALUATION_SHADER: "tessellation evaluation",
	driver.GEOMETRY_SHADER:        "geometry",
	driver.FRAGMENT_SHADER:        "fragment",
	driver.COMPUTE_SHADER:         "compute",
}
