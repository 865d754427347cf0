package inputs

// Channel is a texture input a demo binds to a texture unit before drawing.
type Channel interface {
	// BindUnit binds the texture to texture unit unit.
	BindUnit(unit uint32)

	// Resolution returns the size of the input as a vec3.
	Resolution() [3]float32

	// SamplerType returns the GLSL sampler type (e.g., "sampler2D", "samplerCube").
	SamplerType() string

	// Destroy releases the texture.
	Destroy()
}
