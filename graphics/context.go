package graphics

// Context is a window with a current OpenGL context that the demo loop
// renders into.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	// EndFrame presents the back buffer and processes pending window events.
	EndFrame()
	GetFramebufferSize() (int, int)
	// OnResize registers f to be called with the new framebuffer size.
	OnResize(f func(width, height int))
	Time() float64
}
