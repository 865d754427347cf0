package glfwcontext

import (
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/richinsley/goglpp/graphics"
	options "github.com/richinsley/goglpp/options"
)

var _ graphics.Context = (*Context)(nil)

// Context is a GLFW window with an OpenGL 4.5 core context.
type Context struct {
	window *glfw.Window
	logger *zap.Logger
	// Functions called on key presses.
	keyCallbacks map[glfw.Key]func()
	// Functions called with the new framebuffer size after a resize.
	resizeCallbacks []func(width, height int)
}

// New creates a window sized and titled from options. A hidden window is
// created when visible is false, which is how frames are recorded without
// showing anything on screen.
func New(options *options.Options, visible bool, logger *zap.Logger) (*Context, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 5)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if *options.Debug {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}

	if visible {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(*options.Width, *options.Height, *options.Title, nil, nil)
	if err != nil {
		return nil, err
	}

	c := &Context{
		window:       win,
		logger:       logger,
		keyCallbacks: make(map[glfw.Key]func()),
	}
	win.SetKeyCallback(c.glfwKeyCallback)
	win.SetFramebufferSizeCallback(c.glfwFramebufferSizeCallback)

	c.MakeCurrent()
	if *options.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	fbw, fbh := win.GetFramebufferSize()
	logger.Info("window created",
		zap.String("title", *options.Title),
		zap.Int("width", fbw),
		zap.Int("height", fbh),
		zap.Bool("visible", visible))
	return c, nil
}

// RegisterKeyCallback registers a function to be called when key is pressed.
func (c *Context) RegisterKeyCallback(key glfw.Key, f func()) {
	c.keyCallbacks[key] = f
}

// OnResize registers a function to be called with the new framebuffer size
// whenever the window is resized.
func (c *Context) OnResize(f func(width, height int)) {
	c.resizeCallbacks = append(c.resizeCallbacks, f)
}

func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}

	if action == glfw.Press {
		if callback, ok := c.keyCallbacks[key]; ok {
			callback()
		}
	}
}

func (c *Context) glfwFramebufferSizeCallback(w *glfw.Window, width, height int) {
	c.logger.Debug("framebuffer resized", zap.Int("width", width), zap.Int("height", height))
	for _, f := range c.resizeCallbacks {
		f(width, height)
	}
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// Shutdown destroys the window.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// InitGraphics initializes GLFW. Must be called from the main thread.
func InitGraphics(logger *zap.Logger) error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	if logger != nil {
		logger.Debug("GLFW initialized", zap.String("version", glfw.GetVersionString()))
	}
	return nil
}

// TerminateGraphics shuts GLFW down. Must be called from the main thread.
func TerminateGraphics(logger *zap.Logger) {
	glfw.Terminate()
	if logger != nil {
		logger.Debug("GLFW terminated")
	}
}
