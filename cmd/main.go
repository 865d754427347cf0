package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/richinsley/goglpp/driver"
	"github.com/richinsley/goglpp/driver/gl45"
	"github.com/richinsley/goglpp/examples"
	glfwcontext "github.com/richinsley/goglpp/glfwcontext"
	"github.com/richinsley/goglpp/glpp"
	"github.com/richinsley/goglpp/graphics"
	inputs "github.com/richinsley/goglpp/inputs"
	options "github.com/richinsley/goglpp/options"
	"github.com/richinsley/goglpp/recorder"
)

func init() {
	runtime.LockOSThread()
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

// runExample opens the window, sets the example up and either shows it until
// the window is closed or records the requested number of frames.
func runExample(opts *options.Options, example examples.Example, logger *zap.Logger) error {
	recording := *opts.Record != ""

	if err := glfwcontext.InitGraphics(logger); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	defer glfwcontext.TerminateGraphics(logger)

	if *opts.Title == "" {
		*opts.Title = example.Title()
	}
	ctx, err := glfwcontext.New(opts, !recording, logger)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer ctx.Shutdown()

	d, err := gl45.New()
	if err != nil {
		return err
	}
	if *opts.Debug {
		d.EnableDebugOutput(logger.Named("gl"))
	}
	logger.Info("OpenGL ready", zap.String("version", d.Version()), zap.String("example", example.Name()))

	if err := example.Setup(d); err != nil {
		example.Destroy()
		return fmt.Errorf("failed to set up %s: %w", example.Name(), err)
	}
	defer example.Destroy()

	if recording {
		return record(ctx, d, example, opts)
	}

	paused := false
	ctx.RegisterKeyCallback(glfw.KeySpace, func() {
		paused = !paused
		logger.Info("animation", zap.Bool("paused", paused))
	})
	return loop(ctx, d, example, &paused)
}

// loop renders until the window is asked to close. While paused, time stands
// still and frames are redrawn with a zero delta. The framebuffer size is
// read once and then tracked through resize notifications.
func loop(ctx graphics.Context, d driver.Driver, example examples.Example, paused *bool) error {
	width, height := ctx.GetFramebufferSize()
	ctx.OnResize(func(w, h int) {
		width, height = w, h
	})

	var elapsed float64
	last := ctx.Time()
	for frame := 0; !ctx.ShouldClose(); frame++ {
		now := ctx.Time()
		delta := now - last
		last = now
		if *paused {
			delta = 0
		}
		elapsed += delta

		info := examples.FrameInfo{Frame: frame, Time: elapsed, Delta: delta, Width: int32(width), Height: int32(height)}
		if err := example.Frame(d, info); err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}
		ctx.EndFrame()
	}
	return nil
}

// frameSink receives finished frames; *recorder.Recorder is the production
// one.
type frameSink interface {
	Capture(d driver.Driver) error
	Close() error
}

// record renders a fixed number of frames at a fixed time step into a hidden
// window and hands each one to the recorder.
func record(ctx graphics.Context, d driver.Driver, example examples.Example, opts *options.Options) error {
	width, height := ctx.GetFramebufferSize()
	rec, err := recorder.Start(recorder.Config{
		Output:     *opts.Record,
		Width:      width,
		Height:     height,
		FPS:        *opts.FPS,
		Codec:      *opts.Codec,
		FFMPEGPath: *opts.FFMPEGPath,
	})
	if err != nil {
		return err
	}
	return recordFrames(ctx, d, example, rec, *opts.Frames, *opts.FPS)
}

// recordFrames renders frames into sink and always closes it, joining a
// rendering or capture error with whatever the encoder reports on close.
func recordFrames(ctx graphics.Context, d driver.Driver, example examples.Example, sink frameSink, frames, fps int) error {
	width, height := ctx.GetFramebufferSize()
	step := 1.0 / float64(fps)
	for i := 0; i < frames; i++ {
		info := examples.FrameInfo{Frame: i, Time: float64(i) * step, Delta: step, Width: int32(width), Height: int32(height)}
		if err := example.Frame(d, info); err != nil {
			return errors.Join(fmt.Errorf("frame %d: %w", i, err), sink.Close())
		}
		if err := sink.Capture(d); err != nil {
			return errors.Join(fmt.Errorf("capture frame %d: %w", i, err), sink.Close())
		}
		ctx.EndFrame()
	}
	return sink.Close()
}

func main() {
	opts := options.New(flag.CommandLine)
	flag.Parse()

	if *opts.Help {
		fmt.Println("goglpp OpenGL object wrapper demos")
		flag.PrintDefaults()
		return
	}
	if *opts.List {
		for _, name := range examples.Names() {
			fmt.Println(name)
		}
		return
	}

	if err := opts.Load(flag.CommandLine); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := opts.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := newLogger(*opts.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	glpp.SetLogger(logger.Named("glpp"))
	inputs.SetLogger(logger.Named("inputs"))
	examples.SetLogger(logger.Named("examples"))
	recorder.SetLogger(logger.Named("recorder"))

	example, err := examples.New(*opts.Example)
	if err != nil {
		logger.Fatal("invalid example", zap.Error(err))
	}
	switch e := example.(type) {
	case *examples.Quad:
		e.LogoPath = *opts.Logo
	case *examples.NBody:
		e.Bodies = *opts.Bodies
	}
	if err := runExample(opts, example, logger); err != nil {
		logger.Fatal("example failed", zap.String("example", example.Name()), zap.Error(err))
	}
	if *opts.Record != "" {
		logger.Info("recording written", zap.String("output", *opts.Record))
	}
}
