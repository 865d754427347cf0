// Package recorder captures rendered frames from the default framebuffer and
// encodes them to a video file with ffmpeg.
package recorder

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"
	"go.uber.org/zap"

	"github.com/richinsley/goglpp/driver"
)

// numBuffers is how many frames may wait for the encoder before Capture
// blocks.
const numBuffers = 4

// ErrClosed is returned by Capture after Close.
var ErrClosed = errors.New("recorder is closed")

// Config describes the video to produce.
type Config struct {
	Output     string
	Width      int
	Height     int
	FPS        int
	Codec      string // "h264" or "hevc"
	FFMPEGPath string // empty uses ffmpeg from PATH
}

// Frame is one RGBA image read back from the framebuffer, bottom row first.
type Frame struct {
	Pixels []byte
	PTS    int64
}

// Recorder is the producer side of a frame pipeline whose consumer feeds an
// ffmpeg process. Capture and Close must be called from the render thread.
type Recorder struct {
	cfg    Config
	frames chan *Frame
	done   chan error
	pts    int64
	closed bool
}

// Start launches ffmpeg and returns a recorder ready for Capture.
func Start(cfg Config) (*Recorder, error) {
	return start(cfg, func(r io.Reader) error {
		inputArgs, outputArgs := Args(cfg)
		cmd := ffmpeg.Input("pipe:", inputArgs).
			Output(cfg.Output, outputArgs).
			OverWriteOutput().WithInput(r).ErrorToStdOut()
		if cfg.FFMPEGPath != "" {
			cmd = cmd.SetFfmpegPath(cfg.FFMPEGPath)
		}
		return cmd.Run()
	})
}

// start runs encode in its own goroutine, fed with raw frames through a pipe.
func start(cfg Config, encode func(io.Reader) error) (*Recorder, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.FPS <= 0 {
		return nil, fmt.Errorf("invalid frame rate %d", cfg.FPS)
	}
	r := &Recorder{
		cfg:    cfg,
		frames: make(chan *Frame, numBuffers),
		done:   make(chan error, 1),
	}
	go r.runEncoder(encode)
	Logger().Info("recording started",
		zap.String("output", cfg.Output),
		zap.String("codec", cfg.Codec),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("fps", cfg.FPS))
	return r, nil
}

// Args returns the ffmpeg input and output arguments for cfg. Frames arrive
// as raw RGBA bottom row first and are flipped upright by the filter graph.
func Args(cfg Config) (inputArgs ffmpeg.KwArgs, outputArgs ffmpeg.KwArgs) {
	inputArgs = ffmpeg.KwArgs{
		"f":       "rawvideo",
		"pix_fmt": "rgba",
		"s":       fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"r":       cfg.FPS,
	}

	outputArgs = ffmpeg.KwArgs{
		"vf":      "vflip",
		"pix_fmt": "yuv420p",
	}
	if cfg.Codec == "hevc" {
		outputArgs["c:v"] = "libx265"
	} else {
		outputArgs["c:v"] = "libx264"
	}
	if cfg.Codec == "hevc" && strings.EqualFold(filepath.Ext(cfg.Output), ".mp4") {
		outputArgs["tag:v"] = "hvc1"
	}
	return
}

// runEncoder is the consumer. It writes every frame to the encoder's input
// until frames is closed, then reports the encoder's exit status.
func (r *Recorder) runEncoder(encode func(io.Reader) error) {
	pipeReader, pipeWriter := io.Pipe()
	errc := make(chan error, 1)
	go func() {
		err := encode(pipeReader)
		// Unblock writes if the encoder quits early.
		pipeReader.CloseWithError(io.ErrClosedPipe)
		errc <- err
	}()

	var writeErr error
	for frame := range r.frames {
		if writeErr != nil {
			continue
		}
		if _, err := pipeWriter.Write(frame.Pixels); err != nil {
			writeErr = fmt.Errorf("failed to write frame %d: %w", frame.PTS, err)
			Logger().Error("encoder input closed", zap.Int64("pts", frame.PTS), zap.Error(err))
		}
	}
	pipeWriter.Close()
	r.done <- errors.Join(<-errc, writeErr)
}

// Capture reads the current framebuffer back and queues it for encoding.
func (r *Recorder) Capture(d driver.Driver) error {
	if r.closed {
		return ErrClosed
	}
	pixels := make([]byte, r.cfg.Width*r.cfg.Height*4)
	d.ReadPixels(0, 0, int32(r.cfg.Width), int32(r.cfg.Height), driver.RGBA, driver.UNSIGNED_BYTE, pixels)
	r.frames <- &Frame{Pixels: pixels, PTS: r.pts}
	r.pts++
	return nil
}

// Frames is the number of frames captured so far.
func (r *Recorder) Frames() int64 { return r.pts }

// Close flushes the queued frames and waits for ffmpeg to finish.
func (r *Recorder) Close() error {
	if r.closed {
		return ErrClosed
	}
	r.closed = true
	close(r.frames)
	err := <-r.done
	if err != nil {
		return fmt.Errorf("ffmpeg: %w", err)
	}
	Logger().Info("recording finished", zap.String("output", r.cfg.Output), zap.Int64("frames", r.pts))
	return nil
}
