package options

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Options configures the demo runner. Fields point at flag values so a
// config file can fill in whatever was not given on the command line.
type Options struct {
	Example    *string
	Width      *int
	Height     *int
	Title      *string
	VSync      *bool
	Debug      *bool
	Config     *string // Optional TOML file with defaults for the other options
	Record     *string // Output video file; empty renders to a window instead
	Frames     *int    // Frames to record
	FPS        *int
	FFMPEGPath *string
	Codec      *string
	Logo       *string // Image file for the quad example; empty draws a procedural logo
	Bodies     *int    // Particle count for the nbody example
	List       *bool
	Help       *bool
}

// fileOptions is the TOML form of Options. Keys left out of the file are
// nil and keep their flag defaults.
type fileOptions struct {
	Example    *string `toml:"example"`
	Width      *int    `toml:"width"`
	Height     *int    `toml:"height"`
	Title      *string `toml:"title"`
	VSync      *bool   `toml:"vsync"`
	Debug      *bool   `toml:"debug"`
	Record     *string `toml:"record"`
	Frames     *int    `toml:"frames"`
	FPS        *int    `toml:"fps"`
	FFMPEGPath *string `toml:"ffmpeg"`
	Codec      *string `toml:"codec"`
	Logo       *string `toml:"logo"`
	Bodies     *int    `toml:"bodies"`
}

// New registers the options on fs.
func New(fs *flag.FlagSet) *Options {
	return &Options{
		Example:    fs.String("example", "triangle", "Example to run (see -list)"),
		Width:      fs.Int("width", 640, "Window width"),
		Height:     fs.Int("height", 480, "Window height"),
		Title:      fs.String("title", "", "Window title (defaults to the example's title)"),
		VSync:      fs.Bool("vsync", true, "Synchronize buffer swaps with the display"),
		Debug:      fs.Bool("debug", false, "Create a debug context and log driver messages"),
		Config:     fs.String("config", "", "TOML file with default option values"),
		Record:     fs.String("record", "", "Record frames to this video file instead of opening a window"),
		Frames:     fs.Int("frames", 300, "Number of frames to record"),
		FPS:        fs.Int("fps", 60, "Frames per second for recording"),
		FFMPEGPath: fs.String("ffmpeg", "", "Path to ffmpeg executable"),
		Codec:      fs.String("codec", "h264", "Video codec for recording (h264 or hevc)"),
		Logo:       fs.String("logo", "", "PNG or JPEG image for the quad example"),
		Bodies:     fs.Int("bodies", 5000, "Number of particles in the nbody example"),
		List:       fs.Bool("list", false, "List the available examples"),
		Help:       fs.Bool("help", false, "Show help message"),
	}
}

// Load applies the config file named by -config. Options set explicitly on
// the command line take precedence over the file. fs must have been parsed.
func (o *Options) Load(fs *flag.FlagSet) error {
	if *o.Config == "" {
		return nil
	}
	f, err := os.Open(*o.Config)
	if err != nil {
		return fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	var file fileOptions
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&file); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", *o.Config, err)
	}

	set := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	apply(set, "example", o.Example, file.Example)
	apply(set, "width", o.Width, file.Width)
	apply(set, "height", o.Height, file.Height)
	apply(set, "title", o.Title, file.Title)
	apply(set, "vsync", o.VSync, file.VSync)
	apply(set, "debug", o.Debug, file.Debug)
	apply(set, "record", o.Record, file.Record)
	apply(set, "frames", o.Frames, file.Frames)
	apply(set, "fps", o.FPS, file.FPS)
	apply(set, "ffmpeg", o.FFMPEGPath, file.FFMPEGPath)
	apply(set, "codec", o.Codec, file.Codec)
	apply(set, "logo", o.Logo, file.Logo)
	apply(set, "bodies", o.Bodies, file.Bodies)
	return nil
}

func apply[T any](set map[string]bool, name string, dst, src *T) {
	if src != nil && !set[name] {
		*dst = *src
	}
}

// Validate checks the option values for consistency.
func (o *Options) Validate() error {
	var errs []error
	if *o.Width <= 0 || *o.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid size %dx%d", *o.Width, *o.Height))
	}
	if *o.Record != "" {
		if *o.FPS <= 0 {
			errs = append(errs, fmt.Errorf("fps must be positive, got %d", *o.FPS))
		}
		if *o.Frames <= 0 {
			errs = append(errs, fmt.Errorf("frames must be positive, got %d", *o.Frames))
		}
	}
	if *o.Bodies <= 0 {
		errs = append(errs, fmt.Errorf("bodies must be positive, got %d", *o.Bodies))
	}
	switch *o.Codec {
	case "h264", "hevc":
	default:
		errs = append(errs, fmt.Errorf("unsupported codec %q", *o.Codec))
	}
	return errors.Join(errs...)
}
