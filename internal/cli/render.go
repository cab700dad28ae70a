package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hashvatar/pkg/hashvatar"
)

const (
	defaultFrames = 48
	defaultFPS    = 15
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string   // output file path; extension picks png or gif
	mode       string   // "gradient" or "dither"
	size       int      // square side in device-independent units
	scale      float64  // pixel-density multiplier
	dotScale   int      // dither cell size, 0 = derive from size
	tones      []string // hue constraints
	animated   bool     // render an animated GIF instead of a PNG
	frames     int      // GIF frame count
	fps        int      // GIF frame rate
	configPath string   // TOML config with defaults
}

// newRenderCmd creates the render command, which writes one avatar to
// disk. Static renders produce PNG; --animated produces a looping GIF
// rendered at a fixed timestep so identical invocations write identical
// bytes.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{
		frames: defaultFrames,
		fps:    defaultFPS,
	}

	cmd := &cobra.Command{
		Use:   "render <hash>",
		Short: "Render an avatar to a PNG or animated GIF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "output file (default <hash>.png or <hash>.gif)")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "render mode: gradient or dither")
	cmd.Flags().IntVarP(&opts.size, "size", "s", 0, "avatar side length (default 64)")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "pixel-density multiplier, capped at 3")
	cmd.Flags().IntVar(&opts.dotScale, "dot", 0, "dither cell size in pixels (default derived from size)")
	cmd.Flags().StringSliceVarP(&opts.tones, "tone", "t", nil, "tone constraint (named color, hex, or oklch literal; repeatable)")
	cmd.Flags().BoolVarP(&opts.animated, "animated", "a", false, "render an animated GIF")
	cmd.Flags().IntVar(&opts.frames, "frames", defaultFrames, "GIF frame count")
	cmd.Flags().IntVar(&opts.fps, "fps", defaultFPS, "GIF frame rate")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "TOML config file with render defaults")

	return cmd
}

func runRender(cmd *cobra.Command, hash string, opts renderOpts) error {
	logger := loggerFromContext(cmd.Context())

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	avOpts := hashvatar.Options{
		Hash:       hash,
		Size:       opts.size,
		PixelRatio: opts.scale,
		Mode:       hashvatar.Mode(opts.mode),
		DotScale:   opts.dotScale,
		Tones:      opts.tones,
	}
	cfg.apply(&avOpts)

	out := opts.output
	if out == "" {
		out = sanitizeFilename(hash) + outputExt(opts.animated)
	}

	p := newProgress(logger)
	var data []byte
	if opts.animated {
		data, err = hashvatar.RenderGIF(avOpts, opts.frames, opts.fps)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
	} else {
		av := hashvatar.New(avOpts)
		defer av.Destroy()
		logger.Debug("derived palette", "colors", paletteHex(av))
		data, err = av.Canvas.PNG()
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	}

	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}
	p.done(fmt.Sprintf("Wrote %s (%d bytes)", out, len(data)))
	return nil
}

func outputExt(animated bool) string {
	if animated {
		return ".gif"
	}
	return ".png"
}

// sanitizeFilename keeps hash-derived default filenames portable.
func sanitizeFilename(hash string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, strings.TrimSpace(hash))
	if mapped == "" {
		return "avatar"
	}
	return mapped
}

func paletteHex(av *hashvatar.Avatar) []string {
	out := make([]string, len(av.Colors))
	for i, c := range av.Colors {
		out[i] = c.Hex()
	}
	return out
}
