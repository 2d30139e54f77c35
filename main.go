package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/wave-animation/internal/animation"
	"github.com/iburimskiy/wave-animation/internal/config"
	"github.com/iburimskiy/wave-animation/internal/game"
	"github.com/iburimskiy/wave-animation/internal/options"
	"github.com/iburimskiy/wave-animation/internal/raster"
)

func main() {
	var (
		configPath   = flag.String("config", "", "path to a YAML options file")
		preset       = flag.String("preset", "", "preset name (classic, calm, sharp, uniform, spaced)")
		width        = flag.Int("width", config.WindowWidth, "snapshot viewport width")
		height       = flag.Int("height", config.WindowHeight, "snapshot viewport height")
		fullHeight   = flag.Bool("fullscreen-height", true, "size the canvas to the viewport height")
		snapshot     = flag.String("snapshot", "", "render one frame to this PNG file and exit")
		snapshotTime = flag.Float64("snapshot-time", 0, "timestamp of the snapshot frame in ms")
		debug        = flag.Bool("debug", false, "debug logging")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var partial options.Options
	if *configPath != "" {
		o, err := config.Load(*configPath)
		switch {
		case errors.Is(err, config.ErrUnknownPreset):
			log.Fatal().Err(err).Str("path", *configPath).Msg("invalid options file")
		case errors.Is(err, fs.ErrNotExist):
			log.Warn().Str("path", *configPath).Msg("options file not found; using defaults")
		case err != nil:
			log.Warn().Err(err).Str("path", *configPath).Msg("options load failed; using defaults")
		default:
			partial = o
		}
	}

	// Flags override the file, but only when given.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "preset":
			partial.Preset = preset
		case "fullscreen-height":
			partial.UseFullScreenHeight = fullHeight
		}
	})
	if partial.Preset != nil && !options.IsPreset(*partial.Preset) {
		log.Fatal().Str("preset", *partial.Preset).Strs("known", options.PresetNames()).Msg("unknown preset")
	}

	if *snapshot != "" {
		if err := renderSnapshot(*snapshot, float64(*width), float64(*height), *snapshotTime, partial); err != nil {
			log.Fatal().Err(err).Msg("snapshot failed")
		}
		return
	}

	g, err := game.New(partial, game.WithSavePath(*configPath))
	if err != nil {
		log.Fatal().Err(err).Msg("init failed")
	}
	if err := game.Run(g); err != nil {
		log.Fatal().Err(err).Msg("window loop failed")
	}
}

func renderSnapshot(path string, width, height, timeMs float64, partial options.Options) error {
	canvas, err := raster.Render(raster.Snapshot{
		Width:      width,
		Height:     height,
		PixelRatio: 1,
		TimeMs:     timeMs,
		Options:    partial,
	}, animation.WithLogger(log.Logger))
	if err != nil {
		return err
	}
	if err := canvas.SavePNG(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	b := canvas.Bounds()
	log.Info().Str("path", path).Int("width", b.Dx()).Int("height", b.Dy()).Msg("snapshot written")
	return nil
}
