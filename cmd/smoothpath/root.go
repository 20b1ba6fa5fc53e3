package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/smooth"
	"github.com/gogpu/smooth/preview"
	"github.com/gogpu/smooth/waypoints"
)

// demoWaypoints is used when no input files are given.
var demoWaypoints = []smooth.Point{
	smooth.Pt(10, 7), smooth.Pt(15, 10), smooth.Pt(20, 13), smooth.Pt(25, 12),
	smooth.Pt(30, 7), smooth.Pt(35, 8), smooth.Pt(40, 10),
}

// Config keys. Flags, config file entries and SMOOTHPATH_* environment
// variables share these names.
const (
	keyAlpha          = "alpha"
	keyTension        = "tension"
	keySamples        = "samples"
	keyLegacyDistance = "legacy-distance"
	keyWorkers        = "workers"
	keyPNG            = "png"
	keyLogLevel       = "log-level"
)

// newRootCmd builds the smoothpath command with its own viper instance,
// so each invocation (and each test) starts from a clean configuration.
func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "smoothpath [waypoint files...]",
		Short: "Smooth waypoint paths with a centripetal Catmull-Rom spline.",
		Long: `smoothpath reads waypoint lists (JSON, YAML, TOML or "<x>, <y>" lines)
and prints the densified path, one "<x>, <y>" per line. Without arguments
it smooths a built-in demo route.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initializeConfig(v, cfgFile); err != nil {
				return err
			}
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}
			return initializeLogger(v.GetString(keyLogLevel), cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, args)
		},
	}

	cmd.SetVersionTemplate(`{{printf "smoothpath version %s\n" .Version}}`)

	f := cmd.Flags()
	f.StringVarP(&cfgFile, "config", "c", "", "config file (default is ./smoothpath.yaml)")
	f.Float64(keyAlpha, smooth.DefaultAlpha, "centripetal exponent in (0, 1]")
	f.Float64(keyTension, smooth.DefaultTension, "curve tension, 0 = standard Catmull-Rom")
	f.Int(keySamples, smooth.DefaultSamplesPerSegment, "points emitted per waypoint span")
	f.Bool(keyLegacyDistance, false, "use the legacy x-only knot metric")
	f.Int(keyWorkers, 0, "goroutines used for several inputs (0 = GOMAXPROCS)")
	f.String(keyPNG, "", "write a preview of the first path to this PNG file")
	f.String(keyLogLevel, "info", "log level: debug, info, warn, error")

	return cmd
}

// initializeConfig reads the config file and environment variables.
// A missing default config file is not an error.
func initializeConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("smoothpath")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("SMOOTHPATH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}

// initializeLogger routes smooth's logging to w at the given level.
func initializeLogger(level string, w io.Writer) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	smooth.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
	return nil
}

func run(cmd *cobra.Command, v *viper.Viper, args []string) error {
	ctx := cmd.Context()
	logger := smooth.Logger()

	inputs, err := loadInputs(args)
	if err != nil {
		return err
	}

	s, err := smooth.New(
		smooth.WithAlpha(v.GetFloat64(keyAlpha)),
		smooth.WithTension(v.GetFloat64(keyTension)),
		smooth.WithSamplesPerSegment(v.GetInt(keySamples)),
		smooth.WithLegacyDistance(v.GetBool(keyLegacyDistance)),
		smooth.WithWorkers(v.GetInt(keyWorkers)),
	)
	if err != nil {
		return err
	}

	results, err := s.SmoothAll(ctx, inputs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	p := message.NewPrinter(language.English)
	for i, res := range results {
		if i > 0 {
			if _, err := io.WriteString(out, "\n"); err != nil {
				return err
			}
		}
		if err := waypoints.Encode(out, res); err != nil {
			return err
		}
		logger.Info(p.Sprintf("smoothed %d waypoints into %d points", inputs[i].Len(), res.Len()),
			"input", inputName(args, i))
	}

	if pngFile := v.GetString(keyPNG); pngFile != "" {
		opts := preview.DefaultOptions()
		opts.Caption = p.Sprintf("%s: %d points", inputName(args, 0), results[0].Len())
		img, err := preview.Render(results[0], inputs[0], opts)
		if err != nil {
			return err
		}
		if err := preview.SavePNG(pngFile, img); err != nil {
			return err
		}
		logger.Info("preview written", "file", pngFile)
	}
	return nil
}

// loadInputs reads every file concurrently, or returns the demo route.
func loadInputs(args []string) ([]*smooth.Path, error) {
	if len(args) == 0 {
		return []*smooth.Path{smooth.NewPath(demoWaypoints...)}, nil
	}

	paths := make([]*smooth.Path, len(args))
	var g errgroup.Group
	for i, name := range args {
		g.Go(func() error {
			p, err := waypoints.Load(name)
			if err != nil {
				return err
			}
			paths[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func inputName(args []string, i int) string {
	if len(args) == 0 {
		return "demo"
	}
	return args[i]
}
