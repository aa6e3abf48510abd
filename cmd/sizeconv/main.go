package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/sizeconv/internal/cliconfig"
	"github.com/bft-labs/sizeconv/pkg/convert"
	"github.com/bft-labs/sizeconv/pkg/log"
	"github.com/bft-labs/sizeconv/pkg/resolution"
)

const longHelp = `Convert lengths between millimeters, points and pixels.

Pixel conversions use --dpi when given. Otherwise the display resolution is
detected once (static settings, a display profile file, or the EDID of the
first connected monitor) and falls back to 96 DPI when nothing can be measured.

Configuration is read from $HOME/.sizeconv/config.toml, then SIZECONV_*
environment variables, then flags.`

var exampleUsage = strings.TrimSpace(`
  sizeconv convert --from mm --to px --dpi 300 210 297
  sizeconv convert --from pt --to px --direct 12 14.5
  sizeconv print-to-screen --print-dpi 600 10 12
  sizeconv info
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// app carries what every subcommand needs once configuration is resolved.
type app struct {
	cfg       cliconfig.Config
	cfgPath   string
	detector  *resolution.Detector
	converter *convert.Converter
	logger    log.Logger
	logOut    io.Writer
}

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		l := cliconfig.Logger()
		l.Error().Err(err).Msg("sizeconv")
		os.Exit(1)
	}
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	a := &app{cfg: cliconfig.DefaultConfig(), logOut: logOut}

	root := &cobra.Command{
		Use:           "sizeconv",
		Short:         "Convert lengths between millimeters, points and pixels",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.sizeconv/config.toml)")
	f.Float64Var(&a.cfg.DPI, "dpi", a.cfg.DPI, "resolution in dots per inch (0 detects the display)")
	f.StringVar(&a.cfg.Probe, "probe", a.cfg.Probe, "display probe: auto, edid, profile, static or none")
	f.Float64Var(&a.cfg.PixelsPerInch, "pixels-per-inch", a.cfg.PixelsPerInch, "pixels per inch for the static probe")
	f.Float64Var(&a.cfg.DeviceScale, "device-scale", a.cfg.DeviceScale, "device pixel ratio applied to probed values")
	f.StringVar(&a.cfg.DRMDir, "drm-dir", a.cfg.DRMDir, "sysfs directory with display connectors")
	f.StringVar(&a.cfg.ProfilePath, "profile", a.cfg.ProfilePath, "display profile TOML file")
	f.Float64Var(&a.cfg.FallbackDPI, "fallback-dpi", a.cfg.FallbackDPI, "resolution used when detection fails")
	f.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level: debug, info, warn, error")
	if err := f.MarkHidden("drm-dir"); err != nil {
		l := cliconfig.Logger()
		l.Info().Err(err).Msg("failed to hide drm-dir flag")
	}

	root.AddCommand(
		newConvertCmd(a),
		newPrintCmd(a),
		newInfoCmd(a),
		newWatchCmd(a),
	)
	return root
}

// load applies file, environment and flag configuration in that order of
// increasing precedence and builds the detector.
func (a *app) load(cmd *cobra.Command) error {
	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&a.cfg, fc, changed); err != nil {
			return err
		}
	}
	if err := cliconfig.ApplyEnvConfig(&a.cfg, changed); err != nil {
		return err
	}
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a.logger = log.NewConsoleAdapter(a.logOut, a.cfg.LogLevel)
	cliconfig.SetLogLevel(a.cfg.LogLevel)
	a.detector = cliconfig.NewDetector(a.cfg, a.logger)
	a.converter = convert.New(a.detector)
	return nil
}

// convertOptions returns the per-call options implied by configuration.
func (a *app) convertOptions() []convert.Option {
	opts := []convert.Option{convert.WithDirect(a.cfg.Direct)}
	if a.cfg.DPI > 0 {
		opts = append(opts, convert.WithResolution(a.cfg.DPI))
	}
	return opts
}

func parseValues(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %q is not a number", i+1, s)
		}
		values[i] = v
	}
	return values, nil
}

func printValues(w io.Writer, values []float64) {
	for _, v := range values {
		fmt.Fprintln(w, strconv.FormatFloat(v, 'f', -1, 64))
	}
}
