package config

import "flag"

var (
	flags            *flag.FlagSet
	flagConfig       *string
	flagDebug        *bool
	flagLogFile      *string
	flagSubdivisions *int
	flagZoom         *int
	flagDisplace     *bool
	flagNoise        *string
	flagSeed         *int64
	flagOctaves      *int
	flagWorkers      *int
	flagSaveConfig   *string
)

func init() {
	defineFlags()
}

func defineFlags() {
	flags = flag.NewFlagSet("planetgen", flag.ContinueOnError)
	flagConfig = flags.String("config", "", "Path to config file")
	flagDebug = flags.Bool("debug", false, "Enable debug logging")
	flagLogFile = flags.String("log-file", "", "Also write logs to this file")
	flagSubdivisions = flags.Int("subdivisions", 0, "Cube sphere grid points per face edge")
	flagZoom = flags.Int("zoom", 0, "Mercator tile zoom level")
	flagDisplace = flags.Bool("displace", false, "Apply noise elevation")
	flagNoise = flags.String("noise", "", "Noise backend (simplex, perlin)")
	flagSeed = flags.Int64("seed", 0, "Noise seed")
	flagOctaves = flags.Int("octaves", 0, "Noise octave count")
	flagWorkers = flags.Int("workers", 0, "Worker count (0 = one per CPU)")
	flagSaveConfig = flags.String("save-config", "", "Write the effective config to this path")
}

// ParseFlags parses command-line flags that follow the subcommand.
func ParseFlags(args []string) error {
	return flags.Parse(args)
}

// Args returns the arguments left after flag parsing.
func Args() []string {
	return flags.Args()
}

// PrintDefaults writes flag usage to stderr.
func PrintDefaults() {
	flags.PrintDefaults()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// SaveConfigPath returns the -save-config target, empty when not requested.
func SaveConfigPath() string {
	return *flagSaveConfig
}

// setFlags returns the names of flags given on the command line.
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// applyFlags applies CLI flag overrides to the config. Only flags present
// on the command line override, so zero values like -seed 0 still apply.
func applyFlags(cfg *Config) {
	set := setFlags()

	if set["debug"] && *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if set["log-file"] {
		cfg.Logging.LogFile = *flagLogFile
	}
	if set["subdivisions"] {
		cfg.Planet.Subdivisions = *flagSubdivisions
	}
	if set["zoom"] {
		cfg.Tile.Zoom = *flagZoom
	}
	if set["displace"] {
		cfg.Planet.Displace = *flagDisplace
		cfg.Tile.Displace = *flagDisplace
	}
	if set["noise"] {
		cfg.Noise.Backend = *flagNoise
	}
	if set["seed"] {
		cfg.Noise.Seed = *flagSeed
	}
	if set["octaves"] {
		cfg.Noise.Octaves = *flagOctaves
	}
	if set["workers"] {
		cfg.Runtime.Workers = *flagWorkers
	}
}
