package sequences

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/louisbranch/lazyseq/internal/platform/config"
)

// Driver names accepted by -driver.
const (
	DriverAll      = "all"
	DriverPairwise = "pairwise"
	DriverNested   = "nested"
)

const incrementsEnv = "INCREMENTS"

// Config holds configuration for the sequences command.
type Config struct {
	Seed       int    `env:"SEED" envDefault:"9"`
	Increments []int  `env:"INCREMENTS" envDefault:"0,3,6" envSeparator:","`
	Depth      int    `env:"DEPTH" envDefault:"5"`
	Driver     string `env:"DRIVER" envDefault:"all"`
	Limit      int    `env:"LIMIT" envDefault:"0"`
	Locale     string `env:"LOCALE"`
}

// ParseConfig loads LAZYSEQ_ environment defaults and then parses flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	if fs == nil {
		return Config{}, errors.New("flag set is required")
	}
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	// env treats an empty value as unset and applies envDefault; a set but
	// empty LAZYSEQ_INCREMENTS means no increments.
	if v, ok := os.LookupEnv(config.EnvPrefix + incrementsEnv); ok && strings.TrimSpace(v) == "" {
		cfg.Increments = []int{}
	}

	fs.IntVar(&cfg.Seed, "seed", cfg.Seed, "seed for the pairwise chain")
	fs.Var((*intList)(&cfg.Increments), "increments", "comma-separated increments for the pairwise chain")
	fs.IntVar(&cfg.Depth, "depth", cfg.Depth, "level passed to the nested sequences driver")
	fs.StringVar(&cfg.Driver, "driver", cfg.Driver, "drivers to run (all|pairwise|nested)")
	fs.IntVar(&cfg.Limit, "limit", cfg.Limit, "max values printed per driver (0 = no limit)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "BCP 47 locale for digit grouping (empty = plain integers)")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the driver selection and bounds. The locale is checked when
// Run builds its formatter.
func (c Config) Validate() error {
	switch strings.TrimSpace(c.Driver) {
	case DriverAll, DriverPairwise, DriverNested:
	default:
		return fmt.Errorf("unknown driver %q (want %s, %s or %s)", c.Driver, DriverAll, DriverPairwise, DriverNested)
	}
	if c.Depth < 0 {
		return errors.New("depth must be >= 0")
	}
	if c.Limit < 0 {
		return errors.New("limit must be >= 0")
	}
	return nil
}

func (c Config) runs(driver string) bool {
	d := strings.TrimSpace(c.Driver)
	return d == DriverAll || d == driver
}

// intList is a flag.Value for comma-separated integers. An empty string is an
// empty list.
type intList []int

func (l *intList) String() string {
	if l == nil {
		return ""
	}
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (l *intList) Set(value string) error {
	values := []int{}
	for part := range strings.SplitSeq(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return fmt.Errorf("parse increment %q: %w", part, err)
		}
		values = append(values, v)
	}
	*l = values
	return nil
}
