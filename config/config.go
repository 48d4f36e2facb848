package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/ini.v1"

	"github.com/gostonefire/searchbench/interfaces"
	"github.com/gostonefire/searchbench/internal/hash"
)

// Args - Command line arguments as given, zero values meaning "not given"
type Args struct {
	ConfigPath string
	Sizes      string
	Iterations int
	OutDir     string
	HashAlg    string
	Seed       int64
	Debug      bool
	Banner     bool
}

// ParseArgs - Parses the command line into an Args struct
func ParseArgs() *Args {
	args := new(Args)

	flag.StringVar(&args.ConfigPath, "config", "", "path to an optional ini configuration file")
	flag.StringVar(&args.Sizes, "sizes", "", "comma separated dataset sizes, overrides the configuration file")
	flag.IntVar(&args.Iterations, "iterations", 0, "number of timed searches per structure and size")
	flag.StringVar(&args.OutDir, "out", "", "directory to write CSV results into")
	flag.StringVar(&args.HashAlg, "hash", "", "bucket selection algorithm for the hash table, crc32 or xxhash")
	flag.Int64Var(&args.Seed, "seed", 0, "random seed for dataset generation, 0 draws one from the clock")
	flag.BoolVar(&args.Debug, "debug", false, "enable debug output")
	flag.BoolVar(&args.Banner, "banner", true, "enable banner")

	flag.Parse()

	return args
}

// Config - The effective run configuration after merging defaults, an optional ini file
// and command line overrides, in that order.
type Config struct {
	Sizes      []int
	Iterations int
	OutDir     string
	HashAlg    string
	Seed       int64
	Debug      bool
	Banner     bool
}

// Load - Builds the effective configuration. Defaults cover a full run over the standard
// size ladder, the ini file (section "benchmark") overrides defaults and command line
// arguments override both.
//   - args is the parsed command line
//
// It returns:
//   - cfg is a pointer to the effective Config
//   - err is a normal Go Error which should be nil if everything went ok
func Load(args *Args) (cfg *Config, err error) {
	cfg = &Config{
		Sizes:      []int{100, 300, 500, 1000, 3000, 5000, 10000, 30000, 50000, 100000, 300000, 500000, 1000000},
		Iterations: 10000,
		OutDir:     "results",
		HashAlg:    "crc32",
		Debug:      args.Debug,
		Banner:     args.Banner,
	}

	if args.ConfigPath != "" {
		var f *ini.File
		f, err = ini.Load(args.ConfigPath)
		if err != nil {
			err = fmt.Errorf("error while loading configuration file: %s", err)
			return
		}

		section := f.Section("benchmark")
		if section.HasKey("sizes") {
			cfg.Sizes, err = parseSizes(section.Key("sizes").String())
			if err != nil {
				return
			}
		}
		if section.HasKey("iterations") {
			cfg.Iterations = section.Key("iterations").MustInt(cfg.Iterations)
		}
		if section.HasKey("out_dir") {
			cfg.OutDir = section.Key("out_dir").String()
		}
		if section.HasKey("hash_algorithm") {
			cfg.HashAlg = section.Key("hash_algorithm").String()
		}
		if section.HasKey("seed") {
			cfg.Seed = section.Key("seed").MustInt64(cfg.Seed)
		}
	}

	if args.Sizes != "" {
		cfg.Sizes, err = parseSizes(args.Sizes)
		if err != nil {
			return
		}
	}
	if args.Iterations > 0 {
		cfg.Iterations = args.Iterations
	}
	if args.OutDir != "" {
		cfg.OutDir = args.OutDir
	}
	if args.HashAlg != "" {
		cfg.HashAlg = args.HashAlg
	}
	if args.Seed != 0 {
		cfg.Seed = args.Seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	// Fail on an unknown algorithm name before any benchmarking starts
	_, err = cfg.HashAlgorithm()

	return
}

// HashAlgorithm - Returns the configured bucket selection algorithm
func (C *Config) HashAlgorithm() (alg interfaces.HashAlgorithm, err error) {
	switch C.HashAlg {
	case "", "crc32":
		alg = hash.NewCRC32Algorithm(0)
	case "xxhash":
		alg = hash.NewXXHashAlgorithm(0)
	default:
		err = fmt.Errorf("unknown hash algorithm %q, must be crc32 or xxhash", C.HashAlg)
	}

	return
}

// parseSizes - Parses a comma separated list of dataset sizes
func parseSizes(s string) (sizes []int, err error) {
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		var size int
		size, err = strconv.Atoi(part)
		if err != nil {
			err = fmt.Errorf("invalid dataset size %q", part)
			return
		}
		if size < 0 {
			err = fmt.Errorf("dataset sizes must not be negative, got %d", size)
			return
		}
		sizes = append(sizes, size)
	}

	if len(sizes) == 0 {
		err = fmt.Errorf("no dataset sizes given in %q", s)
	}

	return
}
