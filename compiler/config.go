package compiler

import (
	"log"
	"os"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/casm/elf32"
)

const (
	DEFAULT_OUTPUT = "a.out" // Image path when none is given.
)

// Config holds the build settings shared by the configuration file and
// the command line.
type Config struct {
	Output  string // Image path.
	Run     bool   // Run the image after a successful build.
	Verbose bool   // Log lexer and encoder actions.
	Listing bool   // Print the program listing.
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{Output: DEFAULT_OUTPUT}
}

// configPredeclared are the names visible to a configuration file.
var configPredeclared = starlark.StringDict{
	"ENTRY":       starlark.MakeInt(elf32.ENTRY),
	"HEADER_SIZE": starlark.MakeInt(elf32.HEADER_SIZE),
}

// LoadConfig evaluates a Starlark configuration file over the defaults.
// When src is nil the file at path is read.
//
//	output = "hello"
//	run = True
func LoadConfig(path string, src any) (cfg Config, err error) {
	cfg = DefaultConfig()

	defer func() {
		if err != nil {
			err = &ErrConfig{Path: path, Err: err}
		}
	}()

	if src == nil {
		src, err = os.ReadFile(path)
		if err != nil {
			return
		}
	}

	thread := &starlark.Thread{
		Name: "config",
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", path, msg)
		},
	}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, thread, path, src, configPredeclared)
	if err != nil {
		return
	}

	if value, ok := globals["output"]; ok {
		str, ok := value.(starlark.String)
		if !ok || len(str) == 0 {
			err = ErrConfigType("output")
			return
		}
		cfg.Output = string(str)
	}

	flags := map[string]*bool{
		"run":     &cfg.Run,
		"verbose": &cfg.Verbose,
		"listing": &cfg.Listing,
	}
	for name, dest := range flags {
		value, ok := globals[name]
		if !ok {
			continue
		}
		b, ok := value.(starlark.Bool)
		if !ok {
			err = ErrConfigType(name)
			return
		}
		*dest = bool(b)
	}

	return
}
