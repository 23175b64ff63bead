// Package config loads assembler settings from a Starlark file.
//
// A configuration file assigns any of the globals below. Names starting
// with '_' and function definitions are free for the file's own use.
//
//	dir = "src"          # directory scanned for sources
//	suffix = ".asm"      # source file suffix, case-insensitive
//	jobs = cpu_count     # files assembled at once
//	verbose = False      # log every source line
//	lang = "zh-CN"       # message language, empty for the user locale
package config

import (
	"os"
	"runtime"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// DEFAULT_FILE is loaded, if present, when no file is named.
const DEFAULT_FILE = "t16.star"

// Config holds the assembler settings.
type Config struct {
	Dir     string // Directory scanned for sources.
	Suffix  string // Source file suffix.
	Jobs    int    // Files assembled at once.
	Verbose bool   // If set, verbosely logs the assembler actions.
	Lang    string // Message language as a BCP 47 tag.
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Dir:    ".",
		Suffix: ".asm",
		Jobs:   runtime.NumCPU(),
	}
}

// Load reads a configuration file on top of the defaults.
func Load(path string) (cfg Config, err error) {
	cfg = Default()

	src, err := os.ReadFile(path)
	if err != nil {
		return
	}

	err = cfg.Parse(path, src)
	return
}

// Parse executes Starlark source and applies its globals to cfg.
func (cfg *Config) Parse(filename string, src []byte) (err error) {
	thread := &starlark.Thread{Name: filename}
	opts := syntax.FileOptions{}
	predeclared := starlark.StringDict{
		"cpu_count": starlark.MakeInt(runtime.NumCPU()),
	}

	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, predeclared)
	if err != nil {
		return
	}

	for _, name := range globals.Keys() {
		value := globals[name]
		if strings.HasPrefix(name, "_") {
			continue
		}
		if _, ok := value.(*starlark.Function); ok {
			continue
		}

		switch name {
		case "dir":
			cfg.Dir, err = asString(name, value)
		case "suffix":
			cfg.Suffix, err = asString(name, value)
		case "lang":
			cfg.Lang, err = asString(name, value)
		case "verbose":
			cfg.Verbose, err = asBool(name, value)
		case "jobs":
			cfg.Jobs, err = asInt(name, value)
			if err == nil && cfg.Jobs < 1 {
				err = &ErrConfigType{Name: name, Want: "int > 0", Got: value.String()}
			}
		default:
			err = ErrConfigKey(name)
		}
		if err != nil {
			return
		}
	}

	return
}

func asString(name string, value starlark.Value) (str string, err error) {
	str, ok := starlark.AsString(value)
	if !ok {
		err = &ErrConfigType{Name: name, Want: "string", Got: value.Type()}
	}
	return
}

func asBool(name string, value starlark.Value) (b bool, err error) {
	sb, ok := value.(starlark.Bool)
	if !ok {
		err = &ErrConfigType{Name: name, Want: "bool", Got: value.Type()}
		return
	}
	b = bool(sb)
	return
}

func asInt(name string, value starlark.Value) (n int, err error) {
	n, err = starlark.AsInt32(value)
	if err != nil {
		err = &ErrConfigType{Name: name, Want: "int", Got: value.Type()}
	}
	return
}
