// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"

	"github.com/tebeka/atexit"

	"github.com/ezrec/t16/batch"
	"github.com/ezrec/t16/config"
	"github.com/ezrec/t16/cpu"
	"github.com/ezrec/t16/rom"
	"github.com/ezrec/t16/translate"
)

// loadConfig reads the named configuration file, or the default one if it
// exists.
func loadConfig(path string) (cfg config.Config, err error) {
	if len(path) != 0 {
		return config.Load(path)
	}

	cfg, err = config.Load(config.DEFAULT_FILE)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = config.Default(), nil
	}

	return
}

// disassemble lists an image, one word per line.
func disassemble(w io.Writer, path string) (err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	words, err := rom.Read(inf)
	if err != nil {
		return
	}

	for addr, word := range words {
		_, err = fmt.Fprintf(w, "%02x: %04x  %v\n", addr, word, cpu.Code(word))
		if err != nil {
			return
		}
	}

	return
}

func main() {
	var configFile string
	var dir string
	var suffix string
	var jobs int
	var verbose bool
	var lang string
	var image string

	flag.StringVar(&configFile, "c", "", "Starlark configuration file (default "+config.DEFAULT_FILE+", if present)")
	flag.StringVar(&dir, "d", "", "Directory to scan for sources")
	flag.StringVar(&suffix, "s", "", "Source file suffix")
	flag.IntVar(&jobs, "j", 0, "Files to assemble at once")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&lang, "lang", "", "Message language, e.g. en-US or zh-CN")
	flag.StringVar(&image, "x", "", "_rom.hex image to disassemble")

	flag.Parse()

	cfg, err := loadConfig(configFile)
	if err != nil {
		atexit.Fatalf("%v: %v", os.Args[0], err)
	}

	// Flags given on the command line win over the configuration file.
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "d":
			cfg.Dir = dir
		case "s":
			cfg.Suffix = suffix
		case "j":
			cfg.Jobs = jobs
		case "v":
			cfg.Verbose = verbose
		case "lang":
			cfg.Lang = lang
		}
	})

	if len(cfg.Lang) != 0 {
		tag, err := translate.Parse(cfg.Lang)
		if err != nil {
			atexit.Fatalf("%v: %v", cfg.Lang, err)
		}
		translate.SetLanguage(tag)
	}

	if len(image) != 0 {
		err = disassemble(os.Stdout, image)
		if err != nil {
			atexit.Fatalf("%v: %v", image, err)
		}
		atexit.Exit(0)
	}

	sources := flag.Args()
	if len(sources) == 0 {
		sources, err = batch.Scan(cfg.Dir, cfg.Suffix)
		if err != nil {
			atexit.Fatalf("%v: %v", cfg.Dir, err)
		}
		if len(sources) == 0 {
			fmt.Println(translate.From("no %v files found in '%v'", cfg.Suffix, cfg.Dir))
		}
	}

	atexit.Register(func() {
		fmt.Println()
		fmt.Println(translate.From("all done"))
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	b := &batch.Batch{Verbose: cfg.Verbose, Jobs: cfg.Jobs}
	results, err := b.Run(ctx, sources)
	failed := batch.Report(os.Stdout, results)
	stop()

	if err != nil {
		atexit.Fatal(err)
	}
	if failed != 0 {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
