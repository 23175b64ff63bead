// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package batch assembles a set of source files into ROM images.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ezrec/t16/cpu"
	"github.com/ezrec/t16/rom"
)

// Result is the outcome of assembling one source file.
type Result struct {
	Source  string       // Source file path.
	Output  string       // Image file path, empty on failure.
	Program *cpu.Program // Assembled program, nil on failure.
	Err     error        // Failure, if any.
}

// Batch assembles source files into images written next to them.
type Batch struct {
	Verbose bool // If set, verbosely logs the assembler actions.
	Jobs    int  // Files assembled at once; at least one.
}

// Scan lists the files in dir whose names end in suffix, ignoring case.
func Scan(dir string, suffix string) (sources []string, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	suffix = strings.ToLower(suffix)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), suffix) {
			continue
		}
		sources = append(sources, filepath.Join(dir, entry.Name()))
	}

	return
}

// File assembles a single source file and writes its image.
//
// A file that fails to assemble or write leaves no image behind.
func (b *Batch) File(source string) (res Result) {
	res.Source = source

	if b.Verbose {
		log.Printf("%v: assembling\n", source)
	}

	inf, err := os.Open(source)
	if err != nil {
		res.Err = &ErrSource{Path: source, Err: err}
		return
	}
	defer inf.Close()

	asm := &cpu.Assembler{Verbose: b.Verbose}
	prog, err := asm.Parse(inf)
	if err != nil {
		var syntax *cpu.ErrSyntax
		if !errors.As(err, &syntax) {
			err = &ErrSource{Path: source, Err: err}
		}
		res.Err = err
		return
	}

	output := rom.OutputName(source)
	err = writeImage(output, prog)
	if err != nil {
		res.Err = &ErrOutput{Path: output, Err: err}
		return
	}

	res.Output = output
	res.Program = prog

	return
}

// writeImage writes the image to a temporary file, then moves it into place.
func writeImage(path string, prog *cpu.Program) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	err = tmp.Chmod(0o644)
	if err != nil {
		return
	}

	err = rom.Write(tmp, prog.Image())
	if err != nil {
		return
	}

	err = tmp.Close()
	if err != nil {
		return
	}

	err = os.Rename(tmp.Name(), path)
	return
}

// Run assembles the sources, Jobs at a time.
//
// Results are in the order of sources. A failing file does not stop the
// others; only cancellation of ctx does, in which case the unstarted files
// carry the context error.
func (b *Batch) Run(ctx context.Context, sources []string) (results []Result, err error) {
	results = make([]Result, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, b.Jobs))

	for n, source := range sources {
		g.Go(func() error {
			err := ctx.Err()
			if err != nil {
				results[n] = Result{Source: source, Err: err}
				return err
			}
			results[n] = b.File(source)
			return nil
		})
	}

	err = g.Wait()
	return
}

// Report writes the operator report for the results, and returns the number
// of failed files.
func Report(w io.Writer, results []Result) (failed int) {
	rule := strings.Repeat("-", 40)

	for _, res := range results {
		fmt.Fprintln(w, rule)
		fmt.Fprintln(w, f("assembling %v", res.Source))

		var syntax *cpu.ErrSyntax
		switch {
		case res.Err == nil:
			fmt.Fprintln(w, f("output file: %v", res.Output))
			fmt.Fprintln(w, f("'%v' user instructions: %d", res.Source, len(res.Program.Opcodes)))
			fmt.Fprintln(w, f("image words (including 0000 at 0x00): %d", res.Program.ImageSize()))
			fmt.Fprintln(w, f("processed %v", res.Source))
		case errors.As(res.Err, &syntax):
			failed++
			fmt.Fprintln(w, f("assembly error in '%v' line %d: %v", res.Source, syntax.LineNo, syntax.Line))
			fmt.Fprintf(w, "  >>> %v\n", syntax.Err)
			fmt.Fprintln(w, f("failed %v", res.Source))
		default:
			failed++
			fmt.Fprintln(w, res.Err)
			fmt.Fprintln(w, f("failed %v", res.Source))
		}

		fmt.Fprintln(w, rule)
	}

	return
}
