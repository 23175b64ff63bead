// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package rom reads and writes program images in the Logisim "v2.0 raw"
// hex format.
package rom

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	HEADER        = "v2.0 raw" // First line of every image.
	OUTPUT_SUFFIX = "_rom.hex" // Replaces the source extension.
)

// OutputName returns the image file name for a source file name.
func OutputName(source string) string {
	return strings.TrimSuffix(source, filepath.Ext(source)) + OUTPUT_SUFFIX
}

// Write writes the header, then one lowercase 4 digit hex line per word.
func Write(w io.Writer, words iter.Seq[uint16]) (err error) {
	out := bufio.NewWriter(w)

	_, err = fmt.Fprintln(out, HEADER)
	if err != nil {
		return
	}

	for word := range words {
		_, err = fmt.Fprintf(out, "%04x\n", word)
		if err != nil {
			return
		}
	}

	err = out.Flush()
	return
}

// Read parses an image back into its words.
//
// Entries are whitespace separated. A run of repeated words may be written
// as "N*word", and '#' starts a comment, as Logisim does.
func Read(r io.Reader) (words []uint16, err error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != HEADER {
		err = scanner.Err()
		if err == nil {
			err = ErrHeader
		}
		return
	}

	lineno := 1
	for scanner.Scan() {
		lineno += 1
		line, _, _ := strings.Cut(scanner.Text(), "#")

		for _, entry := range strings.Fields(line) {
			count := uint64(1)
			hex := entry
			if before, after, ok := strings.Cut(entry, "*"); ok {
				count, err = strconv.ParseUint(before, 10, 16)
				if err != nil {
					err = &ErrWord{LineNo: lineno, Text: entry}
					return
				}
				hex = after
			}

			var word uint64
			word, err = strconv.ParseUint(hex, 16, 16)
			if err != nil {
				err = &ErrWord{LineNo: lineno, Text: entry}
				return
			}

			for range count {
				words = append(words, uint16(word))
			}
		}
	}

	err = scanner.Err()
	return
}
