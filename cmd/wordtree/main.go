// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command wordtree counts the words of a text and reports every
// distinct word with its count, in ascending byte-wise order.
//
// A word is a run of at least two ASCII letters, everything else
// separates words.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/golang/glog"
	"github.com/pkg/profile"

	"github.com/gaissmai/wordtree"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "wordtree - count the words of a text\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  wordtree [options] [input [output]]\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  input    text file to read, default stdin\n")
		fmt.Fprintf(os.Stderr, "  output   file for the report, default stdout\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  wordtree book.txt\n")
		fmt.Fprintf(os.Stderr, "  wordtree -encoding utf-16le -format json book.txt counts.json\n")
	}

	cfg, err := parseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
			flag.Usage()
		}
		os.Exit(2)
	}
	defer glog.Flush()

	if cfg.input == "" && isTerminal(os.Stdin) {
		fmt.Fprintln(os.Stderr, "reading words from terminal, end with Ctrl-D")
	}

	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, wordtree.ErrExhausted) {
			glog.Exitf("wordtree: %v", err)
		}
		glog.Errorf("%+v", err)
		fmt.Fprintln(os.Stderr, "wordtree:", err)
		glog.Flush()
		os.Exit(1)
	}
}

// run counts the words of the input and writes the report.
// Without input or output file stdin and stdout are used.
func run(cfg *config, stdin io.Reader, stdout io.Writer) (err error) {
	if cfg.profile != "" {
		mode := profile.CPUProfile
		if cfg.profile == "mem" {
			mode = profile.MemProfile
		}
		defer profile.Start(mode, profile.ProfilePath(cfg.profileDir), profile.Quiet, profile.NoShutdownHook).Stop()
	}

	in, inName := stdin, "stdin"
	if cfg.input != "" {
		f, err := os.Open(cfg.input)
		if err != nil {
			return errors.Wrap(err, "opening input")
		}
		defer f.Close()
		in, inName = f, cfg.input
	}

	tree := wordtree.New().WithNodeLimit(cfg.maxNodes)
	defer func() {
		released := tree.Destroy()
		if glog.V(1) {
			glog.Infof("released %d nodes", released)
		}
	}()

	if glog.V(1) {
		glog.Infof("counting words of %s", inName)
	}

	words, err := tree.Ingest(in, wordtree.IngestConfig{MaxWordLen: cfg.maxLen, Encoding: cfg.encoding})
	if err != nil {
		return errors.Wrapf(err, "counting words of %s", inName)
	}

	if glog.V(1) {
		glog.Infof("%d words, %d distinct, height %d", words, tree.Len(), tree.Height())
	}

	out := stdout
	if cfg.output != "" {
		f, err := os.Create(cfg.output)
		if err != nil {
			return errors.Wrap(err, "creating output")
		}
		defer func() {
			if cerr := f.Close(); err == nil && cerr != nil {
				err = errors.Wrap(cerr, "closing output")
			}
		}()
		out = f
	}

	bold := cfg.color && isTerminal(out)
	if err := report(out, tree, cfg.format, bold); err != nil {
		return errors.Wrap(err, "writing report")
	}

	return nil
}
