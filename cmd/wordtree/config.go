// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/golang/glog"

	"github.com/gaissmai/wordtree"
)

// report formats
var formats = []string{"text", "json", "tree"}

// profile modes
var profiles = []string{"", "cpu", "mem"}

var errUsage = errors.New("usage")

// config of a single run, from flags and positional args.
type config struct {
	input  string // empty is stdin
	output string // empty is stdout

	maxLen   int
	maxNodes int
	encoding string
	format   string
	color    bool

	profile    string
	profileDir string
}

// register the flags at fs, the defaults are set in cfg.
func (cfg *config) register(fs *flag.FlagSet) {
	fs.IntVar(&cfg.maxLen, "maxlen", wordtree.DefaultMaxWordLen, "truncate words longer than `n` letters")
	fs.IntVar(&cfg.maxNodes, "maxnodes", 0, "abort after `n` distinct words, 0 is unlimited")
	fs.StringVar(&cfg.encoding, "encoding", "", "character set of the input, e.g. utf-16le, latin1 (default raw bytes)")
	fs.StringVar(&cfg.format, "format", "text", "report `format`: text, json or tree")
	fs.BoolVar(&cfg.color, "color", false, "bold words if the output is a terminal")
	fs.StringVar(&cfg.profile, "profile", "", "write a cpu or mem profile")
	fs.StringVar(&cfg.profileDir, "profiledir", ".", "write profiles to `dir`")
}

// setArgs takes input and output from the positional args,
// surplus args are ignored.
func (cfg *config) setArgs(args []string) {
	if len(args) > 2 {
		glog.Warningf("ignoring surplus arguments %q", args[2:])
	}
	if len(args) > 0 {
		cfg.input = args[0]
	}
	if len(args) > 1 {
		cfg.output = args[1]
	}
}

// validate all settings in one place.
func (cfg *config) validate() error {
	if cfg.maxLen < wordtree.MinWordLen {
		return errors.Wrapf(errUsage, "-maxlen %d is less than %d", cfg.maxLen, wordtree.MinWordLen)
	}
	if cfg.maxNodes < 0 {
		return errors.Wrapf(errUsage, "-maxnodes %d is negative", cfg.maxNodes)
	}
	if !slices.Contains(formats, cfg.format) {
		return errors.Wrapf(errUsage, "-format %q, want one of %q", cfg.format, formats)
	}
	if !slices.Contains(profiles, cfg.profile) {
		return errors.Wrapf(errUsage, "-profile %q, want cpu or mem", cfg.profile)
	}
	return nil
}

// parseConfig parses the command line args with fs.
func parseConfig(fs *flag.FlagSet, args []string) (*config, error) {
	cfg := new(config)
	cfg.register(fs)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.setArgs(fs.Args())

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
