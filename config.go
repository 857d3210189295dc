// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rcode

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-kratos/kratos/v2/log"
)

// DefaultMaxSegmentSize is the default cap, in bytes, on any single
// header-declared section size (signature/segment-table/body/type-block),
// per spec §5 ("default suggestion: 64 MiB per segment").
const DefaultMaxSegmentSize = 64 * 1024 * 1024

// Options configures a decode, mirroring the teacher's pe.Options: a plain
// struct with zero-value defaults filled in by the constructor.
type Options struct {
	// MaxSegmentSize rejects any declared section size above this many
	// bytes with InvalidFormat("oversize"). Zero means DefaultMaxSegmentSize.
	MaxSegmentSize uint32

	// Charset controls how ByteReader.ReadCString decodes strings
	// throughout the decode (signature-block records, type-block names).
	Charset Charset

	// Visitor receives the four body segments, in order, per spec §4.5.
	Visitor SegmentVisitor

	// Sink receives a printable record of every component as it's decoded,
	// per spec §5. Defaults to a no-op sink.
	Sink DiagSink

	// Logger receives, at Warn level, each anomaly collected after a
	// successful decode (see anomaly.go); these never abort the decode. A
	// digest block that does not parse as PKCS7 is not logged.
	Logger *log.Helper
}

func (o *Options) fillDefaults() {
	if o.MaxSegmentSize == 0 {
		o.MaxSegmentSize = DefaultMaxSegmentSize
	}
	if o.Sink == nil {
		o.Sink = noopSink{}
	}
	if o.Logger == nil {
		logger := log.NewStdLogger(os.Stdout)
		o.Logger = log.NewHelper(log.NewFilter(logger, log.FilterLevel(log.LevelError)))
	}
}

// FileConfig is the shape of an optional rcodedump.toml file supplying
// default Options for the CLI (library callers always construct Options
// directly; only cmd/rcodedump reads this file).
type FileConfig struct {
	MaxSegmentSize int64  `toml:"max_segment_size"`
	Charset        string `toml:"charset"`
	Verbose        bool   `toml:"verbose"`
}

// LoadFileConfig reads and decodes a TOML config file at path.
func LoadFileConfig(path string) (FileConfig, error) {
	var cfg FileConfig
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}

// Options converts a FileConfig into decoder Options.
func (c FileConfig) Options() *Options {
	opts := &Options{
		MaxSegmentSize: uint32(c.MaxSegmentSize),
	}
	if c.Charset == "utf-8" || c.Charset == "utf8" {
		opts.Charset = CharsetUTF8
	}
	return opts
}
