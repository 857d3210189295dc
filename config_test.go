// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rcode

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFillDefaults(t *testing.T) {
	opts := &Options{}
	opts.fillDefaults()

	if opts.MaxSegmentSize != DefaultMaxSegmentSize {
		t.Errorf("MaxSegmentSize = %d, want %d", opts.MaxSegmentSize, DefaultMaxSegmentSize)
	}
	if opts.Sink == nil {
		t.Error("expected a default Sink")
	}
	if opts.Logger == nil {
		t.Error("expected a default Logger")
	}
}

func TestFillDefaultsPreservesExplicitValues(t *testing.T) {
	opts := &Options{MaxSegmentSize: 1024}
	opts.fillDefaults()

	if opts.MaxSegmentSize != 1024 {
		t.Errorf("MaxSegmentSize = %d, want 1024 to be preserved", opts.MaxSegmentSize)
	}
}

func TestLoadFileConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rcodedump.toml")
	contents := "max_segment_size = 2048\ncharset = \"utf-8\"\nverbose = true\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFileConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxSegmentSize != 2048 || !cfg.Verbose {
		t.Errorf("unexpected config: %+v", cfg)
	}

	opts := cfg.Options()
	if opts.MaxSegmentSize != 2048 {
		t.Errorf("MaxSegmentSize = %d, want 2048", opts.MaxSegmentSize)
	}
	if opts.Charset != CharsetUTF8 {
		t.Errorf("Charset = %v, want CharsetUTF8", opts.Charset)
	}
}

func TestLoadFileConfigMissingFile(t *testing.T) {
	_, err := LoadFileConfig(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
