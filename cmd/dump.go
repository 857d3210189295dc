// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"

	rcode "github.com/saferwall/rcode"
)

var (
	wg    sync.WaitGroup
	jobs  = make(chan string)
	cache = rcode.NewDecodeCache()
)

// loopFilesWorker drains jobs, dumping every regular file found directly
// under each directory it receives.
func loopFilesWorker(opts *rcode.Options) {
	for path := range jobs {
		entries, err := os.ReadDir(path)
		if err != nil {
			wg.Done()
			continue
		}
		for _, e := range entries {
			if !e.IsDir() {
				dumpOne(filepath.Join(path, e.Name()), opts)
			}
		}
		wg.Done()
	}
}

// walkDirs feeds every directory under path, recursively, to jobs.
func walkDirs(path string) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		return err
	}

	wg.Add(1)
	jobs <- path

	for _, e := range entries {
		if e.IsDir() {
			if err := walkDirs(filepath.Join(path, e.Name())); err != nil {
				return err
			}
		}
	}
	return nil
}

func isDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func dumpOne(path string, opts *rcode.Options) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return
	}

	fmt.Printf("==> %s\n", path)
	info, err := cache.Decode(data, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: decode failed: %v\n", path, err)
		return
	}

	fmt.Printf("version=%#x is64=%v class=%v timestamp=%d\n",
		info.GetVersion(), info.Is64Bit(), info.IsClass(), info.GetTimeStamp())
	if ti := info.GetTypeInfo(); ti != nil {
		fmt.Printf("type=%s parent=%s methods=%d properties=%d variables=%d events=%d tables=%d\n",
			ti.Name(), ti.ParentName(), len(ti.Methods()), len(ti.Properties()),
			len(ti.Variables()), len(ti.Events()), len(ti.Tables()))
	}
	for _, a := range info.Anomalies() {
		fmt.Printf("anomaly: %s\n", a)
	}
}

func runDump(cmd *cobra.Command, args []string) error {
	opts := loadOpts()
	if compressed {
		f, err := os.Create("rcodedump.zst")
		if err != nil {
			return err
		}
		defer f.Close()
		sink := rcode.NewHexDumpSink(f, rcode.Compressed(true))
		defer sink.Close()
		opts.Sink = sink
	}

	const workerCount = 4
	for i := 0; i < workerCount; i++ {
		go loopFilesWorker(opts)
	}

	for _, path := range args {
		if isDirectory(path) {
			if err := walkDirs(path); err != nil {
				return err
			}
		} else {
			dumpOne(path, opts)
		}
	}
	wg.Wait()
	close(jobs)
	return nil
}

// loadOpts builds decoder Options, applying an optional config file given
// through the root command's --config flag.
func loadOpts() *rcode.Options {
	if configPath == "" {
		return &rcode.Options{}
	}
	cfg, err := rcode.LoadFileConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v, using defaults\n", err)
		return &rcode.Options{}
	}
	return cfg.Options()
}
