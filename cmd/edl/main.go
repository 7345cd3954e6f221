// Command edl decodes EDL containers found by one or more glob patterns.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/macfork/edl"
	"github.com/macfork/edl/internal/resultcache"
)

func main() {
	cacheDir := flag.String("cache", "", "directory for a persistent decode result cache")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: edl decode [-cache dir] <pattern>...\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 || args[0] != "decode" {
		flag.Usage()
		os.Exit(2)
	}
	flag.CommandLine.Parse(args[1:])
	patterns := flag.Args()
	if len(patterns) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var cache *resultcache.Cache
	if *cacheDir != "" {
		c, err := resultcache.New(*cacheDir)
		if err != nil {
			slog.Error("opening result cache", "err", err)
			os.Exit(1)
		}
		defer c.Close()
		cache = c
	}

	status := 0
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			slog.Error("expanding pattern", "pattern", pattern, "err", err)
			status = 1
			continue
		}
		for _, path := range matches {
			if err := decodeOne(path, cache); err != nil {
				slog.Error("decoding", "path", path, "err", err)
				status = 1
			}
		}
	}
	os.Exit(status)
}

func decodeOne(path string, cache *resultcache.Cache) error {
	start := time.Now()

	var (
		out []byte
		err error
	)
	if cache != nil {
		f, openErr := os.Open(path)
		if openErr != nil {
			return openErr
		}
		defer f.Close()
		info, statErr := f.Stat()
		if statErr != nil {
			return statErr
		}
		out, err = cache.Decompress(f, info.Size())
	} else {
		out, err = edl.DecompressFile(path)
	}
	if err != nil {
		return err
	}

	outPath := path + ".out"
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return err
	}

	slog.Info("decoded",
		"path", path,
		"out", outPath,
		"bytes", len(out),
		"elapsed", time.Since(start))
	return nil
}
