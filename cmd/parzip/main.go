// Command parzip creates a ZIP archive from files and directories,
// compressing entries in parallel.
package main

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/jessevdk/go-flags"
	"github.com/parzip/parzip"
	"github.com/schollz/progressbar/v3"
)

var opts struct {
	Output  string `short:"o" long:"output" description:"path of the archive to create" required:"yes"`
	Level   int    `short:"l" long:"level" description:"compression level from 0 (none) to 9 (best)" default:"6"`
	Store   bool   `long:"store" description:"store entries without compression"`
	Jobs    int    `short:"j" long:"jobs" description:"number of compression workers, defaults to the CPU count"`
	Quiet   bool   `short:"q" long:"quiet" description:"suppress the progress bar"`
	Verbose bool   `short:"v" long:"verbose" description:"log compression passes to stderr"`
	Args    struct {
		Paths []flags.Filename `positional-arg-name:"path" description:"files and directories to archive" required:"yes"`
	} `positional-args:"yes"`
}

func main() {
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "parzip: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	level, err := parzip.NewCompressionLevel(opts.Level)
	if err != nil {
		return err
	}
	entryOpts := []parzip.EntryOption{parzip.WithCompressionLevel(level)}
	if opts.Store {
		entryOpts = append(entryOpts, parzip.WithCompressionType(parzip.Stored))
	}

	var archiveOpts []parzip.Option
	if opts.Verbose {
		archiveOpts = append(archiveOpts, parzip.WithLogger(slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)))
	}

	arc := parzip.New(archiveOpts...)
	entries := 0
	for _, path := range opts.Args.Paths {
		n, err := addPath(arc, filepath.Clean(string(path)), entryOpts)
		if err != nil {
			return err
		}
		entries += n
	}
	if entries == 0 {
		return fmt.Errorf("nothing to archive")
	}

	if err := arc.CompressWithWorkers(opts.Jobs); err != nil {
		return err
	}

	out, err := os.Create(opts.Output)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}
	defer out.Close()

	var sink io.Writer = out
	if !opts.Quiet {
		bar := progressbar.DefaultBytes(-1, "writing "+filepath.Base(opts.Output))
		defer bar.Close()
		sink = io.MultiWriter(out, bar)
	}
	written, err := arc.WriteToWithWorkers(sink, opts.Jobs)
	if err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close archive: %w", err)
	}

	fmt.Fprintf(os.Stderr, "\n%s: %d entries, %s\n", opts.Output, entries, humanize.Bytes(uint64(written)))
	return nil
}

// addPath registers a single file, or walks a directory registering every
// directory and regular file beneath it. Archive names are slash separated
// and relative to the path's parent, so archiving "src" produces entries
// under "src/".
func addPath(arc *parzip.Archive, root string, entryOpts []parzip.EntryOption) (int, error) {
	info, err := os.Stat(root)
	if err != nil {
		return 0, fmt.Errorf("stat %q: %w", root, err)
	}

	if !info.IsDir() {
		if err := arc.AddFile(root, filepath.Base(root), entryOpts...); err != nil {
			return 0, err
		}
		return 1, nil
	}

	base := filepath.Dir(root)
	entries := 0
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(base, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)

		switch {
		case d.IsDir():
			err = arc.AddDirectoryFromPath(path, name)
		case d.Type().IsRegular():
			err = arc.AddFile(path, name, entryOpts...)
		default:
			return nil
		}
		if err != nil {
			return err
		}
		entries++
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("walk %q: %w", root, err)
	}
	return entries, nil
}
