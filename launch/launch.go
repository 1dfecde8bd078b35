// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package launch performs the actions that follow a successful build:
// marking the image executable and running it.
package launch

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
)

// MakeExecutable grants execute permission wherever read permission is
// granted, as 'chmod +x' does.
func MakeExecutable(path string) (err error) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}

	mode := info.Mode().Perm()
	mode |= (mode & 0o444) >> 2

	return os.Chmod(path, mode)
}

// Launcher runs built images.
type Launcher struct {
	Verbose bool // If set, logs each launch and its exit status.

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewLauncher creates a launcher attached to the standard streams.
func NewLauncher() *Launcher {
	return &Launcher{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run executes the image at path and waits for it. A path without a
// directory is run from the current directory, never looked up in PATH.
// The exit status of the image is returned; err is only set when it could
// not be run at all.
func (l *Launcher) Run(ctx context.Context, path string) (status int, err error) {
	name := path
	if filepath.Base(name) == name {
		name = "." + string(filepath.Separator) + name
	}

	cmd := exec.CommandContext(ctx, name)
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	if l.Verbose {
		log.Printf("run %v", name)
	}

	err = cmd.Run()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		status = exitErr.ExitCode()
		err = nil
	}
	if err != nil {
		status = -1
		err = &ErrRuntime{Path: path, Err: err}
		return
	}

	if l.Verbose {
		log.Printf("%v: exit status %d", name, status)
	}

	return
}
