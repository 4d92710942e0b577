// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// artifactMode is the permission of every file written into a vault folder.
const artifactMode = 0o600

// fileOps are the filesystem calls used on the write path. Tests replace
// them to inject failures at a precise step.
type fileOps struct {
	write  func(f *os.File, data []byte) (int, error)
	rename func(oldpath, newpath string) error
	link   func(oldname, newname string) error
}

func defaultFileOps() fileOps {
	return fileOps{
		write:  func(f *os.File, data []byte) (int, error) { return f.Write(data) },
		rename: os.Rename,
		link:   os.Link,
	}
}

// osFolder is the [Folder] implementation backed by a local directory.
type osFolder struct {
	path string
	ops  fileOps
}

// NewOSFolder returns a [Folder] for the directory at path. The path is made
// absolute and cleaned; it must name an existing directory.
func NewOSFolder(path string) (Folder, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve folder path: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFolderNotFound, abs)
		}
		return nil, fmt.Errorf("stat folder: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, abs)
	}

	return &osFolder{path: abs, ops: defaultFileOps()}, nil
}

// ID implements [Folder].
func (f *osFolder) ID() string {
	return f.path
}

// Exists implements [Folder].
func (f *osFolder) Exists(ctx context.Context, name string) (bool, error) {
	target, err := f.resolve(ctx, name)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(target)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("stat %s: %w", name, err)
	}
}

// ReadFile implements [Folder].
func (f *osFolder) ReadFile(ctx context.Context, name string) ([]byte, error) {
	target, err := f.resolve(ctx, name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, name)
		}
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

// WriteFile implements [Folder]. The data goes to a temporary file in the
// same directory, which is synced and renamed over the target; the directory
// is synced afterwards so the rename survives a power loss.
func (f *osFolder) WriteFile(ctx context.Context, name string, data []byte) error {
	log := logger.FromContext(ctx)

	target, err := f.resolve(ctx, name)
	if err != nil {
		return err
	}

	tmpPath, err := f.writeTemp(name, data)
	if err != nil {
		log.Err(err).Str("func", "osFolder.WriteFile").Str("folder", f.path).Str("artifact", name).
			Msg("failed to stage artifact")
		return err
	}

	if err = f.ops.rename(tmpPath, target); err != nil {
		os.Remove(tmpPath)
		log.Err(err).Str("func", "osFolder.WriteFile").Str("folder", f.path).Str("artifact", name).
			Msg("failed to rename artifact into place")
		return fmt.Errorf("rename %s into place: %w", name, err)
	}

	f.syncDir()
	return nil
}

// CreateFile implements [Folder]. The staged temporary file is hard-linked
// to the target name, which fails if the target exists; the temporary name
// is removed in every case.
func (f *osFolder) CreateFile(ctx context.Context, name string, data []byte) error {
	log := logger.FromContext(ctx)

	target, err := f.resolve(ctx, name)
	if err != nil {
		return err
	}

	tmpPath, err := f.writeTemp(name, data)
	if err != nil {
		log.Err(err).Str("func", "osFolder.CreateFile").Str("folder", f.path).Str("artifact", name).
			Msg("failed to stage artifact")
		return err
	}
	defer os.Remove(tmpPath)

	if err = f.ops.link(tmpPath, target); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrArtifactExists, name)
		}
		log.Err(err).Str("func", "osFolder.CreateFile").Str("folder", f.path).Str("artifact", name).
			Msg("failed to link artifact into place")
		return fmt.Errorf("link %s into place: %w", name, err)
	}

	f.syncDir()
	return nil
}

// writeTemp writes data to a new temporary file next to the artifact and
// returns its path. Write, sync, close, in that order; on any failure the
// temporary file is removed.
func (f *osFolder) writeTemp(name string, data []byte) (string, error) {
	tmp, err := os.CreateTemp(f.path, "."+name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temporary file for %s: %w", name, err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if err = tmp.Chmod(artifactMode); err != nil {
		tmp.Close()
		return "", fmt.Errorf("chmod temporary file for %s: %w", name, err)
	}
	if _, err = f.ops.write(tmp, data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write temporary file for %s: %w", name, err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return "", fmt.Errorf("sync temporary file for %s: %w", name, err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("close temporary file for %s: %w", name, err)
	}

	success = true
	return tmpPath, nil
}

// syncDir makes a completed rename or link durable. Errors are ignored:
// some platforms cannot fsync a directory, and the artifact itself is
// already complete.
func (f *osFolder) syncDir() {
	dir, err := os.Open(f.path)
	if err != nil {
		return
	}
	dir.Sync()
	dir.Close()
}

func (f *osFolder) resolve(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidArtifactName, name)
	}
	return filepath.Join(f.path, name), nil
}
