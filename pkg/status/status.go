// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 FileKind says how a file reached the build
type FileKind int

const (
	KindUnknown   FileKind = iota
	KindProcessed          // Debug calls stripped before writing
	KindCopied             // Bytes copied unchanged
)

// String returns a string representation of FileKind
func (k FileKind) String() string {
	switch k {
	case KindProcessed:
		return "processed"
	case KindCopied:
		return "copied"
	default:
		return "unknown"
	}
}

// 📄 FileInfo contains metadata about a file written to the build
type FileInfo struct {
	Path     string      // Path relative to the build root, slash separated
	Kind     FileKind    // How the file was produced
	Size     int64       // Bytes written
	Mode     os.FileMode // File permissions
	Removed  int         // Debug calls removed, processed files only
	Checksum string      // SHA-256 of the written content
}

// 💾 FileManager handles all writes below the build root
type FileManager interface {
	// Root returns the absolute build root
	Root() string
	// Reset deletes the build root if present and recreates it empty
	Reset(ctx context.Context) error
	// WriteFile writes content to path, creating parent directories
	WriteFile(ctx context.Context, path string, content []byte, mode os.FileMode) (FileInfo, error)
	// CopyFile copies src to path, keeping mode and modification time when possible
	CopyFile(ctx context.Context, src, path string) (FileInfo, error)
	// FileExists reports whether path exists below the build root
	FileExists(ctx context.Context, path string) (bool, error)
}

// 📈 StatusReporter tracks what was written
type StatusReporter interface {
	TrackFile(ctx context.Context, info FileInfo)
	ListFiles(ctx context.Context) []FileInfo
}

// 🔧 Manager implements both FileManager and StatusReporter
type Manager struct {
	baseDir   string        // Absolute build root
	formatter FileFormatter // Formatter for status messages

	files map[string]FileInfo // Tracked files, accessed from one goroutine
}

// 🏭 New creates a new status manager rooted at baseDir
func New(baseDir string) (*Manager, error) {
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, errors.Errorf("resolving build root: %w", err)
	}
	return &Manager{
		baseDir:   abs,
		formatter: NewDefaultFileFormatter(),
		files:     make(map[string]FileInfo),
	}, nil
}

// 🔒 getAbsPath returns the absolute path for a given relative path
func (m *Manager) getAbsPath(path string) string {
	return filepath.Join(m.baseDir, filepath.FromSlash(path))
}

// 🔍 calculateChecksum generates a SHA-256 hash of the content
func calculateChecksum(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// FileManager interface implementation

func (m *Manager) Root() string {
	return m.baseDir
}

func (m *Manager) Reset(ctx context.Context) error {
	zerolog.Ctx(ctx).Debug().Str("root", m.baseDir).Msg("resetting build root")

	if err := os.RemoveAll(m.baseDir); err != nil {
		return errors.Errorf("removing build root: %w", err)
	}
	if err := os.MkdirAll(m.baseDir, 0755); err != nil {
		return errors.Errorf("creating build root: %w", err)
	}

	m.files = make(map[string]FileInfo)

	return nil
}

func (m *Manager) WriteFile(ctx context.Context, path string, content []byte, mode os.FileMode) (FileInfo, error) {
	absPath := m.getAbsPath(path)

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return FileInfo{}, errors.Errorf("creating parent directories: %w", err)
	}

	if err := writeFileAtomic(absPath, content, mode.Perm()); err != nil {
		return FileInfo{}, err
	}

	return FileInfo{
		Path:     path,
		Size:     int64(len(content)),
		Mode:     mode.Perm(),
		Checksum: calculateChecksum(content),
	}, nil
}

func (m *Manager) CopyFile(ctx context.Context, src, path string) (FileInfo, error) {
	absPath := m.getAbsPath(path)

	// Open source file
	srcFile, err := os.Open(src)
	if err != nil {
		return FileInfo{}, errors.Errorf("opening source file: %w", err)
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return FileInfo{}, errors.Errorf("reading source file info: %w", err)
	}

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return FileInfo{}, errors.Errorf("creating parent directories: %w", err)
	}

	// Create destination file
	dstFile, err := os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return FileInfo{}, errors.Errorf("creating destination file: %w", err)
	}

	// Copy content
	hash := sha256.New()
	n, err := io.Copy(io.MultiWriter(dstFile, hash), srcFile)
	if err != nil {
		dstFile.Close()
		return FileInfo{}, errors.Errorf("copying file content: %w", err)
	}
	if err := dstFile.Close(); err != nil {
		return FileInfo{}, errors.Errorf("closing destination file: %w", err)
	}

	// Metadata is best effort
	if err := os.Chmod(absPath, srcInfo.Mode().Perm()); err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("path", path).Msg("could not preserve mode")
	}
	if err := os.Chtimes(absPath, srcInfo.ModTime(), srcInfo.ModTime()); err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("path", path).Msg("could not preserve modification time")
	}

	return FileInfo{
		Path:     path,
		Size:     n,
		Mode:     srcInfo.Mode().Perm(),
		Checksum: hex.EncodeToString(hash.Sum(nil)),
	}, nil
}

func (m *Manager) FileExists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(m.getAbsPath(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Errorf("checking file existence: %w", err)
}

// StatusReporter interface implementation

func (m *Manager) TrackFile(ctx context.Context, info FileInfo) {
	m.files[info.Path] = info
	zerolog.Ctx(ctx).Debug().
		Str("path", info.Path).
		Str("kind", info.Kind.String()).
		Int64("size", info.Size).
		Int("removed", info.Removed).
		Str("checksum", info.Checksum).
		Msg(m.formatter.FormatFileOperation(info))
}

func (m *Manager) ListFiles(ctx context.Context) []FileInfo {
	files := make([]FileInfo, 0, len(m.files))
	for _, info := range m.files {
		files = append(files, info)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files
}

// Helper functions

// writeFileAtomic writes through a temp file in the same directory and renames it into place
func writeFileAtomic(absPath string, content []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(absPath), ".extprep-*")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tempPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tempPath, perm); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("setting file mode: %w", err)
	}

	// Rename temp file to target (atomic operation)
	if err := os.Rename(tempPath, absPath); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}
