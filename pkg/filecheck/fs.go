package filecheck

import (
	"io/fs"
	"os"
	"time"
)

// FileSystem abstracts file system operations for testability.
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
}

// RealFileSystem implements FileSystem using the actual file system.
type RealFileSystem struct{}

// Stat returns file info for the given path.
func (r *RealFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// mockFileSystem is a test double for FileSystem.
type mockFileSystem struct {
	StatFunc func(name string) (fs.FileInfo, error)
}

// Stat calls the mock function.
func (m *mockFileSystem) Stat(name string) (fs.FileInfo, error) {
	return m.StatFunc(name)
}

// mockFileInfo is a test double for fs.FileInfo.
type mockFileInfo struct {
	NameValue  string
	IsDirValue bool
}

func (m *mockFileInfo) Name() string       { return m.NameValue }
func (m *mockFileInfo) Size() int64        { return 0 }
func (m *mockFileInfo) Mode() fs.FileMode  { return 0o644 }
func (m *mockFileInfo) IsDir() bool        { return m.IsDirValue }
func (m *mockFileInfo) Sys() interface{}   { return nil }
func (m *mockFileInfo) ModTime() time.Time { return time.Unix(0, 0) }
