package sys

import (
	"io"
	"os"
	"sync/atomic"
)

// fileWrapper is a stable concrete type used to store the File interface
// inside an atomic.Value. atomic.Value requires that all stored values
// have the same concrete type.
type fileWrapper struct {
	f File
}

// defaultFile stores the current File implementation wrapped in a
// fileWrapper.
var defaultFile atomic.Value // stores fileWrapper
var debugMode atomic.Bool

// File opens files on behalf of the BLF reader and writer. Tests swap it
// with SetDefaultFile to observe or fail file access.
type File interface {
	Create(name string) (*os.File, error)
	Open(name string) (*os.File, error)
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
}

// FileHandle is what Create and Open hand out: enough of *os.File to read a
// log sequentially and to write one with a final seek back to the header.
type FileHandle interface {
	io.ReadWriteCloser
	io.Seeker

	Stat() (os.FileInfo, error)
	Sync() error
	Name() string
}

type CreateHandler func(name string) (FileHandle, error)
type OpenHandler func(name string) (FileHandle, error)

type osFile struct{}

// NewFile returns the File backed directly by the os package.
func NewFile() File {
	return osFile{}
}

func (osFile) Create(name string) (*os.File, error) { return os.Create(name) }
func (osFile) Open(name string) (*os.File, error)   { return os.Open(name) }
func (osFile) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}

func init() {
	debugMode.Store(false)
	defaultFile.Store(fileWrapper{f: NewFile()})
}

func SetDefaultFile(file File) {
	defaultFile.Store(fileWrapper{f: file})
}

// SetDebugMode makes Create and Open return handles that log their
// lifetime and can be listed with OpenHandles.
func SetDebugMode(mode bool) {
	debugMode.Store(mode)
}

func currentFile() (File, error) {
	fw, ok := defaultFile.Load().(fileWrapper)
	if !ok || fw.f == nil {
		return nil, os.ErrInvalid
	}
	return fw.f, nil
}

var Create CreateHandler = func(name string) (FileHandle, error) {
	file, err := currentFile()
	if err != nil {
		return nil, err
	}
	if debugMode.Load() {
		return DCreate(file, name)
	}
	return RCreate(file, name)
}

var Open OpenHandler = func(name string) (FileHandle, error) {
	file, err := currentFile()
	if err != nil {
		return nil, err
	}
	if debugMode.Load() {
		return DOpen(file, name)
	}
	return ROpen(file, name)
}
