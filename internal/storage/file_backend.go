package storage

import (
	"alarmclock/internal/storage/interfaces"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileBackend keeps one file per key inside a directory. Writes go to a
// temporary file that is synced and renamed over the previous value.
type FileBackend struct {
	dir        string
	ext        string
	compressor interfaces.CompressorInterface
	mu         sync.Mutex
}

func NewFileBackend(dir string, compressor interfaces.CompressorInterface) *FileBackend {
	ext := ".json"
	if _, ok := compressor.(*ZstdCompression); ok {
		ext = ".json.zst"
	}
	return &FileBackend{
		dir:        dir,
		ext:        ext,
		compressor: compressor,
	}
}

func (f *FileBackend) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(f.dir, key+f.ext), nil
}

func (f *FileBackend) Get(key string) ([]byte, error) {
	fileName, err := f.path(key)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return f.compressor.Decompress(data)
}

func (f *FileBackend) Set(key string, value []byte) error {
	fileName, err := f.path(key)
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(value)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *FileBackend) Close() error {
	f.compressor.Close()
	return nil
}
