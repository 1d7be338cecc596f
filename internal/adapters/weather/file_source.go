package weather

import (
	"context"
	"errors"
	"flight-route-service/internal/ports"
	"fmt"
	"io"
	"os"
)

// FileSource reads the weather table from a local CSV file.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (f *FileSource) OpenWeather(ctx context.Context) (io.ReadCloser, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open weather file %q: %w", f.Path, err)
	}
	return file, nil
}

// NewSource picks the HTTP feed when url is set and the local file otherwise.
func NewSource(url, token, path string) (ports.WeatherSource, error) {
	if url != "" {
		src, err := NewHTTPSource(url, token)
		if err != nil {
			return nil, err
		}
		return src, nil
	}
	if path == "" {
		return nil, errors.New("weather source: neither url nor path is set")
	}
	return NewFileSource(path), nil
}
