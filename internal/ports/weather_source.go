package ports

import (
	"context"
	"io"
)

// Contract for obtaining the raw weather table (airfield,time,code CSV).
type WeatherSource interface {
	// Open the weather table. The caller closes the returned reader.
	OpenWeather(ctx context.Context) (io.ReadCloser, error)
}
