package display

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"time"

	"github.com/32bitkid/kitkat/screen"
)

// Snapshot ticks src once at now and writes the frame as a PNG.
func Snapshot(w io.Writer, src Source, now time.Time, scale int) error {
	src.Tick(now)
	if err := png.Encode(w, screen.Scale(src.Frame(), scale)); err != nil {
		return fmt.Errorf("display: png: %w", err)
	}
	return nil
}

func SnapshotFile(path string, src Source, now time.Time, scale int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("display: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("display: %w", cerr)
		}
	}()

	logger.Debug("writing snapshot", "path", path, "scale", scale)
	return Snapshot(f, src, now, scale)
}
