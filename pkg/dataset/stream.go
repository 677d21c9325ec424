package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"winescope/pkg/wine"
)

// Stream delivers the file's labeled rows one at a time on out, for passes
// that never need the whole table in memory. The file is opened and its
// header validated before the first return, so a missing file or wrong
// schema fails synchronously.
//
// A single goroutine reads rows and closes out when the file is exhausted.
// A parse or IO failure stops the stream and is delivered on errc, which is
// closed either way once the goroutine finishes. Closing stop abandons the
// stream early; the goroutine exits even if the receiver has stopped
// draining out.
func (l *Loader) Stream(path string, color wine.Color, out chan<- wine.Sample) (stop chan struct{}, errc <-chan error, err error) {
	if !color.Valid() {
		return nil, nil, fmt.Errorf("stream %s: unknown wine color %q", path, color)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open dataset: %w", err)
	}
	r := newWineReader(f)
	if _, err := readHeader(r, path); err != nil {
		f.Close()
		return nil, nil, err
	}

	stop = make(chan struct{})
	ec := make(chan error, 1)
	go func() {
		defer close(ec)
		defer close(out)
		defer f.Close()

		sent := 0
		for row := 2; ; row++ {
			select {
			case <-stop:
				l.log.Debug("stream abandoned", zap.String("file", path), zap.Int("sent", sent))
				return
			default:
			}
			rec, err := r.Read()
			if errors.Is(err, io.EOF) {
				l.log.Debug("stream done", zap.String("file", path), zap.Int("sent", sent))
				return
			}
			if err != nil {
				ec <- fmt.Errorf("%s: row %d: %w", path, row, err)
				return
			}
			s, err := wine.ParseRecord(rec, color)
			if err != nil {
				ec <- fmt.Errorf("%s: row %d: %w", path, row, err)
				return
			}
			select {
			case out <- s:
				sent++
			case <-stop:
				l.log.Debug("stream abandoned", zap.String("file", path), zap.Int("sent", sent))
				return
			}
		}
	}()
	return stop, ec, nil
}
