package camview

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"os"
	"time"

	"github.com/avast/retry-go/v4"
)

// MJPEGSource replays concatenated JPEG frames from a seekable stream and
// wraps around at end of stream.
type MJPEGSource struct {
	rs io.ReadSeeker
	br *bufio.Reader
	// closer is nil for in-memory streams
	closer io.Closer
}

// OpenMJPEG opens an MJPEG file, retrying briefly in case the recorder is
// still creating it.
func OpenMJPEG(filename string) (*MJPEGSource, error) {
	var f *os.File
	err := retry.Do(func() error {
		var err error
		f, err = os.Open(filename)
		return err
	},
		retry.DelayType(retry.FixedDelay),
		retry.Delay(200*time.Millisecond),
		retry.Attempts(5),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("camview.OpenMJPEG: %w", err)
	}
	src := NewMJPEGSource(f)
	src.closer = f
	return src, nil
}

func NewMJPEGSource(rs io.ReadSeeker) *MJPEGSource {
	return &MJPEGSource{rs: rs, br: bufio.NewReaderSize(rs, 64*1024)}
}

// Next returns the following frame, rewinding to the first frame when the
// stream runs out.
func (s *MJPEGSource) Next() (image.Image, error) {
	frame, err := s.readFrame()
	if err == io.EOF {
		if _, err := s.rs.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("camview: rewind: %w", err)
		}
		s.br.Reset(s.rs)
		frame, err = s.readFrame()
		if err == io.EOF {
			return nil, fmt.Errorf("camview: stream contains no frames")
		}
	}
	if err != nil {
		return nil, err
	}
	img, err := jpeg.Decode(bytes.NewReader(frame))
	if err != nil {
		return nil, fmt.Errorf("camview: bad frame: %w", err)
	}
	return img, nil
}

// readFrame scans for the next SOI marker and collects bytes through the
// matching EOI marker.
func (s *MJPEGSource) readFrame() ([]byte, error) {
	if err := s.seekMarker(0xD8); err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer([]byte{0xFF, 0xD8})
	var prev byte
	for {
		b, err := s.br.ReadByte()
		if err != nil {
			return nil, err
		}
		buf.WriteByte(b)
		if prev == 0xFF && b == 0xD9 {
			return buf.Bytes(), nil
		}
		prev = b
	}
}

func (s *MJPEGSource) seekMarker(code byte) error {
	var prev byte
	for {
		b, err := s.br.ReadByte()
		if err != nil {
			return err
		}
		if prev == 0xFF && b == code {
			return nil
		}
		prev = b
	}
}

func (s *MJPEGSource) Close() error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}
