// Package replay records match frames to a gob stream so a session can
// be inspected or played back after the fact.
package replay

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"os"
)

// Header opens every replay stream.
type Header struct {
	Version     int
	CourtWidth  float64
	CourtHeight float64
	PointsToWin int
}

// BallFrame is the ball's state at a recorded tick.
type BallFrame struct {
	X, Y      float64
	VX, VY    float64
	Destroyed bool
}

// PaddleFrame is one paddle's state at a recorded tick.
type PaddleFrame struct {
	Y     float64
	Score int
}

// Frame is one recorded simulation tick.
type Frame struct {
	Tick  int64
	Phase int
	Ball  BallFrame
	Left  PaddleFrame
	Right PaddleFrame
}

const headerVersion = 1

// Recorder appends frames to a gob stream.
type Recorder struct {
	enc    *gob.Encoder
	closer io.Closer
}

// NewRecorder writes a header to w and returns a recorder for it.
func NewRecorder(w io.Writer, hdr Header) (*Recorder, error) {
	hdr.Version = headerVersion
	enc := gob.NewEncoder(w)
	if err := enc.Encode(hdr); err != nil {
		return nil, fmt.Errorf("write replay header: %w", err)
	}
	r := &Recorder{enc: enc}
	if c, ok := w.(io.Closer); ok {
		r.closer = c
	}
	return r, nil
}

// Create opens path for writing and returns a recorder over it.
func Create(path string, hdr Header) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create replay file: %w", err)
	}
	rec, err := NewRecorder(f, hdr)
	if err != nil {
		f.Close()
		return nil, err
	}
	return rec, nil
}

// Record appends one frame.
func (r *Recorder) Record(f Frame) error {
	return r.enc.Encode(f)
}

// Close closes the underlying file, if any.
func (r *Recorder) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// Reader decodes a replay stream written by Recorder.
type Reader struct {
	dec    *gob.Decoder
	header Header
}

// NewReader reads the header and returns a frame reader.
func NewReader(rd io.Reader) (*Reader, error) {
	dec := gob.NewDecoder(rd)
	var hdr Header
	if err := dec.Decode(&hdr); err != nil {
		return nil, fmt.Errorf("read replay header: %w", err)
	}
	if hdr.Version != headerVersion {
		return nil, fmt.Errorf("unsupported replay version %d", hdr.Version)
	}
	return &Reader{dec: dec, header: hdr}, nil
}

// Header returns the stream header.
func (r *Reader) Header() Header {
	return r.header
}

// Next returns the next frame, or io.EOF at end of stream.
func (r *Reader) Next() (Frame, error) {
	var f Frame
	if err := r.dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Frame{}, io.EOF
		}
		return Frame{}, fmt.Errorf("read replay frame: %w", err)
	}
	return f, nil
}
