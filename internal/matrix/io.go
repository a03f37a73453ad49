package matrix

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Float32Size is the size in bytes of one encoded element.
const Float32Size = 4

// RenderThreshold is the value above which Render draws a cell as filled.
const RenderThreshold = 0.1

// Render draws m as an ASCII bitmap: each element greater than
// RenderThreshold becomes "**", every other element two spaces, with a
// newline after each row.
//
// Any write failure, including a nil writer, is reported as ErrStream.
func (m *Matrix) Render(w io.Writer) error {
	if w == nil {
		return fmt.Errorf("%w: nil writer", ErrStream)
	}
	line := make([]byte, 0, 2*m.dims.Cols+1)
	for i := 0; i < m.dims.Rows; i++ {
		line = line[:0]
		for _, v := range m.data[i*m.dims.Cols : (i+1)*m.dims.Cols] {
			if v > RenderThreshold {
				line = append(line, '*', '*')
			} else {
				line = append(line, ' ', ' ')
			}
		}
		line = append(line, '\n')
		if err := writeFull(w, line); err != nil {
			return fmt.Errorf("%w: render row %d: %w", ErrStream, i, err)
		}
	}
	return nil
}

// ReadFrom fills m in row-major order with rows*cols little-endian IEEE-754
// float32 values read from r. It implements io.ReaderFrom.
//
// A source holding fewer than rows*cols*4 bytes, or any read error, yields an
// error wrapping ErrStream. On failure the contents of m must be treated as
// unreliable.
func (m *Matrix) ReadFrom(r io.Reader) (int64, error) {
	return m.ReadFromOrder(r, binary.LittleEndian)
}

// ReadFromOrder is ReadFrom with an explicit byte order.
func (m *Matrix) ReadFromOrder(r io.Reader, order binary.ByteOrder) (int64, error) {
	if r == nil {
		return 0, fmt.Errorf("%w: nil reader", ErrStream)
	}
	buf := make([]byte, len(m.data)*Float32Size)
	n, err := io.ReadFull(r, buf)
	if err != nil {
		return int64(n), fmt.Errorf("%w: read %d of %d bytes for %s matrix: %w",
			ErrStream, n, len(buf), m.dims, err)
	}
	for i := range m.data {
		m.data[i] = math.Float32frombits(order.Uint32(buf[i*Float32Size:]))
	}
	return int64(n), nil
}

// WriteTo writes m's elements in row-major order as little-endian IEEE-754
// float32 values, the layout ReadFrom consumes. It implements io.WriterTo.
func (m *Matrix) WriteTo(w io.Writer) (int64, error) {
	return m.WriteToOrder(w, binary.LittleEndian)
}

// WriteToOrder is WriteTo with an explicit byte order.
func (m *Matrix) WriteToOrder(w io.Writer, order binary.ByteOrder) (int64, error) {
	if w == nil {
		return 0, fmt.Errorf("%w: nil writer", ErrStream)
	}
	buf := make([]byte, len(m.data)*Float32Size)
	for i, v := range m.data {
		order.PutUint32(buf[i*Float32Size:], math.Float32bits(v))
	}
	n, err := w.Write(buf)
	if err == nil && n < len(buf) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return int64(n), fmt.Errorf("%w: wrote %d of %d bytes: %w", ErrStream, n, len(buf), err)
	}
	return int64(n), nil
}

func writeFull(w io.Writer, p []byte) error {
	n, err := w.Write(p)
	if err != nil {
		return err
	}
	if n < len(p) {
		return io.ErrShortWrite
	}
	return nil
}
