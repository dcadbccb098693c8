package blf

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/INLOpen/blf/container"
	"github.com/INLOpen/blf/core"
	"github.com/INLOpen/blf/objects"
	"github.com/INLOpen/blf/sys"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Writer buffers encoded objects and writes them out in log containers of
// BufferSize uncompressed bytes. An object may be split across two
// containers. Close must be called to write the final container and the
// statistics block.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	w      io.WriteSeeker
	closer io.Closer
	opts   WriterOptions
	codec  *container.Codec
	logger *slog.Logger
	tracer trace.Tracer

	stats      core.FileStatistics
	buf        []byte
	pos        int64
	start      time.Time
	lastObject time.Time
	closed     bool
}

// NewWriter writes the initial statistics block to w and returns a Writer
// positioned after it. If w is also an io.Closer it is closed by Close.
func NewWriter(w io.WriteSeeker, opts WriterOptions) (*Writer, error) {
	opts.applyDefaults()
	codec, err := container.NewCodec(opts.CompressionLevel)
	if err != nil {
		return nil, err
	}

	now := opts.Clock()
	stats := core.NewFileStatistics(now.UTC(), opts.CompressionLevel)
	stats.ApplicationID = opts.ApplicationID
	stats.ApplicationMajor = opts.ApplicationMajor
	stats.ApplicationMinor = opts.ApplicationMinor
	stats.ApplicationBuild = opts.ApplicationBuild

	wr := &Writer{
		w:          w,
		opts:       opts,
		codec:      codec,
		logger:     opts.Logger.With("component", "Writer"),
		tracer:     opts.Tracer,
		stats:      *stats,
		start:      now,
		lastObject: now,
	}
	if c, ok := w.(io.Closer); ok {
		wr.closer = c
	}

	if err := wr.writeStats(); err != nil {
		return nil, err
	}
	wr.pos = core.FileStatisticsSize
	return wr, nil
}

// Create creates the file at path, truncating it if it exists, and returns a
// Writer that owns it.
func Create(path string, opts WriterOptions) (*Writer, error) {
	f, err := sys.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create BLF file %s: %w", path, err)
	}
	w, err := NewWriter(f, opts)
	if err != nil {
		f.Close()
		return nil, err
	}
	return w, nil
}

// Write encodes obj and appends it to the container buffer, flushing full
// containers. An object whose encoding differs in length from its declared
// object_size is rejected with *core.SizeMismatchError and nothing is
// written.
func (w *Writer) Write(obj objects.Object) error {
	if w.closed {
		return core.ErrClosed
	}
	raw, err := obj.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", obj.Base().ObjectType, err)
	}
	base := obj.Base()
	if len(raw) != int(base.ObjectSize) {
		return &core.SizeMismatchError{Type: base.ObjectType, Declared: base.ObjectSize, Encoded: len(raw)}
	}

	if pad := core.PaddingFor(len(w.buf)); pad > 0 {
		w.buf = append(w.buf, make([]byte, pad)...)
	}
	w.buf = append(w.buf, raw...)
	w.stats.ObjectCount++
	w.stats.UncompressedFileSize += uint64(len(raw))
	w.lastObject = w.opts.Clock()

	for len(w.buf) >= w.opts.BufferSize {
		if err := w.flushContainer(); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes everything buffered so far, ending with a container that may
// be shorter than BufferSize.
func (w *Writer) Flush() error {
	if w.closed {
		return core.ErrClosed
	}
	return w.flushAll()
}

// Stats returns a copy of the statistics as they would be written now.
func (w *Writer) Stats() core.FileStatistics {
	st := w.stats
	st.LastObjectTime = core.SystemTimeFromTime(w.lastObject.UTC())
	return st
}

// Close flushes the buffer, rewrites the statistics block at offset 0 and
// closes the underlying file. Calling Close again returns nil.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	err := w.flushAll()
	if err == nil {
		w.stats.LastObjectTime = core.SystemTimeFromTime(w.lastObject.UTC())
		if _, serr := w.w.Seek(0, io.SeekStart); serr != nil {
			err = fmt.Errorf("failed to seek to file statistics: %w", serr)
		} else {
			err = w.writeStats()
		}
	}
	if w.closer != nil {
		if cerr := w.closer.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close BLF file: %w", cerr)
		}
	}
	if err != nil {
		w.logger.Error("Failed to finalize BLF file", "error", err)
		return err
	}
	w.logger.Debug("Closed BLF file",
		"objects", w.stats.ObjectCount,
		"file_size", w.stats.FileSize,
		"uncompressed_size", w.stats.UncompressedFileSize)
	return nil
}

func (w *Writer) flushAll() error {
	for len(w.buf) > 0 {
		if err := w.flushContainer(); err != nil {
			return err
		}
	}
	return nil
}

// flushContainer writes at most BufferSize buffered bytes as one container.
func (w *Writer) flushContainer() error {
	if len(w.buf) == 0 {
		return nil
	}
	n := min(len(w.buf), w.opts.BufferSize)

	var span trace.Span
	if w.tracer != nil {
		_, span = w.tracer.Start(context.Background(), "blf.writer.flush")
		span.SetAttributes(
			attribute.Int("blf.container.payload_bytes", n),
			attribute.Int("blf.compression_level", int(w.codec.Level())),
		)
		defer span.End()
	}

	if pad := core.PaddingFor(int(w.pos)); pad > 0 {
		if err := w.write(make([]byte, pad)); err != nil {
			return w.spanError(span, err)
		}
	}

	ts := uint64(w.opts.Clock().Sub(w.start).Nanoseconds())
	lc, err := w.codec.Wrap(w.buf[:n], ts)
	if err != nil {
		return w.spanError(span, err)
	}
	raw, err := lc.Encode()
	if err != nil {
		return w.spanError(span, fmt.Errorf("failed to encode log container: %w", err))
	}
	if err := w.write(raw); err != nil {
		return w.spanError(span, err)
	}
	w.buf = append(w.buf[:0], w.buf[n:]...)
	w.stats.FileSize = uint64(w.pos)

	if span != nil {
		span.SetAttributes(attribute.Int("blf.container.stored_bytes", len(lc.Data)))
	}
	w.logger.Debug("Flushed log container", "payload_bytes", n, "stored_bytes", len(lc.Data), "file_size", w.pos)
	return nil
}

func (w *Writer) spanError(span trace.Span, err error) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (w *Writer) write(p []byte) error {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	if err != nil {
		return fmt.Errorf("failed to write %d bytes at offset %d: %w", len(p), w.pos, err)
	}
	return nil
}

func (w *Writer) writeStats() error {
	data, err := w.stats.MarshalBinary()
	if err != nil {
		return err
	}
	if _, err := w.w.Write(data); err != nil {
		return fmt.Errorf("failed to write file statistics: %w", err)
	}
	return nil
}
