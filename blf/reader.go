package blf

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/INLOpen/blf/compressors"
	"github.com/INLOpen/blf/container"
	"github.com/INLOpen/blf/core"
	"github.com/INLOpen/blf/objects"
	"github.com/INLOpen/blf/stream"
	"github.com/INLOpen/blf/sys"
)

// Reader returns the objects of a BLF file in order. Log containers are
// expanded transparently and never returned. A Reader is not safe for
// concurrent use.
type Reader struct {
	stats  core.FileStatistics
	demux  *stream.Demuxer
	closer io.Closer
	opts   ReaderOptions
	logger *slog.Logger
	closed bool
}

// NewReader reads and validates the statistics block at the start of r.
// A short block fails with core.ErrTruncatedHeader and a wrong signature
// with core.ErrNotBLF. Containers are inflated whenever the stored
// compression level is non-zero.
func NewReader(r io.Reader, opts ReaderOptions) (*Reader, error) {
	opts.applyDefaults()

	head := make([]byte, core.FileStatisticsSize)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read file statistics: %w", err)
	}
	var stats core.FileStatistics
	if err := stats.UnmarshalBinary(head[:n]); err != nil {
		return nil, err
	}

	codec := container.NewCodecWithCompressor(compressors.ForDecompression(stats.CompressionLevel))
	logger := opts.Logger.With("component", "Reader")
	demux, err := stream.NewDemuxer(r, stream.Options{
		Codec:         codec,
		MaxObjectSize: opts.MaxObjectSize,
		MaxDepth:      opts.MaxContainerDepth,
		BaseOffset:    core.FileStatisticsSize,
		Logger:        opts.Logger,
		Tracer:        opts.Tracer,
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("Opened BLF stream",
		"application", stats.ApplicationID,
		"compression", stats.CompressionLevel,
		"objects", stats.ObjectCount)

	rd := &Reader{
		stats:  stats,
		demux:  demux,
		opts:   opts,
		logger: logger,
	}
	if c, ok := r.(io.Closer); ok {
		rd.closer = c
	}
	return rd, nil
}

// Open opens the file at path for reading. The Reader owns the file and
// closes it in Close; the file is also closed if Open fails.
func Open(path string, opts ReaderOptions) (*Reader, error) {
	f, err := sys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open BLF file %s: %w", path, err)
	}
	r, err := NewReader(f, opts)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Stats returns the statistics block read from the start of the file.
func (r *Reader) Stats() core.FileStatistics { return r.stats }

// Next returns the next object, or io.EOF after the last one. It also
// returns the recoverable conditions documented on stream.Demuxer.Next,
// after which reading may continue. Objects without a decoder come back as
// *objects.Unsupported together with a *core.UnsupportedObjectError unless
// SkipUnsupported is set.
func (r *Reader) Next() (objects.Object, error) {
	if r.closed {
		return nil, core.ErrClosed
	}
	for {
		obj, err := r.demux.Next()
		if err != nil && r.opts.SkipUnsupported && core.IsUnsupported(err) {
			r.logger.Debug("Skipping unsupported object", "error", err)
			continue
		}
		return obj, err
	}
}

// All iterates over the remaining objects. Recoverable conditions are
// yielded along with the object Next returned for them, if any, and
// iteration continues. io.EOF ends it; any other error is yielded once
// before stopping.
func (r *Reader) All() iter.Seq2[objects.Object, error] {
	return func(yield func(objects.Object, error) bool) {
		for {
			obj, err := r.Next()
			switch {
			case err == nil:
				if !yield(obj, nil) {
					return
				}
			case errors.Is(err, io.EOF):
				return
			case recoverable(err):
				if !yield(obj, err) {
					return
				}
			default:
				yield(nil, err)
				return
			}
		}
	}
}

// Close releases the underlying file. Calling it again returns nil.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

func recoverable(err error) bool {
	return core.IsUnsupported(err) ||
		errors.Is(err, core.ErrDecompression) ||
		errors.Is(err, core.ErrContainerTooDeep) ||
		errors.Is(err, core.ErrTruncatedObject) ||
		errors.Is(err, core.ErrMalformedObject)
}
