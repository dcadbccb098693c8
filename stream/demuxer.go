// Package stream turns a BLF object stream into a flat sequence of objects.
//
// The Demuxer scans for the object signature, expands log containers as it
// meets them and carries the bytes of an object that straddles a container
// boundary over to the next container. Containers are handled on an
// explicit stack of frames rather than by recursion, so every call to Next
// returns after at most one object.
package stream

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/INLOpen/blf/container"
	"github.com/INLOpen/blf/core"
	"github.com/INLOpen/blf/objects"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const readBufferSize = 64 * 1024

var objectSignature = []byte(core.ObjectSignatureString)

// Options configures a Demuxer. The zero value is usable apart from Codec,
// which must match the file's compression level.
type Options struct {
	Codec *container.Codec
	// MaxObjectSize bounds object_size; larger headers are treated as false
	// signature matches. Zero means core.DefaultMaxObjectSize.
	MaxObjectSize uint32
	// MaxDepth bounds container nesting. Zero means
	// core.DefaultMaxContainerDepth.
	MaxDepth int
	// BaseOffset is the file position of the first byte of the stream. It
	// only affects reported offsets.
	BaseOffset int64
	Logger     *slog.Logger
	Tracer     trace.Tracer
}

// frame is one level of the container stack.
type frame struct {
	src     source
	depth   int
	span    trace.Span
	skipped int
	objects int
}

// Demuxer yields the objects of a stream in on-disk order, depth first
// through nested containers. It is not safe for concurrent use.
type Demuxer struct {
	opts    Options
	logger  *slog.Logger
	tracer  trace.Tracer
	frames  []*frame
	carry   []byte
	yielded int
	err     error
	atEOF   bool
}

// NewDemuxer reads the object stream from r.
func NewDemuxer(r io.Reader, opts Options) (*Demuxer, error) {
	if opts.Codec == nil {
		return nil, errors.New("stream: Options.Codec is required")
	}
	if opts.MaxObjectSize == 0 {
		opts.MaxObjectSize = core.DefaultMaxObjectSize
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = core.DefaultMaxContainerDepth
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	d := &Demuxer{
		opts:   opts,
		logger: logger.With("component", "Demuxer"),
		tracer: opts.Tracer,
	}
	d.frames = append(d.frames, &frame{src: newReaderSource(r, readBufferSize)})
	return d, nil
}

// Yielded returns how many objects Next has returned so far.
func (d *Demuxer) Yielded() int { return d.yielded }

// Residual returns a copy of the bytes currently carried over between
// containers.
func (d *Demuxer) Residual() []byte { return bytes.Clone(d.carry) }

// Next returns the next object. Besides io.EOF at the end of the stream it
// reports these conditions, after which Next may be called again:
//   - *core.UnsupportedObjectError together with an *objects.Unsupported
//   - *core.DecompressionError; the container is skipped
//   - core.ErrContainerTooDeep; the container is skipped
//   - core.ErrMalformedObject for a known type or a log container that
//     fails to decode; the object is skipped
//   - core.ErrTruncatedObject once, when the stream ends inside an object
//
// Any other error is an I/O failure and is returned on every later call.
func (d *Demuxer) Next() (objects.Object, error) {
	raw, err := d.next()
	if err != nil {
		return nil, err
	}
	obj, err := objects.Decode(raw)
	if err != nil && !core.IsUnsupported(err) {
		return nil, fmt.Errorf("%w: %w", core.ErrMalformedObject, err)
	}
	d.yielded++
	return obj, err
}

// NextRaw returns the encoded bytes of the next non-container object
// without decoding its body. It reports the same conditions as Next apart
// from decode errors.
func (d *Demuxer) NextRaw() ([]byte, error) {
	raw, err := d.next()
	if err != nil {
		return nil, err
	}
	d.yielded++
	return bytes.Clone(raw), nil
}

func (d *Demuxer) next() ([]byte, error) {
	if d.err != nil {
		return nil, d.err
	}
	for len(d.frames) > 0 {
		f := d.frames[len(d.frames)-1]
		raw, base, err := d.scan(f)
		if err != nil {
			if !errors.Is(err, io.ErrUnexpectedEOF) {
				d.fail(err)
				return nil, err
			}
			d.pop(f)
			continue
		}
		if base.ObjectType != core.ObjectTypeLogContainer {
			return raw, nil
		}
		if err := d.expand(f, raw); err != nil {
			return nil, err
		}
	}
	return nil, d.finish()
}

// scan runs the state machine of one frame until it holds a complete object
// or the frame runs dry. Running dry is reported as io.ErrUnexpectedEOF
// after the dangling bytes have been moved to the carry-over.
func (d *Demuxer) scan(f *frame) ([]byte, core.ObjectHeaderBase, error) {
	for {
		sig, err := f.src.peek(len(objectSignature))
		if err != nil {
			return nil, core.ObjectHeaderBase{}, err
		}
		if len(sig) < len(objectSignature) {
			return nil, core.ObjectHeaderBase{}, d.keepRest(f)
		}
		if !bytes.Equal(sig, objectSignature) {
			f.src.discard(1)
			f.skipped++
			continue
		}

		hdr, err := f.src.peek(core.ObjectHeaderBaseSize)
		if err != nil {
			return nil, core.ObjectHeaderBase{}, err
		}
		if len(hdr) < core.ObjectHeaderBaseSize {
			return nil, core.ObjectHeaderBase{}, d.keepRest(f)
		}
		base, _ := core.DecodeObjectHeaderBase(hdr)
		if err := base.Validate(d.opts.MaxObjectSize); err != nil {
			d.logger.Debug("Ignoring false object signature", "offset", d.offset(f), "depth", f.depth, "reason", err)
			f.src.discard(1)
			f.skipped++
			continue
		}

		start := d.offset(f)
		raw, err := f.src.read(int(base.ObjectSize))
		if errors.Is(err, io.ErrUnexpectedEOF) {
			d.carry = append(d.carry, raw...)
			return nil, core.ObjectHeaderBase{}, err
		}
		if err != nil {
			return nil, core.ObjectHeaderBase{}, err
		}
		if f.skipped > 0 {
			d.logger.Debug("Resynchronised on object signature", "offset", start, "depth", f.depth, "skipped_bytes", f.skipped)
			f.skipped = 0
		}
		f.objects++
		return raw, base, nil
	}
}

// keepRest moves the remainder of a frame to the carry-over.
func (d *Demuxer) keepRest(f *frame) error {
	rest, err := f.src.rest()
	if err != nil {
		return err
	}
	d.carry = append(d.carry, rest...)
	return io.ErrUnexpectedEOF
}

// expand opens a container frame on top of f. The carry-over is prepended
// to the container payload and cleared.
func (d *Demuxer) expand(f *frame, raw []byte) error {
	offset := d.offset(f) - int64(len(raw))
	if f.depth+1 > d.opts.MaxDepth {
		d.logger.Warn("Skipping nested log container", "offset", offset, "depth", f.depth+1, "max_depth", d.opts.MaxDepth)
		return fmt.Errorf("container at offset %d, depth %d: %w", offset, f.depth+1, core.ErrContainerTooDeep)
	}
	lc, err := objects.DecodeLogContainer(raw)
	if err != nil {
		d.logger.Warn("Skipping malformed log container", "offset", offset, "depth", f.depth+1, "error", err)
		return fmt.Errorf("container at offset %d: %w: %w", offset, core.ErrMalformedObject, err)
	}

	var span trace.Span
	if d.tracer != nil {
		_, span = d.tracer.Start(context.Background(), "blf.container.expand", trace.WithAttributes(
			attribute.Int64("blf.container.offset", offset),
			attribute.Int("blf.container.depth", f.depth+1),
			attribute.Int("blf.container.stored_bytes", len(lc.Data)),
		))
	}

	payload, err := d.opts.Codec.Unwrap(lc)
	if err != nil {
		var de *core.DecompressionError
		if errors.As(err, &de) {
			de.Offset = offset
			de.Yielded = d.yielded
		}
		if span != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "decompression failed")
			span.End()
		}
		d.logger.Error("Failed to decompress log container", "offset", offset, "yielded", d.yielded, "error", err)
		// The carry-over belonged to this container; its tail is gone.
		d.carry = nil
		return err
	}
	if span != nil {
		span.SetAttributes(
			attribute.Int("blf.container.payload_bytes", len(payload)),
			attribute.Int("blf.container.carry_bytes", len(d.carry)),
		)
	}

	if len(d.carry) > 0 {
		joined := make([]byte, 0, len(d.carry)+len(payload))
		joined = append(joined, d.carry...)
		payload = append(joined, payload...)
		d.carry = nil
	}
	d.frames = append(d.frames, &frame{
		src:   &sliceSource{b: payload},
		depth: f.depth + 1,
		span:  span,
	})
	return nil
}

func (d *Demuxer) pop(f *frame) {
	if f.span != nil {
		f.span.SetAttributes(attribute.Int("blf.container.objects", f.objects))
		f.span.End()
	}
	d.frames = d.frames[:len(d.frames)-1]
}

// finish is reached once the outermost frame is exhausted.
func (d *Demuxer) finish() error {
	if d.atEOF {
		return io.EOF
	}
	d.atEOF = true
	if len(d.carry) == 0 {
		return io.EOF
	}
	if i := bytes.Index(d.carry, objectSignature); i >= 0 {
		d.logger.Warn("Stream ends inside an object", "dangling_bytes", len(d.carry)-i, "yielded", d.yielded)
		d.carry = nil
		return core.ErrTruncatedObject
	}
	d.logger.Debug("Dropping trailing padding", "bytes", len(d.carry))
	d.carry = nil
	return io.EOF
}

func (d *Demuxer) fail(err error) {
	d.err = err
	for len(d.frames) > 0 {
		d.pop(d.frames[len(d.frames)-1])
	}
}

// offset is the absolute position of f's cursor when f is the file frame
// and the position within the container payload otherwise.
func (d *Demuxer) offset(f *frame) int64 {
	if f.depth == 0 {
		return d.opts.BaseOffset + f.src.offset()
	}
	return f.src.offset()
}
