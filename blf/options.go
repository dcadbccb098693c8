// Package blf reads and writes Binary Logging Format files.
//
// A file is a 144 byte FileStatistics block followed by objects. A Writer
// packs objects into compressed log containers and rewrites the statistics
// block when it is closed. A Reader validates the statistics block and
// returns the objects in file order, looking through log containers.
package blf

import (
	"log/slog"
	"time"

	"github.com/INLOpen/blf/core"
	"go.opentelemetry.io/otel/trace"
)

// WriterOptions configures a Writer. The zero value writes uncompressed
// containers of core.DefaultBufferSize bytes.
type WriterOptions struct {
	CompressionLevel core.Compression
	// BufferSize is the uncompressed payload size of one log container.
	BufferSize int

	ApplicationID    core.AppID
	ApplicationMajor uint8
	ApplicationMinor uint8
	ApplicationBuild uint32

	Logger *slog.Logger
	Tracer trace.Tracer
	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time
}

// ReaderOptions configures a Reader.
type ReaderOptions struct {
	// SkipUnsupported drops objects without a registered decoder instead of
	// returning them with a *core.UnsupportedObjectError.
	SkipUnsupported bool
	// MaxObjectSize bounds object_size while scanning. Zero means
	// core.DefaultMaxObjectSize.
	MaxObjectSize uint32
	// MaxContainerDepth bounds log container nesting. Zero means
	// core.DefaultMaxContainerDepth.
	MaxContainerDepth int

	Logger *slog.Logger
	Tracer trace.Tracer
}

func (o *WriterOptions) applyDefaults() {
	if o.BufferSize <= 0 {
		o.BufferSize = core.DefaultBufferSize
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
}

func (o *ReaderOptions) applyDefaults() {
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
}
