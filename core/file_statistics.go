package core

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"
)

// SystemTime is the calendar timestamp layout used inside FileStatistics.
type SystemTime struct {
	Year         uint16
	Month        uint16
	DayOfWeek    uint16 // 0 = Sunday
	Day          uint16
	Hour         uint16
	Minute       uint16
	Second       uint16
	Milliseconds uint16
}

// SystemTimeFromTime converts t, rounding to the nearest millisecond but
// never carrying into the next second.
func SystemTimeFromTime(t time.Time) SystemTime {
	ms := (t.Nanosecond() + 500_000) / 1_000_000
	if ms > 999 {
		ms = 999
	}
	return SystemTime{
		Year:         uint16(t.Year()),
		Month:        uint16(t.Month()),
		DayOfWeek:    uint16(t.Weekday()),
		Day:          uint16(t.Day()),
		Hour:         uint16(t.Hour()),
		Minute:       uint16(t.Minute()),
		Second:       uint16(t.Second()),
		Milliseconds: uint16(ms),
	}
}

// Time returns the timestamp in UTC. The zero SystemTime maps to the zero
// time.Time.
func (st SystemTime) Time() time.Time {
	if st == (SystemTime{}) {
		return time.Time{}
	}
	return time.Date(int(st.Year), time.Month(st.Month), int(st.Day),
		int(st.Hour), int(st.Minute), int(st.Second), int(st.Milliseconds)*int(time.Millisecond), time.UTC)
}

// FileStatistics is the 144 byte block at offset 0 of every BLF file.
// Field order and widths are the on-disk layout; Reserved is kept verbatim.
type FileStatistics struct {
	Signature            uint32
	StatisticsSize       uint32
	APINumber            uint32
	ApplicationID        AppID
	CompressionLevel     Compression
	ApplicationMajor     uint8
	ApplicationMinor     uint8
	FileSize             uint64
	UncompressedFileSize uint64
	ObjectCount          uint32
	ApplicationBuild     uint32
	MeasurementStartTime SystemTime
	LastObjectTime       SystemTime
	RestorePointsOffset  uint64
	Reserved             [64]byte
}

// NewFileStatistics returns the statistics of an empty file created at now.
func NewFileStatistics(now time.Time, level Compression) *FileStatistics {
	st := SystemTimeFromTime(now)
	return &FileStatistics{
		Signature:            FileSignature,
		StatisticsSize:       FileStatisticsSize,
		APINumber:            APINumber,
		ApplicationID:        AppIDUnknown,
		CompressionLevel:     level,
		FileSize:             FileStatisticsSize,
		UncompressedFileSize: FileStatisticsSize,
		MeasurementStartTime: st,
		LastObjectTime:       st,
	}
}

// MarshalBinary encodes the statistics block.
func (fs *FileStatistics) MarshalBinary() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, FileStatisticsSize))
	if err := binary.Write(buf, binary.LittleEndian, fs); err != nil {
		return nil, fmt.Errorf("failed to encode file statistics: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a statistics block and checks the file signature.
func (fs *FileStatistics) UnmarshalBinary(data []byte) error {
	if len(data) < FileStatisticsSize {
		return fmt.Errorf("got %d of %d bytes: %w", len(data), FileStatisticsSize, ErrTruncatedHeader)
	}
	if binary.LittleEndian.Uint32(data[0:4]) != FileSignature {
		return fmt.Errorf("signature %q: %w", data[0:4], ErrNotBLF)
	}
	if err := binary.Read(bytes.NewReader(data[:FileStatisticsSize]), binary.LittleEndian, fs); err != nil {
		return fmt.Errorf("failed to decode file statistics: %w", err)
	}
	return nil
}
