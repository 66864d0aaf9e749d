// Package journal provides an append-only record log for persisting
// collection snapshots across process restarts.
//
// Every record is framed with a CRC32 checksum and a length prefix, so a
// crash mid-write leaves at most one torn record at the tail, which recovery
// discards. Corruption anywhere earlier in the file is reported as
// ErrCorrupted.
//
// Record format (little-endian):
//   - CRC32 checksum (4 bytes)
//   - Record length (4 bytes)
//   - Timestamp (8 bytes)
//   - Collection name length (4 bytes)
//   - Op length (4 bytes)
//   - Payload length (4 bytes)
//   - Collection name (variable)
//   - Op (variable)
//   - Payload (variable)
package journal

import (
	"bufio"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"io"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Record is a single journal entry: a named operation against a named
// collection, with an opaque payload (typically a JSON-encoded snapshot).
type Record struct {
	Collection string
	Op         string
	Payload    []byte
	Timestamp  uint64
}

// SyncMode determines when journal writes are synced to disk.
type SyncMode int

const (
	// SyncNone - no explicit sync (fastest, least durable)
	SyncNone SyncMode = iota
	// SyncBatch - sync on explicit Sync calls and on Close
	SyncBatch
	// SyncAlways - fsync after every append (slowest, most durable)
	SyncAlways
)

// Config configures journal behavior.
type Config struct {
	SyncMode SyncMode
	Logger   *zap.Logger // defaults to a no-op logger
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		SyncMode: SyncBatch,
	}
}

// Journal is an append-only record log.
type Journal struct {
	file     *os.File
	writer   *bufio.Writer
	path     string
	size     int64
	syncMode SyncMode
	logger   *zap.Logger
	mu       sync.Mutex
}

// Open opens or creates a journal file.
func Open(path string, config Config) (*Journal, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Journal{
		file:     file,
		writer:   bufio.NewWriterSize(file, 64*1024), // 64KB buffer
		path:     path,
		size:     info.Size(),
		syncMode: config.SyncMode,
		logger:   logger,
	}, nil
}

// Append writes a record to the journal. A zero timestamp is filled in with
// the current time.
func (j *Journal) Append(record Record) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if record.Timestamp == 0 {
		record.Timestamp = uint64(time.Now().UnixNano())
	}

	data := encodeRecord(record)
	checksum := crc32.ChecksumIEEE(data)

	if err := binary.Write(j.writer, binary.LittleEndian, checksum); err != nil {
		return err
	}
	if err := binary.Write(j.writer, binary.LittleEndian, uint32(len(data))); err != nil {
		return err
	}
	if _, err := j.writer.Write(data); err != nil {
		return err
	}

	j.size += int64(8 + len(data)) // 4 bytes checksum + 4 bytes length + data

	if j.syncMode == SyncAlways {
		return j.sync()
	}
	return nil
}

// Sync flushes and syncs the journal to disk.
func (j *Journal) Sync() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.sync()
}

func (j *Journal) sync() error {
	if err := j.writer.Flush(); err != nil {
		return err
	}
	return j.file.Sync()
}

// Size returns the current journal file size.
func (j *Journal) Size() int64 {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.size
}

// Close flushes and closes the journal file.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err := j.writer.Flush(); err != nil {
		return err
	}
	if j.syncMode != SyncNone {
		if err := j.file.Sync(); err != nil {
			return err
		}
	}
	return j.file.Close()
}

// Delete closes and removes the journal file.
func (j *Journal) Delete() error {
	if err := j.Close(); err != nil {
		return err
	}
	return os.Remove(j.path)
}

// Recover reads all records from a journal file for replay.
//
// A missing file yields no records and no error. A torn record at the tail
// (the usual crash artifact) is discarded and recovery succeeds with the
// records before it. A checksum mismatch means corruption and returns
// ErrCorrupted along with the records read so far. A nil logger is allowed.
func Recover(path string, logger *zap.Logger) ([]Record, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // No journal to recover
		}
		return nil, err
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	var records []Record

	for {
		var checksum uint32
		if err := binary.Read(reader, binary.LittleEndian, &checksum); err != nil {
			if err == io.EOF {
				break
			}
			if errors.Is(err, io.ErrUnexpectedEOF) {
				logger.Warn("discarding torn record at journal tail",
					zap.String("path", path),
					zap.Int("records", len(records)))
				break
			}
			return records, err
		}

		var length uint32
		if err := binary.Read(reader, binary.LittleEndian, &length); err != nil {
			if err == io.EOF || errors.Is(err, io.ErrUnexpectedEOF) {
				logger.Warn("discarding torn record at journal tail",
					zap.String("path", path),
					zap.Int("records", len(records)))
				break
			}
			return records, err
		}

		data := make([]byte, length)
		if _, err := io.ReadFull(reader, data); err != nil {
			if err == io.EOF || errors.Is(err, io.ErrUnexpectedEOF) {
				logger.Warn("discarding torn record at journal tail",
					zap.String("path", path),
					zap.Int("records", len(records)))
				break
			}
			return records, err
		}

		if crc32.ChecksumIEEE(data) != checksum {
			return records, ErrCorrupted
		}

		record, err := decodeRecord(data)
		if err != nil {
			return records, err
		}
		records = append(records, record)
	}

	logger.Info("journal recovered",
		zap.String("path", path),
		zap.Int("records", len(records)))
	return records, nil
}

// encodeRecord serializes a record to bytes, without framing.
func encodeRecord(record Record) []byte {
	size := 8 + 4 + 4 + 4 + len(record.Collection) + len(record.Op) + len(record.Payload)
	buf := make([]byte, size)
	offset := 0

	binary.LittleEndian.PutUint64(buf[offset:], record.Timestamp)
	offset += 8

	binary.LittleEndian.PutUint32(buf[offset:], uint32(len(record.Collection)))
	offset += 4
	binary.LittleEndian.PutUint32(buf[offset:], uint32(len(record.Op)))
	offset += 4
	binary.LittleEndian.PutUint32(buf[offset:], uint32(len(record.Payload)))
	offset += 4

	copy(buf[offset:], record.Collection)
	offset += len(record.Collection)
	copy(buf[offset:], record.Op)
	offset += len(record.Op)
	copy(buf[offset:], record.Payload)

	return buf
}

func decodeRecord(data []byte) (Record, error) {
	if len(data) < 20 {
		return Record{}, ErrCorrupted
	}

	offset := 0
	timestamp := binary.LittleEndian.Uint64(data[offset:])
	offset += 8

	collectionLen := int(binary.LittleEndian.Uint32(data[offset:]))
	offset += 4
	opLen := int(binary.LittleEndian.Uint32(data[offset:]))
	offset += 4
	payloadLen := int(binary.LittleEndian.Uint32(data[offset:]))
	offset += 4

	if offset+collectionLen+opLen+payloadLen != len(data) {
		return Record{}, ErrCorrupted
	}

	collection := string(data[offset : offset+collectionLen])
	offset += collectionLen
	op := string(data[offset : offset+opLen])
	offset += opLen

	payload := make([]byte, payloadLen)
	copy(payload, data[offset:])

	return Record{
		Collection: collection,
		Op:         op,
		Payload:    payload,
		Timestamp:  timestamp,
	}, nil
}
