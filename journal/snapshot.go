package journal

import (
	"encoding/json"
	"fmt"
)

// OpSnapshot marks a record holding a full collection snapshot.
// Replaying a journal, the latest snapshot per collection wins.
const OpSnapshot = "snapshot"

// AppendSnapshot journals the full contents of a collection as produced by
// its Snapshot method, JSON-encoded.
func AppendSnapshot[T any](j *Journal, collection string, items []T) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode snapshot for %s: %w", collection, err)
	}
	return j.Append(Record{
		Collection: collection,
		Op:         OpSnapshot,
		Payload:    payload,
	})
}

// DecodeSnapshot decodes a snapshot record back into items suitable for a
// collection's Restore method.
func DecodeSnapshot[T any](record Record) ([]T, error) {
	if record.Op != OpSnapshot {
		return nil, fmt.Errorf("record op %q is not a snapshot", record.Op)
	}
	var items []T
	if err := json.Unmarshal(record.Payload, &items); err != nil {
		return nil, fmt.Errorf("decode snapshot for %s: %w", record.Collection, err)
	}
	return items, nil
}

// LatestSnapshots reduces recovered records to the most recent snapshot per
// collection, preserving nothing else.
func LatestSnapshots(records []Record) map[string]Record {
	latest := make(map[string]Record)
	for _, r := range records {
		if r.Op != OpSnapshot {
			continue
		}
		if prev, ok := latest[r.Collection]; !ok || r.Timestamp >= prev.Timestamp {
			latest[r.Collection] = r
		}
	}
	return latest
}
