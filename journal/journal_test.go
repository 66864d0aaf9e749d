package journal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestJournal_AppendAndRecover(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.journal")

	config := DefaultConfig()
	config.SyncMode = SyncAlways
	config.Logger = zaptest.NewLogger(t)

	j, err := Open(path, config)
	require.NoError(t, err)

	records := []Record{
		{Collection: "tasks", Op: "snapshot", Payload: []byte(`[1,2,3]`), Timestamp: 1},
		{Collection: "users", Op: "snapshot", Payload: []byte(`["a"]`), Timestamp: 2},
		{Collection: "tasks", Op: "clear", Payload: nil, Timestamp: 3},
	}
	for _, r := range records {
		require.NoError(t, j.Append(r))
	}
	require.NoError(t, j.Close())

	recovered, err := Recover(path, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.Len(t, recovered, 3)

	assert.Equal(t, "tasks", recovered[0].Collection)
	assert.Equal(t, []byte(`[1,2,3]`), recovered[0].Payload)
	assert.Equal(t, uint64(1), recovered[0].Timestamp)
	assert.Equal(t, "clear", recovered[2].Op)
	assert.Empty(t, recovered[2].Payload)
}

func TestJournal_RecoverMissingFile(t *testing.T) {
	records, err := Recover(filepath.Join(t.TempDir(), "nope.journal"), nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestJournal_FillsTimestamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ts.journal")

	j, err := Open(path, DefaultConfig())
	require.NoError(t, err)
	require.NoError(t, j.Append(Record{Collection: "c", Op: "snapshot"}))
	require.NoError(t, j.Close())

	recovered, err := Recover(path, nil)
	require.NoError(t, err)
	require.Len(t, recovered, 1)
	assert.NotZero(t, recovered[0].Timestamp)
}

func TestJournal_TornTailDiscarded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "torn.journal")

	j, err := Open(path, Config{SyncMode: SyncAlways})
	require.NoError(t, err)
	require.NoError(t, j.Append(Record{Collection: "a", Op: "snapshot", Payload: []byte("xx"), Timestamp: 1}))
	require.NoError(t, j.Append(Record{Collection: "b", Op: "snapshot", Payload: []byte("yy"), Timestamp: 2}))
	require.NoError(t, j.Close())

	// Chop a few bytes off the tail to simulate a crash mid-append.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data[:len(data)-3], 0644))

	recovered, err := Recover(path, zaptest.NewLogger(t))
	require.NoError(t, err, "torn tail is not corruption")
	require.Len(t, recovered, 1)
	assert.Equal(t, "a", recovered[0].Collection)
}

func TestJournal_CorruptionDetected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.journal")

	j, err := Open(path, Config{SyncMode: SyncAlways})
	require.NoError(t, err)
	require.NoError(t, j.Append(Record{Collection: "a", Op: "snapshot", Payload: []byte("payload-one"), Timestamp: 1}))
	require.NoError(t, j.Append(Record{Collection: "b", Op: "snapshot", Payload: []byte("payload-two"), Timestamp: 2}))
	require.NoError(t, j.Close())

	// Flip a byte inside the first record's payload.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	data[20] ^= 0xFF
	require.NoError(t, os.WriteFile(path, data, 0644))

	_, err = Recover(path, nil)
	assert.ErrorIs(t, err, ErrCorrupted)
}

func TestJournal_SnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.journal")

	j, err := Open(path, Config{SyncMode: SyncAlways})
	require.NoError(t, err)

	require.NoError(t, AppendSnapshot(j, "numbers", []int{1, 2, 3}))
	require.NoError(t, AppendSnapshot(j, "words", []string{"a", "b"}))
	require.NoError(t, AppendSnapshot(j, "numbers", []int{4, 5}))
	require.NoError(t, j.Close())

	recovered, err := Recover(path, nil)
	require.NoError(t, err)

	latest := LatestSnapshots(recovered)
	require.Len(t, latest, 2)

	numbers, err := DecodeSnapshot[int](latest["numbers"])
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, numbers, "latest snapshot wins")

	words, err := DecodeSnapshot[string](latest["words"])
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, words)

	_, err = DecodeSnapshot[int](Record{Op: "clear"})
	assert.Error(t, err)
}

func TestJournal_SizeGrows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "size.journal")

	j, err := Open(path, DefaultConfig())
	require.NoError(t, err)
	defer j.Close()

	before := j.Size()
	require.NoError(t, j.Append(Record{Collection: "c", Op: "snapshot", Payload: []byte("data")}))
	assert.Greater(t, j.Size(), before)
}
