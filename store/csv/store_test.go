package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/enecpp/financial-news-analyzer/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(i int) *types.Feedback {
	return &types.Feedback{
		Timestamp: "2026-08-23T10:00:00Z",
		Name:      fmt.Sprintf("User %d", i),
		Email:     fmt.Sprintf("user%d@example.com", i),
		Message:   fmt.Sprintf("Message %d", i),
	}
}

func TestAppend_WritesHeaderOnce(t *testing.T) {
	store := NewStore(t.TempDir(), "feedback.csv")

	const n = 5
	for i := 0; i < n; i++ {
		require.NoError(t, store.Append(testRecord(i)))
	}

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, n+1, "N records should yield N+1 lines")
	assert.Equal(t, "Timestamp,Name,Email,Message", lines[0])
}

func TestAppend_CreatesParentDirectory(t *testing.T) {
	base := t.TempDir() + "/nested/data"
	store := NewStore(base, "feedback.csv")

	require.NoError(t, store.Append(testRecord(1)))
	assert.FileExists(t, store.Path())
}

func TestAppend_RoundTrip(t *testing.T) {
	store := NewStore(t.TempDir(), "feedback.csv")

	record := &types.Feedback{
		Timestamp: "2026-08-23T10:15:30Z",
		Name:      "Alice",
		Email:     "alice@example.com",
		Message:   "Great tool!",
	}
	require.NoError(t, store.Append(record))

	f, err := os.Open(store.Path())
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, Header, rows[0])
	assert.Equal(t, []string{record.Timestamp, record.Name, record.Email, record.Message}, rows[1])
}

func TestAppend_QuotesEmbeddedSeparators(t *testing.T) {
	store := NewStore(t.TempDir(), "feedback.csv")

	record := &types.Feedback{
		Timestamp: "2026-08-23T10:15:30Z",
		Name:      `Bob "The Builder"`,
		Email:     "bob@example.com",
		Message:   "line one,\nline two",
	}
	require.NoError(t, store.Append(record))

	f, err := os.Open(store.Path())
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, record.Name, rows[1][1])
	assert.Equal(t, record.Message, rows[1][3])
}

func TestAppend_ConcurrentWritesDoNotInterleave(t *testing.T) {
	store := NewStore(t.TempDir(), "feedback.csv")

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, store.Append(testRecord(i)))
		}(i)
	}
	wg.Wait()

	f, err := os.Open(store.Path())
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, n+1)

	for _, row := range rows[1:] {
		assert.Len(t, row, 4)
	}
}

func TestAppend_ReportsWriteErrors(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}

	store := &Store{path: "/dev/full"}
	assert.Error(t, store.Append(testRecord(1)),
		"a failed write must not be reported as success")
}

func TestCheckWritable(t *testing.T) {
	store := NewStore(t.TempDir(), "feedback.csv")
	assert.NoError(t, store.CheckWritable())
}

func TestCheckWritable_ReadOnlyDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks are bypassed when running as root")
	}

	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	store := NewStore(dir+"/data", "feedback.csv")
	assert.Error(t, store.CheckWritable())
}
