package loadtest

import (
	"bytes"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	samples := make([]time.Duration, 0, 100)
	for i := 100; i >= 1; i-- {
		samples = append(samples, time.Duration(i)*time.Millisecond)
	}

	s := summarize(OpCreate, samples)

	assert.Equal(t, OpCreate, s.Op)
	assert.Equal(t, 100, s.Count)
	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 100*time.Millisecond, s.Max)
	assert.Equal(t, 50500*time.Microsecond, s.Mean)
	assert.Equal(t, 50*time.Millisecond, s.P50)
	assert.Equal(t, 95*time.Millisecond, s.P95)
	// input is left unsorted
	assert.Equal(t, 100*time.Millisecond, samples[0])
}

func TestSummarize_SingleSample(t *testing.T) {
	s := summarize(OpList, []time.Duration{3 * time.Millisecond})

	assert.Equal(t, 3*time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.P50)
	assert.Equal(t, 3*time.Millisecond, s.P95)
	assert.Equal(t, 3*time.Millisecond, s.Max)
}

func TestRecorder_SummariesInLifecycleOrder(t *testing.T) {
	r := NewRecorder()
	r.Record(OpDelete, time.Millisecond)
	r.Record(OpCreate, time.Millisecond)
	r.Record(OpList, time.Millisecond)

	var ops []Op
	for _, s := range r.Summaries() {
		ops = append(ops, s.Op)
	}

	assert.Equal(t, []Op{OpCreate, OpList, OpDelete}, ops)
}

func TestRecorder_MeasureRecordsFailures(t *testing.T) {
	r := NewRecorder()
	boom := errors.New("boom")

	err := r.Measure(OpGet, func() error { return boom })

	assert.ErrorIs(t, err, boom)
	require.Len(t, r.Summaries(), 1)
	assert.Equal(t, 1, r.Summaries()[0].Count)
}

func TestRecorder_Concurrent(t *testing.T) {
	r := NewRecorder()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Record(OpUpdate, time.Microsecond)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, r.Summaries()[0].Count)
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	summaries := []Summary{{
		Op:    OpCreate,
		Count: 12345,
		Min:   1500 * time.Microsecond,
		Max:   20 * time.Millisecond,
		Mean:  5 * time.Millisecond,
		P50:   4 * time.Millisecond,
		P95:   18 * time.Millisecond,
	}}

	require.NoError(t, WriteReport(&buf, summaries))

	out := buf.String()
	assert.Contains(t, out, "p95")
	assert.Contains(t, out, "create")
	assert.Contains(t, out, "12,345")
	assert.Contains(t, out, "1.5ms")
	assert.Contains(t, out, "18ms")
}
