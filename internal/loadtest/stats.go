package loadtest

import (
	"fmt"
	"io"
	"math"
	"slices"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
)

// Op names a measured API call.
type Op string

const (
	OpCreate Op = "create"
	OpGet    Op = "get"
	OpUpdate Op = "update"
	OpList   Op = "list"
	OpDelete Op = "delete"
)

var opOrder = []Op{OpCreate, OpGet, OpUpdate, OpList, OpDelete}

// Recorder collects latencies. It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	samples map[Op][]time.Duration
}

func NewRecorder() *Recorder {
	return &Recorder{samples: make(map[Op][]time.Duration)}
}

func (r *Recorder) Record(op Op, d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.samples[op] = append(r.samples[op], d)
}

// Measure runs fn and records its latency under op, whatever fn returns.
func (r *Recorder) Measure(op Op, fn func() error) error {
	start := time.Now()
	err := fn()
	r.Record(op, time.Since(start))
	return err
}

// Summary holds latency statistics of one Op.
type Summary struct {
	Op    Op
	Count int
	Min   time.Duration
	Max   time.Duration
	Mean  time.Duration
	P50   time.Duration
	P95   time.Duration
}

// Summaries returns one Summary per recorded Op in lifecycle order.
func (r *Recorder) Summaries() []Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	summaries := make([]Summary, 0, len(r.samples))
	for _, op := range opOrder {
		if samples, ok := r.samples[op]; ok && len(samples) > 0 {
			summaries = append(summaries, summarize(op, samples))
		}
	}
	return summaries
}

func summarize(op Op, samples []time.Duration) Summary {
	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	var total time.Duration
	for _, d := range sorted {
		total += d
	}

	return Summary{
		Op:    op,
		Count: len(sorted),
		Min:   sorted[0],
		Max:   sorted[len(sorted)-1],
		Mean:  total / time.Duration(len(sorted)),
		P50:   percentile(sorted, 50),
		P95:   percentile(sorted, 95),
	}
}

// percentile uses the nearest-rank method on sorted samples.
func percentile(sorted []time.Duration, p float64) time.Duration {
	rank := int(math.Ceil(p * float64(len(sorted)) / 100))
	if rank < 1 {
		rank = 1
	}
	return sorted[rank-1]
}

// WriteReport prints summaries as an aligned table.
func WriteReport(w io.Writer, summaries []Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "op\tcalls\tmin\tmax\tmean\tp50\tp95\t")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			s.Op, humanize.Comma(int64(s.Count)),
			formatLatency(s.Min), formatLatency(s.Max), formatLatency(s.Mean),
			formatLatency(s.P50), formatLatency(s.P95))
	}
	return tw.Flush()
}

// formatLatency prints milliseconds with three significant decimals.
func formatLatency(d time.Duration) string {
	return humanize.FtoaWithDigits(float64(d)/float64(time.Millisecond), 3) + "ms"
}
