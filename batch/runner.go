package batch

import (
	"log"
	"time"
)

// Runner executes per-item work with pacing between items. Individual
// failures are counted, never fatal; seeding scripts always finish the
// batch and report a tally.
type Runner struct {
	// Delay between consecutive items, to stay polite with rate
	// limited APIs.
	Delay time.Duration
	// LongPauseEvery inserts LongPause after that many items. Zero
	// disables it.
	LongPauseEvery int
	LongPause      time.Duration
}

// Report is the outcome tally of a run.
type Report struct {
	Success int
	Failed  int
}

func (r Report) Total() int { return r.Success + r.Failed }

// SuccessRate returns the percentage of items that succeeded.
func (r Report) SuccessRate() float64 {
	if r.Total() == 0 {
		return 0
	}
	return float64(r.Success) / float64(r.Total()) * 100
}

// Log prints the final tally.
func (r Report) Log(what string) {
	log.Printf("🎉 Done: %d/%d %s processed (%.0f%% success, %d failed)",
		r.Success, r.Total(), what, r.SuccessRate(), r.Failed)
}

// Run executes work for each index in [0, total). Errors are logged
// and counted.
func (r Runner) Run(total int, work func(i int) error) Report {
	var report Report
	for i := 0; i < total; i++ {
		if err := work(i); err != nil {
			log.Printf("❌ Item %d/%d failed: %v", i+1, total, err)
			report.Failed++
		} else {
			report.Success++
		}

		if i == total-1 {
			break
		}
		if r.LongPauseEvery > 0 && (i+1)%r.LongPauseEvery == 0 {
			log.Printf("⏸️ Pausing %s after %d items...", r.LongPause, i+1)
			time.Sleep(r.LongPause)
		} else if r.Delay > 0 {
			time.Sleep(r.Delay)
		}
	}
	return report
}
