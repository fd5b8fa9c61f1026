package worksheet

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/formula-cli/internal/solve"
)

// Result is the outcome of one case. Err is set when the case names an
// unknown formula, category or scenario; otherwise Outcome holds the result.
type Result struct {
	Case    Case          `json:"case"`
	Outcome solve.Outcome `json:"outcome"`
	Err     string        `json:"error,omitempty"`
}

// Failed reports whether the case could not be attempted or ended in error.
func (r Result) Failed() bool {
	return r.Err != "" || r.Outcome.Failed()
}

// Report is the result of one batch run, in case order.
type Report struct {
	RunID   string        `json:"run_id"`
	Started time.Time     `json:"started"`
	Elapsed time.Duration `json:"elapsed"`
	Results []Result      `json:"results"`
	Solved  int           `json:"solved"`
	Failed  int           `json:"failed"`
}

// Runner solves cases concurrently.
type Runner struct {
	disp        *solve.Dispatcher
	concurrency int
}

// NewRunner creates a Runner over d with at most concurrency cases in flight.
func NewRunner(d *solve.Dispatcher, concurrency int) *Runner {
	return &Runner{disp: d, concurrency: max(concurrency, 1)}
}

// Run solves every case. A case that cannot be attempted is recorded in its
// Result and does not stop the run; only cancellation of ctx does.
func (r *Runner) Run(ctx context.Context, cases []Case) (*Report, error) {
	rep := &Report{
		RunID:   uuid.New().String(),
		Started: time.Now(),
		Results: make([]Result, len(cases)),
	}
	log := zap.L().With(zap.String("run_id", rep.RunID))
	log.Info("worksheet: run started",
		zap.Int("cases", len(cases)),
		zap.Int("concurrency", r.concurrency),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	var solved, failed atomic.Int64
	for i, c := range cases {
		i, c := i, c
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return eris.Wrap(err, "worksheet: run cancelled")
			}

			res := Result{Case: c}
			out, err := r.disp.Solve(c.Request())
			if err != nil {
				res.Err = err.Error()
				log.Warn("worksheet: case rejected", zap.String("case", c.Name), zap.Error(err))
			} else {
				res.Outcome = out
			}

			switch {
			case res.Failed():
				failed.Add(1)
			case res.Outcome.State == solve.StateSolved:
				solved.Add(1)
			}
			rep.Results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	rep.Elapsed = time.Since(rep.Started)
	rep.Solved = int(solved.Load())
	rep.Failed = int(failed.Load())
	log.Info("worksheet: run complete",
		zap.Int("solved", rep.Solved),
		zap.Int("failed", rep.Failed),
		zap.Duration("elapsed", rep.Elapsed),
	)
	return rep, nil
}
