// Package batch runs the scoring engine over collections of lead records
// with bounded concurrency. One malformed record never aborts the batch.
package batch

import (
	"context"
	"math"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/leadscore-cli/internal/model"
	"github.com/sells-group/leadscore-cli/internal/scorer"
)

// Result is the scoring outcome for one input record. Index refers to the
// record's position in the input; output order always matches input order.
type Result struct {
	Index           int             `json:"index"`
	Lead            model.Lead      `json:"lead"`
	Breakdown       model.Breakdown `json:"breakdown"`
	Recommendations []string        `json:"recommendations"`
	QualityScore    float64         `json:"data_quality_score"`
}

// RecordError reports a record excluded from scoring.
type RecordError struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

// Summary aggregates a batch run.
type Summary struct {
	Total        int     `json:"total"`
	Scored       int     `json:"scored"`
	Failed       int     `json:"failed"`
	HighPriority int     `json:"high_priority"`
	MedPriority  int     `json:"medium_priority"`
	LowPriority  int     `json:"low_priority"`
	AverageScore float64 `json:"average_score"`
}

// Output is the full result of a batch run.
type Output struct {
	Results []Result      `json:"results"`
	Errors  []RecordError `json:"errors"`
	Summary Summary       `json:"summary"`
}

// Orchestrator scores batches of leads.
type Orchestrator struct {
	scorer      *scorer.Scorer
	concurrency int
}

// New creates an Orchestrator. Concurrency values below 1 run serially.
func New(s *scorer.Scorer, concurrency int) *Orchestrator {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Orchestrator{scorer: s, concurrency: concurrency}
}

// Run converts and scores raw records. Records failing structural
// conversion become error entries; everything else is scored concurrently
// and returned in input order.
func (o *Orchestrator) Run(ctx context.Context, records []model.RawRecord) Output {
	leads := make([]*model.Lead, len(records))
	var errs []RecordError

	for i, raw := range records {
		lead, err := model.LeadFromRaw(raw)
		if err != nil {
			errs = append(errs, RecordError{Index: i, Error: err.Error()})
			continue
		}
		leads[i] = &lead
	}

	out := o.score(ctx, leads)
	out.Errors = errs
	out.Summary = summarize(len(records), out.Results, len(errs))

	zap.L().Info("batch: scoring complete",
		zap.Int("total", out.Summary.Total),
		zap.Int("scored", out.Summary.Scored),
		zap.Int("failed", out.Summary.Failed),
	)

	return out
}

// RunLeads scores already-typed leads; structural errors cannot occur.
func (o *Orchestrator) RunLeads(ctx context.Context, leads []model.Lead) Output {
	ptrs := make([]*model.Lead, len(leads))
	for i := range leads {
		ptrs[i] = &leads[i]
	}
	out := o.score(ctx, ptrs)
	out.Summary = summarize(len(leads), out.Results, 0)
	return out
}

func (o *Orchestrator) score(ctx context.Context, leads []*model.Lead) Output {
	slots := make([]*Result, len(leads))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for i, lead := range leads {
		if lead == nil {
			continue
		}
		i, lead := i, lead
		g.Go(func() error {
			breakdown, report := o.scorer.ScoreWithReport(*lead)
			slots[i] = &Result{
				Index:           i,
				Lead:            *lead,
				Breakdown:       breakdown,
				Recommendations: o.scorer.Recommend(breakdown, *lead),
				QualityScore:    report.QualityScore,
			}
			return nil
		})
	}
	// Workers only write their own slot and never return errors.
	_ = g.Wait()

	results := make([]Result, 0, len(leads))
	for _, r := range slots {
		if r != nil {
			results = append(results, *r)
		}
	}
	return Output{Results: results}
}

func summarize(total int, results []Result, failed int) Summary {
	s := Summary{Total: total, Scored: len(results), Failed: failed}

	var sum float64
	for _, r := range results {
		sum += r.Breakdown.LeadScore
		switch r.Breakdown.Priority {
		case model.PriorityHigh:
			s.HighPriority++
		case model.PriorityMedium:
			s.MedPriority++
		case model.PriorityLow:
			s.LowPriority++
		}
	}
	if len(results) > 0 {
		s.AverageScore = math.Round(sum/float64(len(results))*100) / 100
	}
	return s
}
