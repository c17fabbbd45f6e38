package phoneclip

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Job is one extraction request: a word sequence in an utterance.
type Job struct {
	Utterance string
	Words     []string
}

// Outcome is the result of one Job. Exactly one of Result and Err is set.
type Outcome struct {
	Job    Job
	Result *Result
	Err    error
}

// LoadJobs reads a batch file.
// Format: utterance_id word1 word2 ..., one job per line.
func LoadJobs(r io.Reader) ([]Job, error) {
	var jobs []Job
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected utterance id and at least one word", lineNum)
		}
		jobs = append(jobs, Job{Utterance: fields[0], Words: fields[1:]})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return jobs, nil
}

// LoadJobsFile is a convenience wrapper that opens a file path.
func LoadJobsFile(path string) ([]Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadJobs(f)
}

// ExtractBatch runs ExtractFile for every job with at most workers running at
// once. A failing job is recorded in its Outcome and does not stop the others.
// Outcomes are returned in job order. Cancelling ctx makes jobs that have not
// started yet fail with the context error.
func (e *Extractor) ExtractBatch(ctx context.Context, jobs []Job, workers int) []Outcome {
	if workers <= 0 {
		workers = 1
	}
	outcomes := make([]Outcome, len(jobs))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, job := range jobs {
		g.Go(func() error {
			res, err := e.ExtractFile(ctx, job.Utterance, job.Words)
			outcomes[i] = Outcome{Job: job, Result: res, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
		}
	}
	e.Logger.Info("batch finished",
		slog.Int("jobs", len(jobs)),
		slog.Int("succeeded", len(jobs)-failed),
		slog.Int("failed", failed),
	)
	return outcomes
}
