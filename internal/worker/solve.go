package worker

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/ppiankov/raadsel/internal/model"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Answerer answers a single puzzle prompt; llm.Provider satisfies it
type Answerer interface {
	Answer(ctx context.Context, prompt string) (string, error)
}

// SolveJob asks the answerer for one puzzle
type SolveJob struct {
	Index    int
	Puzzle   model.Puzzle
	Answerer Answerer
}

// Execute runs the job
func (j *SolveJob) Execute(ctx context.Context) Result {
	answer, err := j.Answerer.Answer(ctx, j.Puzzle.Puzzle)
	return &SolveResult{
		Index: j.Index,
		Record: model.EvaluationRecord{
			Prompt: j.Puzzle.Puzzle,
			Answer: j.Puzzle.Answer,
			Result: answer,
		},
		Err: err,
	}
}

// SolveResult is the answer to the puzzle at Index
type SolveResult struct {
	Index  int
	Record model.EvaluationRecord
	Err    error
}

// GetError returns the answering error, if any
func (r *SolveResult) GetError() error {
	return r.Err
}

// BatchProcessor answers puzzle sets concurrently
type BatchProcessor struct {
	answerer    Answerer
	concurrency int
	logger      *zap.Logger
}

// NewBatchProcessor creates a batch processor with the given number of workers
func NewBatchProcessor(answerer Answerer, concurrency int, logger *zap.Logger) *BatchProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BatchProcessor{
		answerer:    answerer,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Solve answers every puzzle and returns the records in input order, so
// index i of the output always belongs to puzzles[i]. Failed puzzles keep
// an empty result and their errors are combined into the returned error.
func (b *BatchProcessor) Solve(ctx context.Context, puzzles []model.Puzzle) ([]model.EvaluationRecord, error) {
	records := make([]model.EvaluationRecord, len(puzzles))
	if len(puzzles) == 0 {
		return records, nil
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	var submitted atomic.Int64
	go func() {
		defer pool.Close()
		for i, pz := range puzzles {
			if !pool.Submit(&SolveJob{Index: i, Puzzle: pz, Answerer: b.answerer}) {
				return
			}
			submitted.Add(1)
		}
	}()

	var errs error
	done := 0
	for r := range pool.Results() {
		res := r.(*SolveResult)
		records[res.Index] = res.Record
		done++
		if res.Err != nil {
			errs = multierr.Append(errs, fmt.Errorf("puzzle %d (%s): %w", res.Index, res.Record.Answer, res.Err))
			b.logger.Warn("puzzle not answered", zap.Int("index", res.Index), zap.Error(res.Err))
			continue
		}
		b.logger.Debug("puzzle answered",
			zap.Int("index", res.Index),
			zap.Int("done", done),
			zap.Int("total", len(puzzles)))
	}

	if done < len(puzzles) {
		if err := ctx.Err(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("solve interrupted after %d of %d puzzles (%d submitted): %w",
				done, len(puzzles), submitted.Load(), err))
		}
	}
	return records, errs
}
