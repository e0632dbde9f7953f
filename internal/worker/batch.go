package worker

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ppiankov/tkdgloss/internal/model"
)

// Analyzer defines the interface for analyzing a technique name
type Analyzer interface {
	Analyze(ctx context.Context, phrase string) (*model.Report, error)
}

// AnalyzeJob analyzes one phrase of a batch
type AnalyzeJob struct {
	Index    int
	Phrase   string
	Analyzer Analyzer
}

// Execute executes the analysis
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	report, err := j.Analyzer.Analyze(ctx, j.Phrase)
	return &AnalyzeResult{
		Index:  j.Index,
		Phrase: j.Phrase,
		Report: report,
		Error:  err,
	}
}

// AnalyzeResult is the outcome of one AnalyzeJob
type AnalyzeResult struct {
	Index  int
	Phrase string
	Report *model.Report
	Error  error
}

// GetError returns the error from the analysis
func (r *AnalyzeResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes many phrases concurrently
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// ProcessPhrases analyzes phrases concurrently. Results are in input order;
// phrases never started because ctx was canceled carry ctx's error.
func (b *BatchProcessor) ProcessPhrases(ctx context.Context, phrases []string) []*AnalyzeResult {
	if len(phrases) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	for i, phrase := range phrases {
		job := &AnalyzeJob{
			Index:    i,
			Phrase:   phrase,
			Analyzer: b.analyzer,
		}
		if !pool.Submit(job) {
			break
		}
	}

	ordered := make([]*AnalyzeResult, len(phrases))
	for _, result := range pool.Wait() {
		r := result.(*AnalyzeResult)
		ordered[r.Index] = r
	}

	for i, r := range ordered {
		if r != nil {
			continue
		}
		err := ctx.Err()
		if err == nil {
			err = context.Canceled
		}
		ordered[i] = &AnalyzeResult{Index: i, Phrase: phrases[i], Error: err}
	}

	return ordered
}

// ProcessFile reads phrases from a file and analyzes them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*AnalyzeResult, error) {
	phrases, err := ReadPhrasesFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read phrases: %w", err)
	}

	return b.ProcessPhrases(ctx, phrases), nil
}

// ReadPhrasesFromFile reads phrases from a file (one per line); "-" reads
// standard input
func ReadPhrasesFromFile(filePath string) ([]string, error) {
	if filePath == "-" {
		return ReadPhrases(os.Stdin)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return ReadPhrases(file)
}

// ReadPhrases reads one phrase per line, skipping blank lines and # comments
// and dropping repeats
func ReadPhrases(r io.Reader) ([]string, error) {
	var phrases []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			phrases = append(phrases, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return phrases, nil
}
