package processing

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/lfnovo/ai-meeting-notes/internal/domain/entities"
	"github.com/lfnovo/ai-meeting-notes/pkg/config"
)

// fakeCompleter routes calls by the system prompt so each derivation can
// succeed or fail independently. Safe for concurrent use.
type fakeCompleter struct {
	summaryText, entityText, actionText, titleText string
	summaryErr, entityErr, actionErr, titleErr     error

	calls int64
}

func (f *fakeCompleter) CompleteWith(ctx context.Context, instructions, body string, temperature float64, maxTokens int) (string, error) {
	atomic.AddInt64(&f.calls, 1)
	switch {
	case strings.Contains(instructions, "meeting summarizer"):
		return f.summaryText, f.summaryErr
	case strings.Contains(instructions, "extracting entities"):
		return f.entityText, f.entityErr
	case strings.Contains(instructions, "extracting action items"):
		return f.actionText, f.actionErr
	default:
		return f.titleText, f.titleErr
	}
}

func testProcessingConfig() *config.ProcessingConfig {
	return &config.ProcessingConfig{
		DerivationTimeout: 5 * time.Second,
		RetryMaxElapsed:   time.Millisecond,
		MaxBulkBatch:      100,
	}
}

func TestProcess_EmptyTranscript(t *testing.T) {
	svc := NewService(&fakeCompleter{}, testProcessingConfig(), zap.NewNop())

	_, err := svc.Process(context.Background(), "   \n\t ", nil)
	if !errors.Is(err, entities.ErrEmptyTranscript) {
		t.Fatalf("expected ErrEmptyTranscript got %v", err)
	}
}

func TestProcess_AllDerivationsSucceed(t *testing.T) {
	llm := &fakeCompleter{
		summaryText: "  The team discussed Q1 planning.  ",
		entityText:  "John Smith|Person\nAcme|Company",
		actionText:  "Send the proposal by Friday",
	}
	svc := NewService(llm, testProcessingConfig(), zap.NewNop())

	result, err := svc.Process(context.Background(), "transcript text", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Summary != "The team discussed Q1 planning." {
		t.Fatalf("unexpected summary %q", result.Summary)
	}
	if len(result.Entities) != 2 {
		t.Fatalf("expected 2 entities got %d", len(result.Entities))
	}
	if len(result.ActionItems) != 1 {
		t.Fatalf("expected 1 action item got %d", len(result.ActionItems))
	}
	if len(result.Degraded) != 0 {
		t.Fatalf("expected no degraded derivations got %v", result.Degraded)
	}
}

func TestProcess_AllDerivationsFail(t *testing.T) {
	llm := &fakeCompleter{
		summaryErr: errors.New("summary quota exhausted"),
		entityErr:  errors.New("entity model overloaded"),
		actionErr:  errors.New("action item timeout"),
	}
	svc := NewService(llm, testProcessingConfig(), zap.NewNop())

	_, err := svc.Process(context.Background(), "transcript text", nil)
	if !errors.Is(err, entities.ErrProcessingUnavailable) {
		t.Fatalf("expected ErrProcessingUnavailable got %v", err)
	}
	// The surfaced error names every failed derivation, not just the first
	for _, cause := range []string{"summary quota exhausted", "entity model overloaded", "action item timeout"} {
		if !strings.Contains(err.Error(), cause) {
			t.Fatalf("error %q does not mention cause %q", err, cause)
		}
	}
}

func TestProcess_SummaryFailureDegrades(t *testing.T) {
	llm := &fakeCompleter{
		summaryErr: errors.New("timeout"),
		entityText: "Acme|Company",
		actionText: "Review the budget",
	}
	svc := NewService(llm, testProcessingConfig(), zap.NewNop())

	result, err := svc.Process(context.Background(), "transcript text", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Summary != degradedSummaryText {
		t.Fatalf("expected placeholder summary got %q", result.Summary)
	}
	if len(result.Entities) != 1 || len(result.ActionItems) != 1 {
		t.Fatalf("surviving derivations must still land: %+v", result)
	}
	if len(result.Degraded) != 1 || result.Degraded[0] != derivationSummary {
		t.Fatalf("expected degraded=[summary] got %v", result.Degraded)
	}
}

func TestProcess_ExtractionFailuresDegradeToEmpty(t *testing.T) {
	llm := &fakeCompleter{
		summaryText: "A summary.",
		entityErr:   errors.New("timeout"),
		actionErr:   errors.New("timeout"),
	}
	svc := NewService(llm, testProcessingConfig(), zap.NewNop())

	result, err := svc.Process(context.Background(), "transcript text", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Summary != "A summary." {
		t.Fatalf("unexpected summary %q", result.Summary)
	}
	if len(result.Entities) != 0 || len(result.ActionItems) != 0 {
		t.Fatalf("failed extractions must be empty: %+v", result)
	}
	if len(result.Degraded) != 2 {
		t.Fatalf("expected 2 degraded derivations got %v", result.Degraded)
	}
}

func TestSuggestTitle_FallbackOnError(t *testing.T) {
	llm := &fakeCompleter{titleErr: errors.New("provider down")}
	svc := NewService(llm, testProcessingConfig(), zap.NewNop())

	if got := svc.SuggestTitle(context.Background(), "transcript"); got != fallbackTitle {
		t.Fatalf("expected fallback title got %q", got)
	}
}

func TestSuggestTitle_TrimsProviderOutput(t *testing.T) {
	llm := &fakeCompleter{titleText: "\"Q1 Budget Planning\"\n"}
	svc := NewService(llm, testProcessingConfig(), zap.NewNop())

	if got := svc.SuggestTitle(context.Background(), "transcript"); got != "Q1 Budget Planning" {
		t.Fatalf("unexpected title %q", got)
	}
}
