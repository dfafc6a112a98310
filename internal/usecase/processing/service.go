package processing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/lfnovo/ai-meeting-notes/internal/domain/entities"
	"github.com/lfnovo/ai-meeting-notes/pkg/config"
)

// Per-derivation sampling parameters. Extraction runs colder than the
// summary so the line format stays stable.
const (
	summaryTemperature = 0.3
	summaryMaxTokens   = 700

	entityTemperature = 0.1
	entityMaxTokens   = 300

	actionItemTemperature = 0.1
	actionItemMaxTokens   = 400

	titleTemperature = 0.3
	titleMaxTokens   = 50

	// titleTranscriptLimit caps how much transcript the title prompt sees
	titleTranscriptLimit = 1000
)

// degradedSummaryText is stored when the summary derivation fails but at
// least one other derivation succeeded
const degradedSummaryText = "Summary generation failed."

// fallbackTitle is returned when title suggestion fails
const fallbackTitle = "Meeting Summary"

// Derivation names recorded in ProcessingResult.Degraded
const (
	derivationSummary     = "summary"
	derivationEntities    = "entities"
	derivationActionItems = "action_items"
)

// Completer is the LLM surface the processing service needs
type Completer interface {
	CompleteWith(ctx context.Context, instructions string, body string, temperature float64, maxTokens int) (string, error)
}

// Service defines meeting processing methods
type Service interface {
	// Process derives summary, entity mentions and action items from a
	// transcript. The three derivations run concurrently; a failing one
	// degrades to its default instead of failing the call. Only when all
	// three fail does Process return an error.
	Process(ctx context.Context, transcript string, meetingType *entities.MeetingType) (*entities.ProcessingResult, error)

	// SuggestTitle proposes a short title for the transcript. It never
	// fails; on provider errors a generic title is returned.
	SuggestTitle(ctx context.Context, transcript string) string
}

type processingService struct {
	llm      Completer
	composer *Composer
	parser   *Parser
	cfg      *config.ProcessingConfig
	logger   *zap.Logger
}

// NewService constructs a processing service
func NewService(llm Completer, cfg *config.ProcessingConfig, logger *zap.Logger) Service {
	return &processingService{
		llm:      llm,
		composer: NewComposer(),
		parser:   NewParser(),
		cfg:      cfg,
		logger:   logger,
	}
}

// Process derives summary, entities and action items concurrently
func (s *processingService) Process(ctx context.Context, transcript string, meetingType *entities.MeetingType) (*entities.ProcessingResult, error) {
	if strings.TrimSpace(transcript) == "" {
		return nil, entities.ErrEmptyTranscript
	}

	s.logger.Info("🤖 Processing meeting transcript",
		zap.Int("transcript_length", len(transcript)),
		zap.Bool("has_meeting_type", meetingType != nil))

	var (
		wg sync.WaitGroup

		summaryText, entityText, actionText string
		summaryErr, entityErr, actionErr    error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		summaryText, summaryErr = s.derive(ctx,
			s.composer.SummaryPrompt(meetingType),
			fmt.Sprintf("Please summarize this meeting transcript:\n\n%s", transcript),
			summaryTemperature, summaryMaxTokens)
	}()
	go func() {
		defer wg.Done()
		entityText, entityErr = s.derive(ctx,
			s.composer.EntityPrompt(meetingType),
			fmt.Sprintf("Extract entities from this meeting transcript:\n\n%s", transcript),
			entityTemperature, entityMaxTokens)
	}()
	go func() {
		defer wg.Done()
		actionText, actionErr = s.derive(ctx,
			s.composer.ActionItemPrompt(meetingType),
			fmt.Sprintf("Extract action items from this meeting transcript:\n\n%s", transcript),
			actionItemTemperature, actionItemMaxTokens)
	}()
	wg.Wait()

	if summaryErr != nil && entityErr != nil && actionErr != nil {
		s.logger.Error("❌ All derivations failed",
			zap.NamedError("summary", summaryErr),
			zap.NamedError("entities", entityErr),
			zap.NamedError("action_items", actionErr))
		return nil, fmt.Errorf("%w: %v", entities.ErrProcessingUnavailable,
			errors.Join(summaryErr, entityErr, actionErr))
	}

	result := &entities.ProcessingResult{}

	if summaryErr != nil {
		s.logger.Warn("⚠️ Summary derivation failed, storing placeholder", zap.Error(summaryErr))
		result.Summary = degradedSummaryText
		result.Degraded = append(result.Degraded, derivationSummary)
	} else {
		result.Summary = strings.TrimSpace(summaryText)
	}

	if entityErr != nil {
		s.logger.Warn("⚠️ Entity derivation failed, continuing without entities", zap.Error(entityErr))
		result.Degraded = append(result.Degraded, derivationEntities)
	} else {
		result.Entities = s.parser.ParseEntities(entityText)
	}

	if actionErr != nil {
		s.logger.Warn("⚠️ Action item derivation failed, continuing without action items", zap.Error(actionErr))
		result.Degraded = append(result.Degraded, derivationActionItems)
	} else {
		result.ActionItems = s.parser.ParseActionItems(actionText)
	}

	s.logger.Info("✅ Meeting processed",
		zap.Int("entities", len(result.Entities)),
		zap.Int("action_items", len(result.ActionItems)),
		zap.Strings("degraded", result.Degraded))

	return result, nil
}

// SuggestTitle proposes a short title for the transcript
func (s *processingService) SuggestTitle(ctx context.Context, transcript string) string {
	excerpt := transcript
	if len([]rune(excerpt)) > titleTranscriptLimit {
		excerpt = string([]rune(excerpt)[:titleTranscriptLimit]) + "..."
	}

	text, err := s.derive(ctx,
		s.composer.TitlePrompt(),
		fmt.Sprintf("Generate a title for this meeting:\n\n%s", excerpt),
		titleTemperature, titleMaxTokens)
	if err != nil {
		s.logger.Warn("⚠️ Title suggestion failed, using fallback", zap.Error(err))
		return fallbackTitle
	}

	title := s.parser.ParseTitle(text)
	if title == "" {
		return fallbackTitle
	}
	return title
}

// derive performs one provider call with a per-call timeout and
// exponential backoff retries
func (s *processingService) derive(ctx context.Context, instructions, body string, temperature float64, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.DerivationTimeout)
	defer cancel()

	var out string
	operation := func() error {
		text, err := s.llm.CompleteWith(ctx, instructions, body, temperature, maxTokens)
		if err != nil {
			return err
		}
		out = text
		return nil
	}

	// Retry logic with exponential backoff
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = s.cfg.RetryMaxElapsed

	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		return "", err
	}
	return out, nil
}
