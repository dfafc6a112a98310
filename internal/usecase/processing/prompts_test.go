package processing

import (
	"strings"
	"testing"

	"github.com/lfnovo/ai-meeting-notes/internal/domain/entities"
)

func TestComposer_BasePromptWithoutMeetingType(t *testing.T) {
	c := NewComposer()

	if got := c.SummaryPrompt(nil); got != summaryBasePrompt {
		t.Fatalf("expected bare base prompt, got %q", got)
	}
	if got := c.EntityPrompt(nil); got != entityBasePrompt {
		t.Fatalf("expected bare base prompt, got %q", got)
	}
	if got := c.ActionItemPrompt(nil); got != actionItemBasePrompt {
		t.Fatalf("expected bare base prompt, got %q", got)
	}
}

func TestComposer_EmptyInstructionsLeaveBaseUntouched(t *testing.T) {
	c := NewComposer()
	mt := &entities.MeetingType{Slug: "general"}

	if got := c.SummaryPrompt(mt); got != summaryBasePrompt {
		t.Fatalf("expected bare base prompt for empty instructions, got %q", got)
	}
}

func TestComposer_AppendsCustomInstructions(t *testing.T) {
	c := NewComposer()
	mt := &entities.MeetingType{
		Slug:                "standup",
		SummaryInstructions: "Focus on blockers.",
		EntityInstructions:  "Extract team member names.",
	}

	got := c.SummaryPrompt(mt)
	if !strings.HasPrefix(got, summaryBasePrompt) {
		t.Fatalf("base prompt must come first")
	}
	if !strings.Contains(got, "Custom instructions for this meeting type:\nFocus on blockers.") {
		t.Fatalf("custom instructions missing from %q", got)
	}

	// Each derivation picks its own instruction field
	if !strings.Contains(c.EntityPrompt(mt), "Extract team member names.") {
		t.Fatalf("entity prompt missing entity instructions")
	}
	if c.ActionItemPrompt(mt) != actionItemBasePrompt {
		t.Fatalf("empty action item instructions must leave base untouched")
	}
}
