package processing

import (
	"fmt"

	"github.com/lfnovo/ai-meeting-notes/internal/domain/entities"
)

const summaryBasePrompt = `You are an expert meeting summarizer. Your task is to create a concise, well-structured summary of the meeting transcript provided.

The summary should:
- Be 2-4 paragraphs long
- Capture the main topics discussed
- Highlight key decisions made
- Include important outcomes or conclusions
- Be written in professional, clear language
- Focus on the most important information

Do not include action items in the summary (they will be extracted separately).`

const entityBasePrompt = `You are an expert at extracting entities from meeting transcripts.

Extract and return a list of important entities mentioned in the meeting, including:
- People's names (colleagues, clients, stakeholders)
- Company names
- Project names
- Product names
- Important tools or systems mentioned

Rules:
- Return each entity in the format "EntityName|EntityType" where EntityType is one of: Person, Company, Project, Product, Tool, Other
- Use the exact name as mentioned in the transcript
- Don't include common words or generic terms
- Focus on proper nouns and specific named entities
- If a person's full name isn't given, use what's provided (e.g., "John|Person" if that's all that's mentioned)
- If you're unsure of the type, use "Other"

Examples:
- John Smith|Person
- Microsoft|Company
- Project Alpha|Project
- Slack|Tool
- iPhone 15|Product

Return only the entity names with types, one per line, no explanations or formatting.`

const actionItemBasePrompt = `You are an expert at extracting action items from meeting transcripts.

Extract all action items, tasks, and follow-up items mentioned in the meeting.

For each action item, include:
- What needs to be done
- Who is responsible (if mentioned)
- When it should be done (if mentioned)

Format each action item as a clear, actionable statement.

Examples:
- "John will send the project proposal to the client by Friday"
- "Review the budget document and provide feedback"
- "Sarah to schedule follow-up meeting with stakeholders"

Return only the action items, one per line, no explanations or formatting.`

const titlePrompt = `Generate a concise, descriptive title for this meeting based on the transcript.

The title should:
- Be 3-8 words long
- Capture the main purpose or topic
- Be professional and clear
- Not include dates or meeting-specific words like "Meeting"

Examples:
- "Q1 Budget Planning Discussion"
- "Product Launch Strategy Review"
- "Client Onboarding Process"

Return only the title, no explanations.`

// Composer builds the system prompts for each derivation. Meeting type
// instructions, when present, are appended to the base prompt as a
// refinement; the base prompt always comes first.
type Composer struct{}

// NewComposer constructs a prompt composer
func NewComposer() *Composer {
	return &Composer{}
}

// SummaryPrompt returns the system prompt for summary generation
func (c *Composer) SummaryPrompt(meetingType *entities.MeetingType) string {
	return withCustomInstructions(summaryBasePrompt, instructionsOf(meetingType, func(mt *entities.MeetingType) string {
		return mt.SummaryInstructions
	}))
}

// EntityPrompt returns the system prompt for entity extraction
func (c *Composer) EntityPrompt(meetingType *entities.MeetingType) string {
	return withCustomInstructions(entityBasePrompt, instructionsOf(meetingType, func(mt *entities.MeetingType) string {
		return mt.EntityInstructions
	}))
}

// ActionItemPrompt returns the system prompt for action item extraction
func (c *Composer) ActionItemPrompt(meetingType *entities.MeetingType) string {
	return withCustomInstructions(actionItemBasePrompt, instructionsOf(meetingType, func(mt *entities.MeetingType) string {
		return mt.ActionItemInstructions
	}))
}

// TitlePrompt returns the system prompt for title suggestion
func (c *Composer) TitlePrompt() string {
	return titlePrompt
}

func instructionsOf(meetingType *entities.MeetingType, pick func(*entities.MeetingType) string) string {
	if meetingType == nil {
		return ""
	}
	return pick(meetingType)
}

func withCustomInstructions(base, custom string) string {
	if custom == "" {
		return base
	}
	return fmt.Sprintf("%s\n\nCustom instructions for this meeting type:\n%s", base, custom)
}
