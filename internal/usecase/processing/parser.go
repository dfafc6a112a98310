package processing

import (
	"strings"

	"github.com/lfnovo/ai-meeting-notes/internal/domain/entities"
)

// maxEntityNameLength bounds stored entity names; longer names are cut
// to fit the column.
const maxEntityNameLength = 255

// Parser turns raw model output into structured values. The model is asked
// for one item per line with no formatting, but bullets and quotes show up
// anyway, so every line is cleaned before use.
type Parser struct{}

// NewParser constructs a parser
func NewParser() *Parser {
	return &Parser{}
}

// ParseEntities parses "Name|TypeLabel" lines into mentions, preserving
// line order. Lines without a separator become a mention with the whole
// line as the name and an "Other" label. Blank lines and names shorter
// than two characters are dropped.
func (p *Parser) ParseEntities(text string) []entities.EntityMention {
	var mentions []entities.EntityMention

	for _, line := range strings.Split(text, "\n") {
		line = cleanLine(line)
		if line == "" {
			continue
		}

		name := line
		typeLabel := "Other"
		if idx := strings.Index(line, "|"); idx >= 0 {
			name = strings.TrimSpace(line[:idx])
			if label := strings.TrimSpace(line[idx+1:]); label != "" {
				typeLabel = label
			}
		}

		if len([]rune(name)) < 2 {
			continue
		}
		name = truncateRunes(name, maxEntityNameLength)

		mentions = append(mentions, entities.EntityMention{
			Name:      name,
			TypeLabel: typeLabel,
		})
	}
	return mentions
}

// ParseActionItems parses one action item per line, preserving order
func (p *Parser) ParseActionItems(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		line = cleanLine(line)
		if line == "" {
			continue
		}
		items = append(items, line)
	}
	return items
}

// ParseTitle strips quoting and whitespace from a suggested title
func (p *Parser) ParseTitle(text string) string {
	title := strings.TrimSpace(text)
	title = strings.Trim(title, `"`)
	return strings.TrimSpace(title)
}

// cleanLine trims whitespace and the bullet prefixes the model sometimes
// emits despite being told not to
func cleanLine(line string) string {
	line = strings.TrimSpace(line)
	for _, prefix := range []string{"- ", "* ", "• "} {
		if strings.HasPrefix(line, prefix) {
			line = strings.TrimSpace(line[len(prefix):])
			break
		}
	}
	return strings.Trim(line, `"`)
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
