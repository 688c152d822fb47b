package style

import (
	"regexp"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// MarkupParser renders [tag]text[/tag] markup with lipgloss styles, or
// strips it for plain output
type MarkupParser struct {
	styles   map[string]lipgloss.Style
	patterns map[string]*regexp.Regexp
	tags     []string
}

// NewMarkupParser creates a new markup parser with default styles
func NewMarkupParser() *MarkupParser {
	p := &MarkupParser{
		styles:   map[string]lipgloss.Style{},
		patterns: map[string]*regexp.Regexp{},
	}
	p.AddStyle("title", TitleStyle)
	p.AddStyle("success", SuccessStyle)
	p.AddStyle("error", ErrorStyle)
	p.AddStyle("warning", WarningStyle)
	p.AddStyle("info", InfoStyle)
	p.AddStyle("muted", MutedStyle)
	p.AddStyle("token", TokenStyle)
	p.AddStyle("path", PathStyle)
	p.AddStyle("bold", lipgloss.NewStyle().Bold(true))
	return p
}

// AddStyle registers or replaces a tag
func (p *MarkupParser) AddStyle(tag string, style lipgloss.Style) {
	if _, exists := p.styles[tag]; !exists {
		p.tags = append(p.tags, tag)
		sort.Strings(p.tags)
	}
	p.styles[tag] = style
	p.patterns[tag] = regexp.MustCompile(`\[` + regexp.QuoteMeta(tag) + `\]([\s\S]*?)\[/` + regexp.QuoteMeta(tag) + `\]`)
}

// Render processes markup text and returns styled output
func (p *MarkupParser) Render(text string) string {
	return p.process(text, func(tag, content string) string {
		return p.styles[tag].Render(content)
	})
}

// Strip removes markup tags and keeps their content
func (p *MarkupParser) Strip(text string) string {
	return p.process(text, func(_, content string) string {
		return content
	})
}

func (p *MarkupParser) process(text string, apply func(tag, content string) string) string {
	result := text
	// nested tags need more than one pass
	for {
		before := result
		for _, tag := range p.tags {
			pattern := p.patterns[tag]
			result = pattern.ReplaceAllStringFunc(result, func(match string) string {
				submatch := pattern.FindStringSubmatch(match)
				if len(submatch) != 2 {
					return match
				}
				return apply(tag, submatch[1])
			})
		}
		if result == before {
			return result
		}
	}
}

// Global parser instance
var defaultParser = NewMarkupParser()

// Render is a convenience function using the default parser
func Render(text string) string {
	return defaultParser.Render(text)
}

// Strip is a convenience function using the default parser
func Strip(text string) string {
	return defaultParser.Strip(text)
}
