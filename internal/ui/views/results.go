package views

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/pharmtui/internal/api"
	"github.com/Cyclone1070/pharmtui/internal/ui/services"
	"github.com/charmbracelet/lipgloss"
)

// EmptySearchText is shown while the search panel holds no results.
const EmptySearchText = "No results yet. Try seeding demo data below."

// NoReplyText is shown when the chat backend answered without a reply.
const NoReplyText = "No reply"

// FormatDrugs renders search results as cards.
func FormatDrugs(items []api.DrugRecord, width int, t Theme) string {
	if len(items) == 0 {
		return t.MutedStyle.Render(EmptySearchText)
	}

	wrap := lipgloss.NewStyle().Width(width)
	var cards []string
	for _, d := range items {
		lines := []string{t.CardTitleStyle.Render(d.Name)}
		if len(d.BrandNames) > 0 {
			lines = append(lines, t.MutedStyle.Render(strings.Join(d.BrandNames, ", ")))
		}
		if d.ClassName != "" {
			lines = append(lines, d.ClassName)
		}
		lines = append(lines,
			t.LabelStyle.Render("Indications:")+" "+strings.Join(d.Indications, ", "),
			t.LabelStyle.Render("Side effects:")+" "+strings.Join(d.SideEffects, ", "),
		)
		cards = append(cards, wrap.Render(strings.Join(lines, "\n")))
	}
	return strings.Join(cards, "\n\n")
}

// FormatPairs renders interaction results with severity badges.
func FormatPairs(pairs []api.InteractionPair, width int, t Theme) string {
	if len(pairs) == 0 {
		return ""
	}

	wrap := lipgloss.NewStyle().Width(width)
	var rows []string
	for _, p := range pairs {
		label := string(p.Severity)
		if label == "" {
			label = string(api.SeverityUnknown)
		}
		header := t.CardTitleStyle.Render(fmt.Sprintf("%s × %s", p.DrugA, p.DrugB)) +
			"  " + t.BadgeStyle(p.Severity).Render(label)

		lines := []string{header}
		if p.Description != "" {
			lines = append(lines, p.Description)
		}
		if p.Management != "" {
			lines = append(lines, t.MutedStyle.Render("Management: "+p.Management))
		}
		rows = append(rows, wrap.Render(strings.Join(lines, "\n")))
	}
	return strings.Join(rows, "\n\n")
}

// FormatReply renders the chatbot reply as markdown.
func FormatReply(reply string, hasReply bool, width int, renderer services.MarkdownRenderer) string {
	if !hasReply {
		return ""
	}
	if reply == "" {
		return NoReplyText
	}
	return services.RenderMarkdown(reply, width, renderer)
}

// FormatQuiz renders generated questions with their options.
func FormatQuiz(items []api.QuizItem, width int, t Theme) string {
	if len(items) == 0 {
		return ""
	}

	wrap := lipgloss.NewStyle().Width(width)
	var blocks []string
	for i, q := range items {
		lines := []string{t.CardTitleStyle.Render(fmt.Sprintf("%d. %s", i+1, q.Question))}
		for _, o := range q.Options {
			lines = append(lines, "  • "+o)
		}
		if answer, ok := q.Answer(); ok {
			lines = append(lines, t.MutedStyle.Render("Answer: "+answer))
		}
		blocks = append(blocks, wrap.Render(strings.Join(lines, "\n")))
	}
	return strings.Join(blocks, "\n\n")
}

// FormatSummary renders the research summary as markdown.
func FormatSummary(summary string, width int, renderer services.MarkdownRenderer) string {
	if summary == "" {
		return ""
	}
	return services.RenderMarkdown(summary, width, renderer)
}
