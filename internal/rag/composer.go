package rag

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Fixed texts for the designed zero-results state. This is a degraded state,
// not an error: the composer always returns a valid Response.
const fallbackAnswer = "I don't have a direct answer for that yet, but I'd be glad to help. " +
	"Could you tell me a bit more about what you're looking for? " +
	"You can also ask about our services, past projects, technology or pricing."

var fallbackActions = []string{
	"Explore our services",
	"Browse recent projects",
	"Ask about pricing",
	"Schedule a consultation",
}

var engagedActions = []string{
	"Request a detailed proposal",
	"Book a call with the team",
	"See a matching case study",
	"Start a project scoping call",
}

var pricingActions = []string{
	"Request a fixed quote",
	"See typical project budgets",
	"Ask about the support retainer",
	"Schedule a consultation",
}

const maxSuggestedActions = 4

// GenerateResponse composes the final reply from the ranked search results
// and the conversation history. It is a pure function of its inputs; the
// engagement stage derived from history drives all branching.
func (e *Engine) GenerateResponse(query string, results []SearchResult, history []Message) Response {
	ctx := ExtractContext(history, e.ctxCfg)

	if len(results) == 0 {
		e.logger.Debug().Str("query", query).Msg("No candidates, returning fallback response")
		return Response{
			Answer:           fallbackAnswer,
			Sources:          []SearchResult{},
			Confidence:       e.scoring.ConfidenceFloor,
			SuggestedActions: append([]string(nil), fallbackActions...),
		}
	}

	primary := results[0]

	var b strings.Builder
	content := primary.Content
	if len(ctx.Topics) > 0 {
		b.WriteString("Based on our conversation about ")
		b.WriteString(strings.Join(ctx.Topics, ", "))
		b.WriteString(", ")
		content = lowerFirst(content)
	}
	b.WriteString(content)

	switch ctx.Stage {
	case StageEngaged:
		b.WriteString(" Since we've covered a lot of ground already, I can put together a detailed proposal, set up a call with the team, or share a case study that matches your situation.")
	case StageExploring:
		b.WriteString(" Happy to go deeper on any part of this, just ask.")
	}

	if n := len(ctx.UserQuestions); n > 0 {
		b.WriteString(fmt.Sprintf(" You've raised %d recent question(s); I'm keeping track so nothing gets lost.", n))
	}

	if secondary := secondaryContent(results); secondary != "" {
		b.WriteString("\n\nAlso relevant: ")
		b.WriteString(secondary)
	}

	confidence := clamp(
		e.scoring.ConfidenceFloor+primary.Relevance*e.scoring.ConfidenceSlope,
		e.scoring.ConfidenceFloor,
		e.scoring.ConfidenceCeiling,
	)

	return Response{
		Answer:           b.String(),
		Sources:          results,
		Confidence:       confidence,
		SuggestedActions: e.suggestActions(query, ctx),
	}
}

// secondaryContent pulls content from results[1..2], skipping Context
// pseudo-results since those are already folded into the primary framing.
func secondaryContent(results []SearchResult) string {
	var parts []string
	for i := 1; i < len(results) && i <= 2; i++ {
		if results[i].Category == CategoryContext {
			continue
		}
		parts = append(parts, results[i].Content)
	}
	return strings.Join(parts, " ")
}

// suggestActions picks follow-up actions: an engaged conversation overrides
// everything with the conversion list, a pricing topic gets the pricing
// list, otherwise query keywords drive the list with a consultation offer
// always appended last.
func (e *Engine) suggestActions(query string, ctx ConversationContext) []string {
	if ctx.Stage == StageEngaged {
		return append([]string(nil), engagedActions...)
	}

	for _, topic := range ctx.Topics {
		if topic == "pricing" {
			return append([]string(nil), pricingActions...)
		}
	}

	q := Normalize(query)
	var actions []string

	if containsAny(q, []string{"service", "offer", "help", "build"}) {
		actions = append(actions, "Explore our services", "See what we could build for you")
	}
	if containsAny(q, []string{"project", "portfolio", "example", "case"}) {
		actions = append(actions, "Browse recent projects")
	}
	if containsAny(q, []string{"price", "cost", "budget", "quote"}) {
		actions = append(actions, "Request a fixed quote")
	}
	if containsAny(q, []string{"tech", "stack", "technology", "tool"}) {
		actions = append(actions, "Review our technology stack")
	}

	actions = append(actions, "Schedule a consultation")
	if len(actions) > maxSuggestedActions {
		actions = actions[:maxSuggestedActions]
	}
	return actions
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
