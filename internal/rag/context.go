package rag

import "strings"

// ContextConfig tunes conversation context extraction.
type ContextConfig struct {
	// WindowSize bounds how many trailing history entries are scanned.
	WindowSize int
	// MaxQuestions bounds how many recent user questions are retained.
	MaxQuestions int
	// FullHistoryTopics scans the entire history instead of the trailing
	// window. With the window, topic and stage signals can regress once the
	// triggering message scrolls out; scanning everything makes the stage
	// monotonic for a session.
	FullHistoryTopics bool
}

// DefaultContextConfig returns the standard extraction settings.
func DefaultContextConfig() ContextConfig {
	return ContextConfig{
		WindowSize:   10,
		MaxQuestions: 3,
	}
}

// topicBuckets are the fixed topic classes tracked across a conversation.
// First matching marker wins per bucket per message; any number of buckets
// may match a single message.
var topicBuckets = []struct {
	name    string
	markers []string
}{
	{"data-analysis", []string{"data analysis", "analytics", "dashboard", "report", "data", "forecast"}},
	{"chatbots", []string{"chatbot", "chat bot", "bot", "assistant", "conversational"}},
	{"web-development", []string{"website", "web site", "landing page", "web app", "frontend", "web development"}},
	{"pricing", []string{"price", "pricing", "cost", "budget", "quote"}},
	{"team", []string{"team", "developer", "engineer", "designer"}},
}

// serviceMentions maps message markers to the service a user is talking
// about.
var serviceMentions = map[string]string{
	"website":    "websites",
	"chatbot":    "chatbots",
	"dashboard":  "dashboards",
	"automation": "automation",
	"consulting": "strategy",
}

var interestMarkers = []string{
	"interested", "need", "looking for", "want", "we are trying", "help us",
}

var interrogatives = []string{
	"what", "how", "why", "when", "where", "who", "which", "can", "could",
	"would", "do", "does", "is", "are",
}

// ExtractContext derives per-query conversation context from the trailing
// window of history. Empty history degrades to an empty context, never an
// error.
func ExtractContext(history []Message, cfg ContextConfig) ConversationContext {
	if cfg.WindowSize <= 0 {
		cfg.WindowSize = 10
	}
	if cfg.MaxQuestions <= 0 {
		cfg.MaxQuestions = 3
	}

	ctx := ConversationContext{Stage: StageInitial}
	if len(history) == 0 {
		return ctx
	}

	ctx.MessageCount = len(history)

	window := history
	if !cfg.FullHistoryTopics && len(window) > cfg.WindowSize {
		window = window[len(window)-cfg.WindowSize:]
	}

	for _, msg := range window {
		if msg.Role != RoleUser {
			continue
		}

		lower := strings.ToLower(msg.Content)

		for _, bucket := range topicBuckets {
			for _, marker := range bucket.markers {
				if strings.Contains(lower, marker) {
					ctx.Topics = appendUnique(ctx.Topics, bucket.name)
					break
				}
			}
		}

		for marker, service := range serviceMentions {
			if strings.Contains(lower, marker) {
				ctx.MentionedServices = appendUnique(ctx.MentionedServices, service)
			}
		}

		if containsAny(lower, interestMarkers) {
			ctx.UserInterests = append(ctx.UserInterests, lower)
		}

		if isQuestion(msg.Content, lower) {
			ctx.UserQuestions = append(ctx.UserQuestions, msg.Content)
			if len(ctx.UserQuestions) > cfg.MaxQuestions {
				ctx.UserQuestions = ctx.UserQuestions[len(ctx.UserQuestions)-cfg.MaxQuestions:]
			}
		}
	}

	switch {
	case len(ctx.Topics) > 2:
		ctx.Stage = StageEngaged
	case len(ctx.Topics) >= 1:
		ctx.Stage = StageExploring
	}

	return ctx
}

// EnhanceQuery appends detected topics and a stage hint to the raw query.
// The enhanced string is what the section scorers tokenize, so conversation
// context biases every overlap computation.
func EnhanceQuery(query string, ctx ConversationContext) string {
	enhanced := query

	if len(ctx.Topics) > 0 {
		enhanced += ", related to " + strings.Join(ctx.Topics, ", ")
	}

	switch ctx.Stage {
	case StageEngaged:
		enhanced += " detailed information"
	case StageExploring:
		enhanced += " overview and benefits"
	}

	return enhanced
}

func isQuestion(original, lower string) bool {
	if strings.Contains(original, "?") {
		return true
	}
	first := strings.Fields(lower)
	if len(first) == 0 {
		return false
	}
	for _, w := range interrogatives {
		if first[0] == w {
			return true
		}
	}
	return false
}

func appendUnique(list []string, item string) []string {
	for _, existing := range list {
		if existing == item {
			return list
		}
	}
	return append(list, item)
}
