package rag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateResponse_EmptyResultsFallback(t *testing.T) {
	e := newTestEngine(t)

	resp := e.GenerateResponse("something obscure", nil, nil)

	assert.Equal(t, fallbackAnswer, resp.Answer)
	assert.InDelta(t, 0.35, resp.Confidence, 0.0001, "fallback confidence is exactly the floor")
	require.NotNil(t, resp.Sources)
	assert.Empty(t, resp.Sources)
	require.Len(t, resp.SuggestedActions, 4)
	assert.Equal(t, "Schedule a consultation", resp.SuggestedActions[3])
}

func TestGenerateResponse_ConfidenceScalesWithPrimaryRelevance(t *testing.T) {
	e := newTestEngine(t)

	low := e.GenerateResponse("q", []SearchResult{{Content: "x", Relevance: 0.0}}, nil)
	mid := e.GenerateResponse("q", []SearchResult{{Content: "x", Relevance: 0.5}}, nil)
	high := e.GenerateResponse("q", []SearchResult{{Content: "x", Relevance: 2.0}}, nil)

	assert.InDelta(t, 0.35, low.Confidence, 0.0001)
	assert.InDelta(t, 0.65, mid.Confidence, 0.0001)
	assert.InDelta(t, 0.85, high.Confidence, 0.0001, "confidence clamps at the ceiling")
}

func TestGenerateResponse_TopicFramingLowercasesContent(t *testing.T) {
	e := newTestEngine(t)
	history := []Message{
		{Role: RoleUser, Content: "What's your pricing like?"},
	}
	results := []SearchResult{
		{Content: "Our pricing is project-based.", Category: CategoryPricing, Relevance: 0.9},
	}

	resp := e.GenerateResponse("and for chatbots?", results, history)

	assert.True(t, strings.HasPrefix(resp.Answer, "Based on our conversation about pricing, our pricing is project-based."),
		"got: %s", resp.Answer)
}

func TestGenerateResponse_ExploringTrailer(t *testing.T) {
	e := newTestEngine(t)
	history := []Message{
		{Role: RoleUser, Content: "I want a chatbot"},
	}
	results := []SearchResult{{Content: "We build chatbots.", Category: CategoryServices, Relevance: 0.8}}

	resp := e.GenerateResponse("tell me more", results, history)

	assert.Contains(t, resp.Answer, "Happy to go deeper")
}

func TestGenerateResponse_EngagedTrailerAndActions(t *testing.T) {
	e := newTestEngine(t)
	history := []Message{
		{Role: RoleUser, Content: "We need data analysis for our store"},
		{Role: RoleUser, Content: "Can you build a chatbot too?"},
		{Role: RoleUser, Content: "And a new website please"},
	}
	results := []SearchResult{{Content: "We cover all of that.", Category: CategoryServices, Relevance: 0.9}}

	resp := e.GenerateResponse("where do we start", results, history)

	assert.Contains(t, resp.Answer, "detailed proposal")
	assert.Equal(t, engagedActions, resp.SuggestedActions)
}

func TestGenerateResponse_QuestionCountNote(t *testing.T) {
	e := newTestEngine(t)
	history := []Message{
		{Role: RoleUser, Content: "How long does it take?"},
		{Role: RoleUser, Content: "And who maintains it?"},
	}
	results := []SearchResult{{Content: "Timelines vary.", Category: CategoryFAQ, Relevance: 0.8}}

	resp := e.GenerateResponse("ok", results, history)

	assert.Contains(t, resp.Answer, "2 recent question(s)")
}

func TestGenerateResponse_SecondaryContentSkipsContext(t *testing.T) {
	e := newTestEngine(t)
	results := []SearchResult{
		{Content: "Primary answer.", Category: CategoryServices, Relevance: 0.9},
		{Content: "We have been discussing: pricing.", Category: CategoryContext, Relevance: 0.7},
		{Content: "Secondary detail.", Category: CategoryFAQ, Relevance: 0.6},
	}

	resp := e.GenerateResponse("q", results, nil)

	assert.Contains(t, resp.Answer, "Also relevant: Secondary detail.")
	assert.NotContains(t, resp.Answer, "We have been discussing")
}

func TestGenerateResponse_SourcesEchoResults(t *testing.T) {
	e := newTestEngine(t)
	results := []SearchResult{
		{Content: "a", Category: CategoryServices, Relevance: 0.9},
		{Content: "b", Category: CategoryPricing, Relevance: 0.7},
	}

	resp := e.GenerateResponse("q", results, nil)

	assert.Equal(t, results, resp.Sources)
}

func TestSuggestActions_PricingTopicOverridesKeywords(t *testing.T) {
	e := newTestEngine(t)
	ctx := ConversationContext{Topics: []string{"pricing"}, Stage: StageExploring}

	actions := e.suggestActions("anything", ctx)

	assert.Equal(t, pricingActions, actions)
}

func TestSuggestActions_KeywordDriven(t *testing.T) {
	e := newTestEngine(t)

	actions := e.suggestActions("What services do you offer?", ConversationContext{Stage: StageInitial})

	assert.LessOrEqual(t, len(actions), maxSuggestedActions)
	assert.Contains(t, actions, "Explore our services")
	assert.Equal(t, "Schedule a consultation", actions[len(actions)-1])
}

func TestSuggestActions_CappedAtFour(t *testing.T) {
	e := newTestEngine(t)

	// Hits every keyword branch, which would yield five entries uncapped.
	actions := e.suggestActions("service project price tech", ConversationContext{Stage: StageInitial})

	assert.Len(t, actions, maxSuggestedActions)
}

func TestSuggestActions_DefaultIsConsultationOnly(t *testing.T) {
	e := newTestEngine(t)

	actions := e.suggestActions("hello", ConversationContext{Stage: StageInitial})

	assert.Equal(t, []string{"Schedule a consultation"}, actions)
}

func TestLowerFirst(t *testing.T) {
	assert.Equal(t, "our pricing", lowerFirst("Our pricing"))
	assert.Equal(t, "", lowerFirst(""))
	assert.Equal(t, "été", lowerFirst("Été"))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.35, clamp(0.1, 0.35, 0.85))
	assert.Equal(t, 0.85, clamp(1.2, 0.35, 0.85))
	assert.Equal(t, 0.5, clamp(0.5, 0.35, 0.85))
}
