package rag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgelight-studio/concierge/internal/knowledge"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(knowledge.Default(), nil)
}

func TestScorePricing_EmitsSingleFixedResult(t *testing.T) {
	e := newTestEngine(t)

	results := e.scorePricing(Intents{WantsPricing: true})

	require.Len(t, results, 1)
	assert.Equal(t, CategoryPricing, results[0].Category)
	assert.Equal(t, "Pricing Policy", results[0].Source)
	assert.InDelta(t, 0.9, results[0].Relevance, 0.001)
	assert.Contains(t, results[0].Content, "fixed")
}

func TestScorePricing_NothingWithoutIntent(t *testing.T) {
	e := newTestEngine(t)

	assert.Empty(t, e.scorePricing(Intents{}))
}

func TestScoreTeam_EmitsSingleResultOnIntent(t *testing.T) {
	e := newTestEngine(t)

	results := e.scoreTeam(Intents{WantsTeam: true})

	require.Len(t, results, 1)
	assert.Equal(t, CategoryTeam, results[0].Category)
	assert.InDelta(t, 0.85, results[0].Relevance, 0.001)
	assert.Contains(t, results[0].Content, "nine people")

	assert.Empty(t, e.scoreTeam(Intents{}))
}

func TestScoreServices_ExactNameOutranksSiblings(t *testing.T) {
	e := newTestEngine(t)
	query := "Tell me about Modern Websites (AI-Ready)"
	tokens := Tokenize(query)
	intents := DetectIntents(query)

	results := e.scoreServices(query, query, tokens, intents)

	require.NotEmpty(t, results)
	best := results[0]
	for _, r := range results[1:] {
		if r.Relevance > best.Relevance {
			best = r
		}
	}
	assert.Contains(t, best.Source, "Modern Websites (AI-Ready)")
	for _, r := range results {
		if !strings.Contains(r.Source, "Modern Websites") {
			assert.Greater(t, best.Relevance-r.Relevance, 0.5,
				"exact name bonus should dominate: %s scored %.2f", r.Source, r.Relevance)
		}
	}
}

func TestScoreServices_BelowThresholdEmitsNothing(t *testing.T) {
	e := newTestEngine(t)
	query := "zebra quantum umbrella"
	tokens := Tokenize(query)

	assert.Empty(t, e.scoreServices(query, query, tokens, Intents{}))
}

func TestScoreProjects_IntentSurfacesAllProjects(t *testing.T) {
	e := newTestEngine(t)
	query := "Show me past projects"
	tokens := Tokenize(query)

	results := e.scoreProjects(query, query, tokens, Intents{WantsProjects: true})

	require.Len(t, results, len(e.kb.Projects))
	for _, r := range results {
		assert.Equal(t, CategoryProjects, r.Category)
		assert.Greater(t, r.Relevance, 0.3)
	}
}

func TestScoreCompany_IntentEmitsProfile(t *testing.T) {
	e := newTestEngine(t)
	query := "Tell me about your company"
	tokens := Tokenize(query)

	results := e.scoreCompany(query, tokens, Intents{WantsCompany: true})

	require.NotEmpty(t, results)
	assert.Equal(t, "Company Profile", results[0].Source)
	assert.Equal(t, CategoryCompany, results[0].Category)
	assert.InDelta(t, 0.85, results[0].Relevance, 0.001)
}

func TestScoreCompany_NameMentionWithoutIntent(t *testing.T) {
	e := newTestEngine(t)
	query := "Is Forgelight Studio any good"
	tokens := Tokenize(query)

	results := e.scoreCompany(query, tokens, Intents{})

	require.NotEmpty(t, results)
	assert.Equal(t, "Company Profile", results[0].Source)
}

func TestScoreCompany_DescriptionCatchAll(t *testing.T) {
	e := newTestEngine(t)
	query := "a small ai consulting studio that designs and builds modern websites"
	tokens := Tokenize(query)

	results := e.scoreCompany(query, tokens, Intents{})

	var found bool
	for _, r := range results {
		if strings.HasPrefix(r.Source, "About ") {
			found = true
			assert.Greater(t, r.Relevance, 0.4)
			assert.Equal(t, CategoryCompany, r.Category)
		}
	}
	assert.True(t, found, "description overlap above the floor should emit the catch-all result")
}

func TestScoreCompany_IndustryMention(t *testing.T) {
	e := newTestEngine(t)
	query := "Do you work with healthcare clients?"
	tokens := Tokenize(query)

	results := e.scoreCompany(query, tokens, Intents{})

	require.NotEmpty(t, results)
	var industry *SearchResult
	for i := range results {
		if results[i].Category == CategoryIndustries {
			industry = &results[i]
		}
	}
	require.NotNil(t, industry)
	assert.Contains(t, industry.Content, "Healthcare")
	assert.InDelta(t, 0.8, industry.Relevance, 0.001)
}

func TestScoreTechnology_SingleTokenNeedsWholeTokenMatch(t *testing.T) {
	e := newTestEngine(t)

	results := e.scoreTechnology("this looks good", Tokenize("this looks good"), Intents{})
	assert.Empty(t, results, "'go' must not fire on 'good'")

	results = e.scoreTechnology("do you write go", Tokenize("do you write go"), Intents{})
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Content, "Go")
	assert.InDelta(t, 0.8, results[0].Relevance, 0.001)
}

func TestScoreTechnology_MultiWordTermMatchesAsPhrase(t *testing.T) {
	e := newTestEngine(t)
	query := "Do you do retrieval-augmented generation work?"

	results := e.scoreTechnology(query, Tokenize(query), Intents{})

	require.NotEmpty(t, results)
	assert.Contains(t, results[0].Content, "retrieval-augmented generation")
}

func TestScoreTechnology_IntentAddsOverview(t *testing.T) {
	e := newTestEngine(t)
	query := "What is your tech stack?"

	results := e.scoreTechnology(query, Tokenize(query), Intents{WantsTech: true})

	require.NotEmpty(t, results)
	overview := results[len(results)-1]
	assert.InDelta(t, 0.75, overview.Relevance, 0.001)
	assert.Contains(t, overview.Content, "frontend")
	assert.Contains(t, overview.Content, "backend")
}

func TestScoreFAQ_QueryContainedInQuestion(t *testing.T) {
	e := newTestEngine(t)
	query := "How long does a typical project take?"
	tokens := Tokenize(query)

	results := e.scoreFAQ(query, tokens, DetectIntents(query))

	require.NotEmpty(t, results)
	best := results[0]
	for _, r := range results[1:] {
		if r.Relevance > best.Relevance {
			best = r
		}
	}
	assert.InDelta(t, 0.85, best.Relevance, 0.001)
	assert.Contains(t, best.Content, "weeks")
}

func TestScoreFAQ_IntentBaseWithOverlap(t *testing.T) {
	e := newTestEngine(t)
	query := "Do you sign agreements?"
	tokens := Tokenize(query)

	results := e.scoreFAQ(query, tokens, Intents{WantsFAQ: true})

	require.Len(t, results, len(e.kb.FAQs))
	for _, r := range results {
		assert.GreaterOrEqual(t, r.Relevance, 0.5)
		assert.Equal(t, CategoryFAQ, r.Category)
	}
}

func TestContextResults_EmitsPseudoResults(t *testing.T) {
	e := newTestEngine(t)
	ctx := ConversationContext{
		Topics:        []string{"chatbots"},
		Stage:         StageExploring,
		UserQuestions: []string{"Can you build one?"},
	}

	results := e.contextResults(ctx)

	require.Len(t, results, 3)
	assert.InDelta(t, 0.7, results[0].Relevance, 0.001)
	assert.InDelta(t, 0.6, results[1].Relevance, 0.001)
	assert.InDelta(t, 0.5, results[2].Relevance, 0.001)
	for _, r := range results {
		assert.Equal(t, CategoryContext, r.Category)
		assert.Equal(t, "Conversation Context", r.Source)
	}
}

func TestContextResults_EmptyContext(t *testing.T) {
	e := newTestEngine(t)

	assert.Empty(t, e.contextResults(ConversationContext{Stage: StageInitial}))
}

func TestFuzzyPartial_FullInOrderMatch(t *testing.T) {
	e := newTestEngine(t)

	score := e.fuzzyPartial([]string{"data", "dashboards"}, []string{"live", "data", "analysis", "dashboards"})

	assert.InDelta(t, 0.2, score, 0.001)
}

func TestFuzzyPartial_BelowMinRatio(t *testing.T) {
	e := newTestEngine(t)

	score := e.fuzzyPartial([]string{"a", "b", "c", "d", "e"}, []string{"a", "x", "y"})

	assert.Zero(t, score)
}

func TestFuzzyPartial_EmptyQuery(t *testing.T) {
	e := newTestEngine(t)

	assert.Zero(t, e.fuzzyPartial(nil, []string{"a"}))
}
