package rag

import (
	"sort"

	"github.com/forgelight-studio/concierge/internal/knowledge"
	"github.com/forgelight-studio/concierge/internal/observability"
)

// Engine is the retrieval-and-response engine. The knowledge base is shared
// read-only across all queries; every query allocates its own transient
// context and result structures, so concurrent use is safe without locking.
type Engine struct {
	kb      *knowledge.Base
	logger  *observability.Logger
	scoring ScoringConfig
	ctxCfg  ContextConfig
}

// NewEngine creates an engine over the given knowledge base with the default
// scoring policy and context settings.
func NewEngine(kb *knowledge.Base, logger *observability.Logger) *Engine {
	return NewEngineWithConfig(kb, logger, DefaultScoringConfig(), DefaultContextConfig())
}

// NewEngineWithConfig creates an engine with explicit scoring and context
// configuration.
func NewEngineWithConfig(kb *knowledge.Base, logger *observability.Logger, scoring ScoringConfig, ctxCfg ContextConfig) *Engine {
	if logger == nil {
		logger = observability.Nop()
	}
	if scoring.MaxResults <= 0 {
		scoring.MaxResults = DefaultScoringConfig().MaxResults
	}
	if scoring.DiversityLambda <= 0 {
		scoring.DiversityLambda = DefaultScoringConfig().DiversityLambda
	}
	if ctxCfg.WindowSize <= 0 {
		ctxCfg.WindowSize = DefaultContextConfig().WindowSize
	}
	if ctxCfg.MaxQuestions <= 0 {
		ctxCfg.MaxQuestions = DefaultContextConfig().MaxQuestions
	}

	return &Engine{
		kb:      kb,
		logger:  logger.WithComponent("rag"),
		scoring: scoring,
		ctxCfg:  ctxCfg,
	}
}

// Search scores the knowledge base against the query, blending in
// conversation history, and returns the diversity-ranked top results
// (at most MaxResults).
func (e *Engine) Search(query string, history []Message) []SearchResult {
	ctx := ExtractContext(history, e.ctxCfg)
	intents := DetectIntents(query)
	enhanced := EnhanceQuery(query, ctx)
	queryTokens := Tokenize(enhanced)

	var pool []SearchResult
	pool = append(pool, e.scoreCompany(query, queryTokens, intents)...)
	pool = append(pool, e.scoreServices(query, enhanced, queryTokens, intents)...)
	pool = append(pool, e.scoreProjects(query, enhanced, queryTokens, intents)...)
	pool = append(pool, e.scoreTechnology(query, queryTokens, intents)...)
	pool = append(pool, e.scorePricing(intents)...)
	pool = append(pool, e.scoreTeam(intents)...)
	pool = append(pool, e.scoreFAQ(query, queryTokens, intents)...)
	pool = append(pool, e.contextResults(ctx)...)

	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Relevance > pool[j].Relevance
	})

	top := SelectDiverse(pool, e.scoring.MaxResults, e.scoring.DiversityLambda, e.scoring.DiversityPenalty)

	e.logger.Debug().
		Str("query", query).
		Str("enhanced", enhanced).
		Str("stage", string(ctx.Stage)).
		Strs("topics", ctx.Topics).
		Int("candidates", len(pool)).
		Int("selected", len(top)).
		Msg("Search complete")

	return top
}

// Respond runs Search and GenerateResponse in one call. This is the chat
// host's main entry point.
func (e *Engine) Respond(query string, history []Message) Response {
	results := e.Search(query, history)
	return e.GenerateResponse(query, results, history)
}
