package rag

// ScoringConfig collects every scoring constant in one tunable structure so
// the policy can be tested and adjusted as a unit. Relevance values are
// unitless accumulated scores, not probabilities.
type ScoringConfig struct {
	// Additive bonus when the matching intent flag is set.
	ServiceIntentBonus float64
	ProjectIntentBonus float64

	// Additive bonus when the raw query substring-contains the entity name.
	ExactNameBonus float64

	// Flat boost when the full enhanced query is a literal substring of the
	// entity's normalized text.
	PhraseBoost float64

	// Fuzzy in-order partial match (services only): contributes
	// ratio*FuzzyWeight when the match ratio reaches FuzzyMinRatio.
	FuzzyWeight   float64
	FuzzyMinRatio float64

	// Minimum accumulated score for services and projects to be emitted.
	InclusionThreshold float64

	// Company description catch-all: emitted whenever token overlap with the
	// description exceeds the floor, independent of intent.
	CompanyOverlapFloor  float64
	CompanyBaseRelevance float64
	CompanyFallbackBase  float64

	// Fixed relevance values for sections that emit on their intent flag.
	TechTermRelevance     float64
	TechOverviewRelevance float64
	PricingRelevance      float64
	TeamRelevance         float64
	IndustryRelevance     float64

	// FAQ substring rules and the intent-driven base score.
	FAQQuestionRelevance float64
	FAQAnswerRelevance   float64
	FAQIntentBase        float64

	// Context pseudo-result relevance values (topics/stage/questions).
	ContextTopicRelevance    float64
	ContextStageRelevance    float64
	ContextQuestionRelevance float64

	// Diversity selection: score = lambda*rel - (1-lambda)*penalty*dupCount.
	DiversityLambda  float64
	DiversityPenalty float64
	MaxResults       int

	// Confidence = clamp(floor + primary.Relevance*slope, floor, ceiling).
	ConfidenceFloor   float64
	ConfidenceCeiling float64
	ConfidenceSlope   float64
}

// DefaultScoringConfig returns the production scoring policy.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		ServiceIntentBonus: 0.7,
		ProjectIntentBonus: 0.6,
		ExactNameBonus:     0.8,
		PhraseBoost:        0.3,
		FuzzyWeight:        0.2,
		FuzzyMinRatio:      0.5,
		InclusionThreshold: 0.3,

		CompanyOverlapFloor:  0.2,
		CompanyBaseRelevance: 0.85,
		CompanyFallbackBase:  0.4,

		TechTermRelevance:     0.8,
		TechOverviewRelevance: 0.75,
		PricingRelevance:      0.9,
		TeamRelevance:         0.85,
		IndustryRelevance:     0.8,

		FAQQuestionRelevance: 0.85,
		FAQAnswerRelevance:   0.8,
		FAQIntentBase:        0.5,

		ContextTopicRelevance:    0.7,
		ContextStageRelevance:    0.6,
		ContextQuestionRelevance: 0.5,

		DiversityLambda:  0.75,
		DiversityPenalty: 0.1,
		MaxResults:       5,

		ConfidenceFloor:   0.35,
		ConfidenceCeiling: 0.85,
		ConfidenceSlope:   0.6,
	}
}
