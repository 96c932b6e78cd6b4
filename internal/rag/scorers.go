package rag

import (
	"fmt"
	"strings"
)

// Section scorers. Each is a pure function over the immutable knowledge base
// returning its own result slice; the orchestrator concatenates them. All
// constants come from ScoringConfig.

func (e *Engine) scoreCompany(rawQuery string, queryTokens []string, intents Intents) []SearchResult {
	var results []SearchResult
	company := e.kb.Company
	lowerRaw := strings.ToLower(rawQuery)

	if intents.WantsCompany || strings.Contains(lowerRaw, strings.ToLower(company.Name)) {
		content := fmt.Sprintf("%s: %s %s", company.Name, company.Description, company.Mission)
		results = append(results, SearchResult{
			Content:   content,
			Source:    "Company Profile",
			Relevance: e.scoring.CompanyBaseRelevance,
			Category:  CategoryCompany,
		})
	}

	// Catch-all: surface company info for loosely related queries whenever
	// description overlap clears the floor, independent of intent.
	if overlap := overlapScore(queryTokens, Tokenize(company.Description)); overlap > e.scoring.CompanyOverlapFloor {
		results = append(results, SearchResult{
			Content:   company.Description,
			Source:    "About " + company.Name,
			Relevance: e.scoring.CompanyFallbackBase + overlap,
			Category:  CategoryCompany,
		})
	}

	for _, industry := range e.kb.Industries {
		if strings.Contains(lowerRaw, strings.ToLower(industry.Name)) {
			results = append(results, SearchResult{
				Content:   fmt.Sprintf("%s: %s", industry.Name, industry.Description),
				Source:    "Industries: " + industry.Name,
				Relevance: e.scoring.IndustryRelevance,
				Category:  CategoryIndustries,
			})
		}
	}

	return results
}

func (e *Engine) scoreServices(rawQuery, enhanced string, queryTokens []string, intents Intents) []SearchResult {
	var results []SearchResult
	lowerRaw := strings.ToLower(rawQuery)
	normEnhanced := Normalize(enhanced)

	for _, svc := range e.kb.Services {
		score := 0.0

		if intents.WantsServices {
			score += e.scoring.ServiceIntentBonus
		}
		if strings.Contains(lowerRaw, strings.ToLower(svc.Name)) {
			score += e.scoring.ExactNameBonus
		}

		entityText := svc.Name + " " + svc.Description + " " + strings.Join(svc.Highlights, " ")
		entityTokens := Tokenize(entityText)
		score += overlapScore(queryTokens, entityTokens)

		if normEnhanced != "" && strings.Contains(Normalize(entityText), normEnhanced) {
			score += e.scoring.PhraseBoost
		}

		score += e.fuzzyPartial(queryTokens, entityTokens)

		if score > e.scoring.InclusionThreshold {
			results = append(results, SearchResult{
				Content:   fmt.Sprintf("%s: %s", svc.Name, svc.Description),
				Source:    "Services: " + svc.Name,
				Relevance: score,
				Category:  CategoryServices,
			})
		}
	}

	return results
}

func (e *Engine) scoreProjects(rawQuery, enhanced string, queryTokens []string, intents Intents) []SearchResult {
	var results []SearchResult
	lowerRaw := strings.ToLower(rawQuery)
	normEnhanced := Normalize(enhanced)

	for _, prj := range e.kb.Projects {
		score := 0.0

		if intents.WantsProjects {
			score += e.scoring.ProjectIntentBonus
		}
		if strings.Contains(lowerRaw, strings.ToLower(prj.Name)) {
			score += e.scoring.ExactNameBonus
		}

		entityText := prj.Name + " " + prj.Description + " " + prj.Outcome
		entityTokens := Tokenize(entityText)
		score += overlapScore(queryTokens, entityTokens)

		if normEnhanced != "" && strings.Contains(Normalize(entityText), normEnhanced) {
			score += e.scoring.PhraseBoost
		}

		if score > e.scoring.InclusionThreshold {
			results = append(results, SearchResult{
				Content:   fmt.Sprintf("%s: %s %s", prj.Name, prj.Description, prj.Outcome),
				Source:    "Projects: " + prj.Name,
				Relevance: score,
				Category:  CategoryProjects,
			})
		}
	}

	return results
}

func (e *Engine) scoreTechnology(rawQuery string, queryTokens []string, intents Intents) []SearchResult {
	var results []SearchResult
	normQuery := Normalize(rawQuery)

	tokenSet := make(map[string]struct{}, len(queryTokens))
	for _, t := range queryTokens {
		tokenSet[t] = struct{}{}
	}

	for _, layer := range e.kb.Technology.Layers() {
		for _, item := range layer.Items {
			normItem := Normalize(item)
			if normItem == "" {
				continue
			}

			// Multi-word terms match as substrings; single tokens must match a
			// whole query token so "go" does not fire on "good".
			var matched bool
			if strings.Contains(normItem, " ") {
				matched = strings.Contains(normQuery, normItem)
			} else {
				_, matched = tokenSet[normItem]
			}

			if matched {
				results = append(results, SearchResult{
					Content:   fmt.Sprintf("We work with %s as part of our %s stack.", item, layer.Name),
					Source:    "Technology Stack",
					Relevance: e.scoring.TechTermRelevance,
					Category:  CategoryTechnology,
				})
			}
		}
	}

	if intents.WantsTech {
		results = append(results, SearchResult{
			Content:   e.technologyOverview(),
			Source:    "Technology Stack",
			Relevance: e.scoring.TechOverviewRelevance,
			Category:  CategoryTechnology,
		})
	}

	return results
}

func (e *Engine) technologyOverview() string {
	var parts []string
	for _, layer := range e.kb.Technology.Layers() {
		if len(layer.Items) == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", layer.Name, strings.Join(layer.Items, ", ")))
	}
	return "Our technology stack: " + strings.Join(parts, "; ") + "."
}

func (e *Engine) scorePricing(intents Intents) []SearchResult {
	if !intents.WantsPricing {
		return nil
	}

	pricing := e.kb.Pricing
	return []SearchResult{{
		Content:   fmt.Sprintf("Our pricing is %s. %s %s", pricing.Model, pricing.Description, pricing.Note),
		Source:    "Pricing Policy",
		Relevance: e.scoring.PricingRelevance,
		Category:  CategoryPricing,
	}}
}

func (e *Engine) scoreTeam(intents Intents) []SearchResult {
	if !intents.WantsTeam {
		return nil
	}

	team := e.kb.Team
	return []SearchResult{{
		Content:   fmt.Sprintf("We are %s: %s Roles include %s.", team.Size, team.Description, strings.Join(team.Roles, ", ")),
		Source:    "Team",
		Relevance: e.scoring.TeamRelevance,
		Category:  CategoryTeam,
	}}
}

func (e *Engine) scoreFAQ(rawQuery string, queryTokens []string, intents Intents) []SearchResult {
	var results []SearchResult
	normQuery := Normalize(rawQuery)

	for _, faq := range e.kb.FAQs {
		normQuestion := Normalize(faq.Question)
		normAnswer := Normalize(faq.Answer)

		var relevance float64
		switch {
		// Short user questions contained in longer FAQ phrasing.
		case normQuery != "" && strings.Contains(normQuestion, normQuery):
			relevance = e.scoring.FAQQuestionRelevance
		// The reverse: the FAQ answer quoted back inside a longer query.
		case normAnswer != "" && strings.Contains(normQuery, normAnswer):
			relevance = e.scoring.FAQAnswerRelevance
		case intents.WantsFAQ:
			relevance = e.scoring.FAQIntentBase + overlapScore(queryTokens, Tokenize(faq.Question+" "+faq.Answer))
		default:
			continue
		}

		results = append(results, SearchResult{
			Content:   faq.Answer,
			Source:    "FAQ: " + faq.Question,
			Relevance: relevance,
			Category:  CategoryFAQ,
		})
	}

	return results
}

// contextResults turns detected conversation signals into pseudo-results so
// context can compete in ranking alongside knowledge-base hits.
func (e *Engine) contextResults(ctx ConversationContext) []SearchResult {
	var results []SearchResult

	if len(ctx.Topics) > 0 {
		results = append(results, SearchResult{
			Content:   "We have been discussing: " + strings.Join(ctx.Topics, ", ") + ".",
			Source:    "Conversation Context",
			Relevance: e.scoring.ContextTopicRelevance,
			Category:  CategoryContext,
		})
	}

	if ctx.Stage != StageInitial {
		results = append(results, SearchResult{
			Content:   fmt.Sprintf("This conversation has reached the %s stage.", ctx.Stage),
			Source:    "Conversation Context",
			Relevance: e.scoring.ContextStageRelevance,
			Category:  CategoryContext,
		})
	}

	if len(ctx.UserQuestions) > 0 {
		results = append(results, SearchResult{
			Content:   fmt.Sprintf("%d recent question(s) are being tracked.", len(ctx.UserQuestions)),
			Source:    "Conversation Context",
			Relevance: e.scoring.ContextQuestionRelevance,
			Category:  CategoryContext,
		})
	}

	return results
}

// fuzzyPartial walks the entity's token sequence looking for an in-order,
// not necessarily contiguous, match against the query tokens. Contributes
// ratio*FuzzyWeight once the matched ratio reaches FuzzyMinRatio.
func (e *Engine) fuzzyPartial(queryTokens, entityTokens []string) float64 {
	if len(queryTokens) == 0 {
		return 0
	}

	qi := 0
	matched := 0
	for _, et := range entityTokens {
		if qi >= len(queryTokens) {
			break
		}
		if et == queryTokens[qi] {
			matched++
			qi++
		}
	}

	ratio := float64(matched) / float64(len(queryTokens))
	if ratio >= e.scoring.FuzzyMinRatio {
		return ratio * e.scoring.FuzzyWeight
	}
	return 0
}
