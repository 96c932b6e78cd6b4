package rag

// Intent pattern lists. Each flag is an independent case-insensitive
// membership test over the normalized query; matching any pattern sets the
// flag.
var (
	servicePatterns = []string{
		"service", "offer", "offering", "website", "web site", "landing page",
		"automation", "automate", "dashboard", "bot", "chatbot", "assistant",
		"what can you do", "what do you do", "help with", "build",
	}
	projectPatterns = []string{
		"project", "portfolio", "case stud", "past work", "previous work",
		"example", "client", "delivered", "shipped",
	}
	pricingPatterns = []string{
		"price", "pricing", "cost", "how much", "budget", "rate", "quote",
		"expensive", "afford", "fee", "retainer",
	}
	techPatterns = []string{
		"tech", "stack", "technology", "technologies", "framework", "language",
		"tool", "platform", "react", "python", "infrastructure",
	}
	companyPatterns = []string{
		"company", "about you", "who are you", "studio", "agency", "located",
		"location", "where are you", "founded", "mission", "forgelight",
	}
	teamPatterns = []string{
		"team", "people", "developer", "engineer", "designer", "staff",
		"who works", "expert", "founders",
	}
	faqPatterns = []string{
		"faq", "frequently asked", "how long", "how do", "can you", "do you",
		"maintenance", "support", "nda", "data access",
	}
)

// DetectIntents classifies a raw query into independent boolean flags via
// keyword membership over the normalized query. No side effects.
func DetectIntents(query string) Intents {
	q := Normalize(query)

	return Intents{
		WantsServices: containsAny(q, servicePatterns),
		WantsProjects: containsAny(q, projectPatterns),
		WantsPricing:  containsAny(q, pricingPatterns),
		WantsTech:     containsAny(q, techPatterns),
		WantsCompany:  containsAny(q, companyPatterns),
		WantsTeam:     containsAny(q, teamPatterns),
		WantsFAQ:      containsAny(q, faqPatterns),
	}
}
