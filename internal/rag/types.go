// Package rag implements the retrieval-and-response engine behind the
// Forgelight Studio chat widget: lexical scoring of a static knowledge base
// against a user query, conversation-aware re-ranking, and natural-language
// response composition.
package rag

// Category labels the knowledge-base section a result came from.
type Category string

const (
	CategoryCompany    Category = "Company"
	CategoryServices   Category = "Services"
	CategoryProjects   Category = "Projects"
	CategoryTechnology Category = "Technology"
	CategoryPricing    Category = "Pricing"
	CategoryTeam       Category = "Team"
	CategoryFAQ        Category = "FAQ"
	CategoryIndustries Category = "Industries"
	CategoryContext    Category = "Context"
)

// SearchResult is one scored candidate from the knowledge base. Relevance is
// an accumulated score, only meaningful relative to other results from the
// same query.
type SearchResult struct {
	Content   string   `json:"content"`
	Source    string   `json:"source"`
	Relevance float64  `json:"relevance"`
	Category  Category `json:"category"`
}

// Message is one turn of conversation history, caller-owned and read-only
// to the engine.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Conversation roles.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Intents holds the independent boolean intent flags detected on a query.
// Flags are not mutually exclusive; a query can set several or none.
type Intents struct {
	WantsServices bool
	WantsProjects bool
	WantsPricing  bool
	WantsTech     bool
	WantsCompany  bool
	WantsTeam     bool
	WantsFAQ      bool
}

// Any reports whether at least one flag is set.
func (i Intents) Any() bool {
	return i.WantsServices || i.WantsProjects || i.WantsPricing ||
		i.WantsTech || i.WantsCompany || i.WantsTeam || i.WantsFAQ
}

// Stage is the coarse engagement stage of a conversation.
type Stage string

const (
	StageInitial   Stage = "initial"
	StageExploring Stage = "exploring"
	StageEngaged   Stage = "engaged"
)

// ConversationContext is the per-query context derived from the trailing
// window of conversation history. It is built fresh on every query and never
// cached across calls.
type ConversationContext struct {
	Topics            []string
	UserInterests     []string
	MentionedServices []string
	UserQuestions     []string // most recent 3, original casing
	Stage             Stage
	MessageCount      int
}

// IsEmpty reports whether the context carries no signal at all.
func (c ConversationContext) IsEmpty() bool {
	return len(c.Topics) == 0 && len(c.UserInterests) == 0 &&
		len(c.MentionedServices) == 0 && len(c.UserQuestions) == 0 &&
		c.Stage == StageInitial && c.MessageCount == 0
}

// Response is the composed reply for one query.
type Response struct {
	Answer           string         `json:"answer"`
	Sources          []SearchResult `json:"sources"`
	Confidence       float64        `json:"confidence"`
	SuggestedActions []string       `json:"suggestedActions"`
}
