// Package knowledge holds the static knowledge base the concierge engine
// answers from. The base is constructed once, injected into the engine, and
// never mutated at query time.
package knowledge

// Base is the full structured knowledge base for the studio.
type Base struct {
	Company        Company
	Services       []Service
	Projects       []Project
	Technology     Technology
	Pricing        Pricing
	Team           Team
	FAQs           []FAQ
	Industries     []Industry
	Certifications []string
	Partnerships   []string
	Testimonials   []Testimonial
	CaseStudies    []CaseStudy
}

// Company describes the studio itself.
type Company struct {
	Name        string
	Tagline     string
	Description string
	Founded     string
	Location    string
	Mission     string
}

// Service is a single offering.
type Service struct {
	ID          string
	Name        string
	Description string
	Highlights  []string
}

// Project is a delivered piece of client work.
type Project struct {
	ID          string
	Name        string
	Description string
	Outcome     string
}

// Technology groups the stack by layer.
type Technology struct {
	Frontend   []string
	Backend    []string
	AI         []string
	Cloud      []string
	Database   []string
	DevOps     []string
	Mobile     []string
	Blockchain []string
	IoT        []string
}

// Layers returns the stack as named groups, in a stable order.
func (t Technology) Layers() []TechLayer {
	return []TechLayer{
		{Name: "frontend", Items: t.Frontend},
		{Name: "backend", Items: t.Backend},
		{Name: "ai", Items: t.AI},
		{Name: "cloud", Items: t.Cloud},
		{Name: "database", Items: t.Database},
		{Name: "devops", Items: t.DevOps},
		{Name: "mobile", Items: t.Mobile},
		{Name: "blockchain", Items: t.Blockchain},
		{Name: "iot", Items: t.IoT},
	}
}

// TechLayer is one named group of the technology stack.
type TechLayer struct {
	Name  string
	Items []string
}

// Pricing describes the studio's pricing policy.
type Pricing struct {
	Model       string
	Description string
	Note        string
}

// Team describes the team profile as a whole.
type Team struct {
	Size        string
	Description string
	Roles       []string
}

// FAQ is a single frequently-asked question with its answer.
type FAQ struct {
	ID       string
	Question string
	Answer   string
}

// Industry is a vertical the studio has shipped work in.
type Industry struct {
	ID          string
	Name        string
	Description string
}

// Testimonial is a short client quote.
type Testimonial struct {
	Client string
	Quote  string
}

// CaseStudy is a longer-form writeup of an engagement.
type CaseStudy struct {
	ID      string
	Title   string
	Summary string
}
