package knowledge

// Default returns the authored knowledge base for Forgelight Studio.
func Default() *Base {
	return &Base{
		Company: Company{
			Name:        "Forgelight Studio",
			Tagline:     "Practical AI for small and mid-size teams",
			Description: "Forgelight Studio is a small AI consulting studio that designs and builds modern websites, chatbots, data analysis dashboards and workflow automation for companies that want practical results without enterprise overhead. We combine product design, web engineering and applied machine learning in compact senior teams.",
			Founded:     "2021",
			Location:    "Lisbon, Portugal (remote-first)",
			Mission:     "Make applied AI useful, affordable and maintainable for teams of every size.",
		},
		Services: []Service{
			{
				ID:          "svc-websites",
				Name:        "Modern Websites (AI-Ready)",
				Description: "Fast, accessible marketing and product websites built to host AI features from day one: embedded chat assistants, personalized content and analytics instrumentation.",
				Highlights:  []string{"responsive design", "embedded chat widget", "SEO and performance tuning", "headless CMS integration"},
			},
			{
				ID:          "svc-chatbots",
				Name:        "AI Chatbots & Assistants",
				Description: "Conversational assistants for support, lead qualification and internal knowledge search, grounded on your own content so answers stay accurate.",
				Highlights:  []string{"knowledge-grounded answers", "lead capture", "multilingual support", "handoff to humans"},
			},
			{
				ID:          "svc-dashboards",
				Name:        "Data Analysis & Dashboards",
				Description: "Data pipelines and interactive dashboards that turn spreadsheets and operational databases into decisions: KPIs, forecasting and anomaly alerts.",
				Highlights:  []string{"automated reporting", "forecasting models", "self-serve exploration"},
			},
			{
				ID:          "svc-automation",
				Name:        "Workflow Automation",
				Description: "Automation of repetitive back-office work: document processing, email triage, calendar booking flows and spreadsheet synchronization across the tools you already use.",
				Highlights:  []string{"document extraction", "email and calendar integration", "approval workflows"},
			},
			{
				ID:          "svc-strategy",
				Name:        "AI Strategy Consulting",
				Description: "Short, focused engagements that map where AI actually pays off in your business, with a costed roadmap and build-vs-buy recommendations.",
				Highlights:  []string{"opportunity mapping", "costed roadmap", "vendor evaluation"},
			},
		},
		Projects: []Project{
			{
				ID:          "prj-harborview",
				Name:        "Harborview Clinics Booking Assistant",
				Description: "A patient-facing chatbot and booking flow for a clinic group, answering treatment questions and scheduling appointments directly into practitioner calendars.",
				Outcome:     "Cut phone bookings by 40% in the first quarter.",
			},
			{
				ID:          "prj-terra",
				Name:        "Terra Logistics Dispatch Dashboard",
				Description: "A live dispatch dashboard for a regional logistics firm, merging GPS feeds and order spreadsheets into one operational view with delay predictions.",
				Outcome:     "On-time delivery rate improved eight points.",
			},
			{
				ID:          "prj-meridian",
				Name:        "Meridian Retail Website Relaunch",
				Description: "A full relaunch of a retailer's web presence with an AI product-finder, localized content and a headless commerce backend.",
				Outcome:     "Organic traffic doubled within six months.",
			},
			{
				ID:          "prj-quill",
				Name:        "Quill Legal Document Automation",
				Description: "Automated intake and classification of legal documents for a boutique law firm, extracting key clauses into a searchable database.",
				Outcome:     "Paralegal review time reduced by 60%.",
			},
		},
		Technology: Technology{
			Frontend:   []string{"React", "Next.js", "TypeScript", "Tailwind CSS"},
			Backend:    []string{"Go", "Node.js", "Python", "GraphQL"},
			AI:         []string{"OpenAI API", "Gemini", "LangChain", "retrieval-augmented generation", "scikit-learn"},
			Cloud:      []string{"AWS", "Google Cloud", "Vercel", "Cloudflare"},
			Database:   []string{"PostgreSQL", "Firestore", "Redis", "BigQuery"},
			DevOps:     []string{"Docker", "GitHub Actions", "Terraform", "Grafana"},
			Mobile:     []string{"React Native", "Flutter"},
			Blockchain: []string{"smart contract audits", "Ethereum integrations"},
			IoT:        []string{"MQTT pipelines", "edge telemetry ingestion"},
		},
		Pricing: Pricing{
			Model:       "project-based with transparent fixed quotes",
			Description: "Most engagements are fixed-price per project after a free scoping call. Typical websites start around EUR 6k, chatbots around EUR 4k, and dashboards around EUR 8k; strategy engagements are billed weekly. Ongoing support is an optional monthly retainer.",
			Note:        "Every quote includes a detailed breakdown before any commitment. No surprise invoices.",
		},
		Team: Team{
			Size:        "nine people",
			Description: "A compact senior team of engineers, designers and data scientists. Every project is led by a senior engineer who stays hands-on from scoping to handover, with no account-manager layers in between.",
			Roles:       []string{"full-stack engineers", "ML engineers", "product designers", "data scientists"},
		},
		FAQs: []FAQ{
			{
				ID:       "faq-timeline",
				Question: "How long does a typical project take?",
				Answer:   "Most websites ship in four to eight weeks, chatbots in three to six weeks, and dashboards in four to ten weeks depending on data readiness.",
			},
			{
				ID:       "faq-data",
				Question: "Do you need access to our data?",
				Answer:   "Only to what the project requires. We work under NDA, prefer read-only access, and can train on anonymized extracts when data is sensitive.",
			},
			{
				ID:       "faq-maintenance",
				Question: "Who maintains the product after launch?",
				Answer:   "You own all code and accounts. We offer an optional support retainer, but everything is documented so your own team can take over.",
			},
			{
				ID:       "faq-small",
				Question: "We are a small company, is AI worth it for us?",
				Answer:   "Usually yes, if scoped narrowly. Our smallest automation projects pay for themselves in months; the scoping call is free and we will say so if it does not.",
			},
			{
				ID:       "faq-existing",
				Question: "Can you work with our existing website or tools?",
				Answer:   "Yes. Most of our chatbot and automation work plugs into existing sites, CRMs, calendars and spreadsheets rather than replacing them.",
			},
			{
				ID:       "faq-languages",
				Question: "Which languages do your chatbots support?",
				Answer:   "English, Portuguese, Spanish, French and German out of the box; other languages on request.",
			},
		},
		Industries: []Industry{
			{ID: "ind-health", Name: "Healthcare", Description: "Patient communication, appointment booking and intake automation for clinics."},
			{ID: "ind-legal", Name: "Legal", Description: "Document intake, clause extraction and research assistants for law firms."},
			{ID: "ind-retail", Name: "Retail & E-commerce", Description: "Product finders, personalized content and demand dashboards."},
			{ID: "ind-logistics", Name: "Logistics", Description: "Dispatch dashboards, delay prediction and fleet telemetry."},
			{ID: "ind-finance", Name: "Financial Services", Description: "Reporting automation and client-facing knowledge assistants."},
			{ID: "ind-hospitality", Name: "Hospitality", Description: "Booking assistants and guest communication automation."},
		},
		Certifications: []string{
			"Google Cloud Partner",
			"AWS Select Consulting Partner",
			"ISO 27001 aligned security practices",
		},
		Partnerships: []string{
			"Vercel Agency Partner",
			"OpenAI API early access program",
		},
		Testimonials: []Testimonial{
			{Client: "Harborview Clinics", Quote: "The booking assistant paid for itself in eight weeks. Patients love it and the front desk finally has room to breathe."},
			{Client: "Terra Logistics", Quote: "Forgelight turned three spreadsheets and a prayer into a dispatch system we actually trust."},
			{Client: "Meridian Retail", Quote: "The relaunch was on time, on budget, and the product finder is our best-performing feature."},
		},
		CaseStudies: []CaseStudy{
			{
				ID:      "cs-harborview",
				Title:   "From hold music to instant answers at Harborview Clinics",
				Summary: "How a knowledge-grounded chat assistant and calendar integration moved 40% of bookings online without adding staff.",
			},
			{
				ID:      "cs-terra",
				Title:   "One screen for every truck at Terra Logistics",
				Summary: "Merging GPS telemetry and order spreadsheets into a live dashboard with delay prediction, raising on-time delivery eight points.",
			},
		},
	}
}
