package slides

import (
	"strconv"
	"time"

	"github.com/goliatone/go-ideaplan/pkg/analysis"
)

const (
	Subtitle    = "Complete Project Analysis & Implementation Plan"
	Attribution = "Generated by ideaplan"

	defaultFrontend = "React"
	defaultBackend  = "Node.js"
)

// Option customises slide generation.
type Option func(*config)

type config struct {
	clock      func() time.Time
	dateLayout string
}

// WithClock sets the clock used to stamp the title slide.
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithDateLayout overrides the time layout for the title slide date.
func WithDateLayout(layout string) Option {
	return func(c *config) {
		if layout != "" {
			c.dateLayout = layout
		}
	}
}

var milestones = []string{
	"Project Setup & Environment Configuration",
	"Core Architecture & Database Design",
	"MVP Development (Core Features)",
	"User Interface & Experience Design",
	"Testing & Quality Assurance",
	"Deployment & Production Setup",
	"Launch & User Feedback Collection",
	"Iteration & Feature Enhancement",
}

var roadmap = []string{
	"Environment Setup: Configure development tools and repositories",
	"Database Design: Create schema and establish data relationships",
	"API Development: Build backend services and endpoints",
	"Frontend Development: Create user interface and components",
	"Integration Testing: Ensure all systems work together",
	"User Acceptance Testing: Validate with target users",
	"Production Deployment: Launch to live environment",
	"Monitoring & Optimization: Track performance and iterate",
}

var risks = []RiskRow{
	{Risk: "Technical Complexity", Impact: "Medium", Mitigation: "Use proven technologies and frameworks"},
	{Risk: "Timeline Overrun", Impact: "Low", Mitigation: "Agile development with regular milestones"},
	{Risk: "Budget Constraints", Impact: "Medium", Mitigation: "Prioritize MVP features first"},
	{Risk: "User Adoption", Impact: "Medium", Mitigation: "Conduct user research and testing"},
	{Risk: "Scalability Issues", Impact: "Low", Mitigation: "Design with scalability in mind"},
}

var nextSteps = []string{
	"Assemble development team and assign roles",
	"Set up project management tools (Jira, Trello, etc.)",
	"Create detailed technical specifications",
	"Establish development environment and CI/CD pipeline",
	"Begin with database design and API architecture",
	"Create wireframes and UI/UX mockups",
	"Set up monitoring and analytics tools",
	"Plan user testing and feedback collection strategy",
}

var resources = []string{
	"Complete project analysis and recommendations",
	"Technical architecture and technology stack",
	"Development timeline and milestone planning",
	"Risk assessment and mitigation strategies",
	"Implementation roadmap and next steps",
	"Code structure and development guidelines",
}

// Generate returns the eleven slides for an analysis, always in Order().
func Generate(a analysis.ProjectAnalysis, idea string, opts ...Option) []Slide {
	cfg := config{clock: time.Now, dateLayout: "January 2, 2006"}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	a = a.Clone()
	frontend := techHead(a, 0, defaultFrontend)
	backend := techHead(a, 1, defaultBackend)

	return []Slide{
		{
			Title: idea,
			Kind:  KindTitle,
			Content: TitleContent{
				Subtitle:  Subtitle,
				Generated: Attribution + " • " + cfg.clock().Format(cfg.dateLayout),
			},
		},
		{
			Title: "Executive Summary",
			Kind:  KindSummary,
			Content: SummaryContent{Rows: []SummaryRow{
				{Label: "Project Timeline", Value: a.Timeline},
				{Label: "Complexity Level", Value: string(a.Complexity)},
				{Label: "Recommended Team Size", Value: a.TeamSize},
				{Label: "Primary Technology", Value: frontend},
				{Label: "Key Features Count", Value: strconv.Itoa(len(a.Features))},
				{Label: "Main Goals", Value: strconv.Itoa(len(a.Goals))},
			}},
		},
		{Title: "Project Goals & Objectives", Kind: KindGoals, Content: ListContent{Items: a.Goals}},
		{Title: "Key Features & Functionality", Kind: KindFeatures, Content: ListContent{Items: a.Features}},
		{Title: "Recommended Technical Architecture", Kind: KindTechStack, Content: TechStackContent{Entries: a.TechStack}},
		{Title: "Development Timeline & Milestones", Kind: KindTimeline, Content: ListContent{Items: clone(milestones)}},
		{
			Title: "Project Code Structure",
			Kind:  KindCode,
			Content: CodeContent{
				Frontend:  frontend,
				Backend:   backend,
				Structure: codeStructure(frontend, backend),
			},
		},
		{Title: "Implementation Roadmap", Kind: KindRoadmap, Content: ListContent{Items: clone(roadmap)}},
		{Title: "Risk Assessment & Mitigation", Kind: KindRisks, Content: RiskContent{Rows: append([]RiskRow(nil), risks...)}},
		{Title: "Immediate Next Steps", Kind: KindNextSteps, Content: ListContent{Items: clone(nextSteps)}},
		{
			Title:   "Resources & Documentation",
			Kind:    KindResources,
			Content: ResourcesContent{Subtitle: Attribution, Includes: clone(resources)},
		},
	}
}

// techHead returns the first technology of the entry at idx. The code slide
// reads entries by position, unlike the scaffold which matches categories.
func techHead(a analysis.ProjectAnalysis, idx int, fallback string) string {
	entry, ok := a.TechAt(idx)
	if !ok {
		return fallback
	}
	return entry.Primary(fallback)
}

func codeStructure(frontend, backend string) string {
	return "Frontend (" + frontend + ")\n" +
		"├── src/\n" +
		"│   ├── components/\n" +
		"│   ├── pages/\n" +
		"│   ├── hooks/\n" +
		"│   └── utils/\n" +
		"\n" +
		"Backend (" + backend + ")\n" +
		"├── routes/\n" +
		"├── models/\n" +
		"├── middleware/\n" +
		"└── controllers/\n" +
		"\n" +
		"Database Schema\n" +
		"├── Users table\n" +
		"├── Core entities\n" +
		"└── Relationships"
}

func clone(items []string) []string {
	return append([]string(nil), items...)
}
