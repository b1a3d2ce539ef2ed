package api

import "fmt"

// Severity is the backend's rating of a drug pair interaction.
type Severity string

const (
	SeverityMajor    Severity = "major"
	SeverityModerate Severity = "moderate"
	SeverityMinor    Severity = "minor"
	SeverityUnknown  Severity = "unknown"
)

// Level folds any unrecognized value into SeverityUnknown.
func (s Severity) Level() Severity {
	switch s {
	case SeverityMajor, SeverityModerate, SeverityMinor:
		return s
	default:
		return SeverityUnknown
	}
}

// DrugRecord is one entry of a search response.
type DrugRecord struct {
	ID          string   `mapstructure:"id"`
	Name        string   `mapstructure:"name"`
	BrandNames  []string `mapstructure:"brand_names"`
	ClassName   string   `mapstructure:"class_name"`
	Indications []string `mapstructure:"indications"`
	SideEffects []string `mapstructure:"side_effects"`
}

// InteractionPair is one pairwise result of a simulation.
type InteractionPair struct {
	DrugA       string   `mapstructure:"drug_a"`
	DrugB       string   `mapstructure:"drug_b"`
	Severity    Severity `mapstructure:"severity"`
	Description string   `mapstructure:"description"`
	Management  string   `mapstructure:"management"`
}

// ChatReply is the chatbot's answer. Reply is empty when the backend sent none.
type ChatReply struct {
	Reply string `mapstructure:"reply"`
}

// QuizItem is a generated multiple-choice question.
type QuizItem struct {
	Question    string   `mapstructure:"question"`
	Options     []string `mapstructure:"options"`
	AnswerIndex *int     `mapstructure:"answer_index"`
}

// Answer returns the option named by AnswerIndex.
// ok is false when the index is absent or out of range.
func (q QuizItem) Answer() (answer string, ok bool) {
	if q.AnswerIndex == nil {
		return "", false
	}
	i := *q.AnswerIndex
	if i < 0 || i >= len(q.Options) {
		return "", false
	}
	return q.Options[i], true
}

// ResearchSummary is the literature summary text.
type ResearchSummary struct {
	Summary string `mapstructure:"summary"`
}

// SeedCount is one value of the seeded object, kept as the backend sent it.
type SeedCount struct {
	Value any
	Set   bool
}

// String prints the value as sent, "null" for an explicit null and
// "undefined" when the key was absent.
func (c SeedCount) String() string {
	switch {
	case !c.Set:
		return "undefined"
	case c.Value == nil:
		return "null"
	default:
		return fmt.Sprint(c.Value)
	}
}

// SeedStatus holds the seeded counts.
type SeedStatus struct {
	Drugs SeedCount
	Rules SeedCount
}

// seedStatusFrom reads the counts from the raw seeded value. Anything that
// is not an object leaves both counts unset.
func seedStatusFrom(raw any) SeedStatus {
	obj, ok := raw.(map[string]any)
	if !ok {
		return SeedStatus{}
	}
	count := func(key string) SeedCount {
		v, ok := obj[key]
		return SeedCount{Value: v, Set: ok}
	}
	return SeedStatus{Drugs: count("drugs"), Rules: count("rules")}
}
