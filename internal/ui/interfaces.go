package ui

import (
	"context"

	"github.com/Cyclone1070/pharmtui/internal/api"
)

// Backend is the set of backend operations the panels call.
// *api.Client implements it.
type Backend interface {
	SearchDrugs(ctx context.Context, query string) ([]api.DrugRecord, error)
	SimulateInteractions(ctx context.Context, drugs []string) ([]api.InteractionPair, error)
	Chat(ctx context.Context, message string) (api.ChatReply, error)
	GenerateQuiz(ctx context.Context, topic string, count int) ([]api.QuizItem, error)
	SummarizeResearch(ctx context.Context, query string) (api.ResearchSummary, error)
	Seed(ctx context.Context) (api.SeedStatus, error)
}

var _ Backend = (*api.Client)(nil)
