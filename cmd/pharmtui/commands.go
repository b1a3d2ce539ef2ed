package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/Cyclone1070/pharmtui/internal/api"
	uiservices "github.com/Cyclone1070/pharmtui/internal/ui/services"
	"github.com/Cyclone1070/pharmtui/internal/ui/views"
	"github.com/spf13/cobra"
)

// renderWidth is the wrap width for headless output.
const renderWidth = 80

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Search the drug database",
		Long: `Search drugs by name, class or indication.

An empty query is sent as-is and returns whatever the backend lists.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.client.SearchDrugs(cmd.Context(), joinArgs(args))
			if err != nil {
				return failure(err)
			}
			return write(cmd.OutOrStdout(), views.FormatDrugs(items, renderWidth, a.theme()))
		},
	}
}

func newSimulateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "simulate <drugs>",
		Short: "Check pairwise interactions between drugs",
		Example: `  pharmtui simulate "warfarin, fluconazole, metoprolol"
  pharmtui simulate warfarin fluconazole`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			drugs := api.ParseDrugList(strings.Join(args, ","))
			pairs, err := a.client.SimulateInteractions(cmd.Context(), drugs)
			if err != nil {
				return failure(err)
			}
			return write(cmd.OutOrStdout(), views.FormatPairs(pairs, renderWidth, a.theme()))
		},
	}
}

func newChatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chat <message>",
		Short: "Ask the pharmacology chatbot",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reply, err := a.client.Chat(cmd.Context(), joinArgs(args))
			if err != nil {
				return failure(err)
			}
			return write(cmd.OutOrStdout(), views.FormatReply(reply.Reply, true, renderWidth, uiservices.NewGlamourRenderer()))
		},
	}
}

func newQuizCmd(a *app) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "quiz <topic>",
		Short: "Generate practice questions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := a.cfg.Quiz.Count
			if cmd.Flags().Changed("count") {
				if count < 1 {
					return fmt.Errorf("--count must be at least 1")
				}
				n = count
			}
			items, err := a.client.GenerateQuiz(cmd.Context(), joinArgs(args), n)
			if err != nil {
				return failure(err)
			}
			return write(cmd.OutOrStdout(), views.FormatQuiz(items, renderWidth, a.theme()))
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 0, "Number of questions (default from config)")
	return cmd
}

func newResearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "research <query>",
		Short: "Summarize literature for a query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := a.client.SummarizeResearch(cmd.Context(), joinArgs(args))
			if err != nil {
				return failure(err)
			}
			return write(cmd.OutOrStdout(), views.FormatSummary(summary.Summary, renderWidth, uiservices.NewGlamourRenderer()))
		},
	}
}

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load demo data into the backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := a.client.Seed(cmd.Context())
			if err != nil {
				return failure(err)
			}
			return write(cmd.OutOrStdout(), uiservices.FormatSeedStatus(status))
		},
	}
}

func (a *app) theme() views.Theme {
	return views.NewTheme(a.cfg.UI)
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}

// failure prefixes err with the message a panel would show.
func failure(err error) error {
	return fmt.Errorf("%s: %w", uiservices.FormatError(err), err)
}

func write(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, s)
	return err
}
