package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"svw.info/wordle/internal/domain"
	"svw.info/wordle/internal/infrastructure/storage"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		answer  string
		guesses []string
		save    bool
	)
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a played game guess by guess",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := newLogger(cfg)
			svc, orch, err := buildService(cfg, logger)
			if err != nil {
				return err
			}
			defer orch.Close()
			svc.Storage = storage.NewFS(cfg.ReportDir)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			words := make([]domain.Word, 0, len(guesses))
			for _, g := range guesses {
				words = append(words, domain.Word(g))
			}

			progress := make(chan domain.Progress, 64)
			drawn := drainProgress(progress)
			rep, err := svc.AnalyzeGame(ctx, domain.Word(answer), words, progress)
			<-drawn
			if err != nil {
				return err
			}

			for i, t := range rep.Turns {
				fmt.Printf("turn %d (%d common / %d other candidates)\n", i+1, t.CommonBefore, t.OtherBefore)
				fmt.Printf(" you  (best: %s)\n%s", t.Best, renderPlay(t.User))
				fmt.Printf(" ai   (%s)\n%s", t.Strategy, renderPlay(t.AI))
			}
			fmt.Printf("ai playthrough: %d turns, you took %d (mean quality %.2f)\n",
				rep.Summary.AITurns, rep.Summary.UserTurns, rep.Summary.MeanQuality)
			for _, p := range rep.AIGame {
				fmt.Printf("  %s  (%s)\n", renderTiles(p.Play.Guess, p.Play.Colors), p.Strategy)
			}

			if save {
				if err := svc.Save(ctx, rep); err != nil {
					return err
				}
				fmt.Printf("saved report %s\n", rep.ID)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&answer, "answer", "a", "", "the true answer word")
	cmd.Flags().StringSliceVarP(&guesses, "guesses", "g", nil, "played guesses in order")
	cmd.Flags().BoolVar(&save, "save", false, "save the report to the report directory")
	_ = cmd.MarkFlagRequired("answer")
	_ = cmd.MarkFlagRequired("guesses")
	return cmd
}
