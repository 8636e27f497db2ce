package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"svw.info/wordle/internal/domain"
)

func newSelfPlayCmd() *cobra.Command {
	var answer string
	cmd := &cobra.Command{
		Use:   "selfplay",
		Short: "Let the AI play a full game against an answer",
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

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			progress := make(chan domain.Progress, 64)
			drawn := drainProgress(progress)
			plays, err := svc.SelfPlay(ctx, domain.Word(answer), progress)
			<-drawn
			if err != nil {
				return err
			}

			for i, p := range plays {
				fmt.Printf("turn %d (%d common / %d other candidates)\n", i+1, p.CommonBefore, p.OtherBefore)
				fmt.Printf("  %s  (%s)\n", renderTiles(p.Play.Guess, p.Play.Colors), p.Strategy)
			}
			fmt.Printf("solved in %d turns\n", len(plays))
			return nil
		},
	}
	cmd.Flags().StringVarP(&answer, "answer", "a", "", "the answer word to play against")
	_ = cmd.MarkFlagRequired("answer")
	return cmd
}
