package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"scopedraft/internal/artifact"
	"scopedraft/internal/plan"
	"scopedraft/internal/stream"
)

func newReplayCommand() *cobra.Command {
	var (
		messageID string
		watch     bool
		delayMS   int
	)

	cmd := &cobra.Command{
		Use:   "replay <events.jsonl>",
		Short: "Replay a recorded tool-event stream and show the resulting plan",
		Long: `Reads a JSONL script of tool-invocation records, folds them into a task
plan bound to one assistant message id, and prints the final plan and
artifact. With --watch the plan renders live as events arrive.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd, args[0], messageID, watch, delayMS)
		},
	}

	cmd.Flags().StringVar(&messageID, "message-id", "", "Assistant message id to bind (default: first record's id)")
	cmd.Flags().BoolVar(&watch, "watch", false, "Render the plan live in a TUI as events fold")
	cmd.Flags().IntVar(&delayMS, "delay", -1, "Inter-event delay in milliseconds")
	return cmd
}

func runReplay(cmd *cobra.Command, script, messageID string, watch bool, delayMS int) error {
	cfg, err := loadRuntimeConfig(cmd.Flags())
	if err != nil {
		return err
	}
	logger := newLogger(cfg, "Replay")

	file, err := os.Open(script)
	if err != nil {
		return fmt.Errorf("opening %s: %w", script, err)
	}
	records, readErr := stream.ReadScript(file)
	file.Close()
	if readErr != nil {
		return readErr
	}
	if len(records) == 0 {
		return fmt.Errorf("script %s contains no events", script)
	}

	if messageID == "" {
		messageID = records[0].MessageID
	}

	delay := cfg.ReplayDelay()
	if delayMS >= 0 {
		delay = time.Duration(delayMS) * time.Millisecond
	}

	if watch && isTTY() {
		return runWatchTUI(records, messageID, delay)
	}

	tracker := plan.NewTracker(logger, nil)
	tracker.Bind(messageID)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := stream.Play(ctx, records, delay, tracker.Apply); err != nil {
		return err
	}

	printView(tracker.View())
	return nil
}

func statusGlyph(status plan.StepStatus) string {
	switch status {
	case plan.StatusCompleted:
		return green("✓")
	case plan.StatusFailed:
		return red("✗")
	case plan.StatusRunning:
		return yellow("▸")
	default:
		return gray("○")
	}
}

func printView(view plan.View) {
	if view.TotalCount == 0 && view.Artifact == nil {
		fmt.Println(gray("no plan produced"))
		return
	}

	if view.TotalCount > 0 {
		fmt.Printf("%s %s\n", bold(view.Title),
			gray(fmt.Sprintf("(%d/%d completed)", view.CompletedCount, view.TotalCount)))
		for _, step := range view.Steps {
			line := fmt.Sprintf("  %s %s", statusGlyph(step.Status), step.Label)
			if step.Details != "" {
				line += gray(" — " + step.Details)
			}
			fmt.Println(line)
		}
	}

	if view.Artifact != nil {
		fmt.Println()
		fmt.Println(artifact.RenderTerminal(view.Artifact, 80))
	}
}
