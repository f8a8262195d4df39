package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"scopedraft/internal/assembler"
	"scopedraft/internal/bus"
	"scopedraft/internal/content"
	"scopedraft/internal/editor"
	"scopedraft/internal/rollup"
	"scopedraft/pkg/types/proposal"
)

func newAssembleCommand() *cobra.Command {
	var (
		output  string
		format  string
		preview bool
	)

	cmd := &cobra.Command{
		Use:   "assemble <breakdown.json>",
		Short: "Assemble a work breakdown into a proposal document",
		Long: `Reads a work-breakdown JSON file ("-" for stdin), builds the proposal
content tree with financial rollups, inserts it into a document, and writes
the result as HTML, Markdown, or the raw node tree as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssemble(cmd, args[0], output, format, preview)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&format, "format", "", "Output format: html, markdown, or json")
	cmd.Flags().BoolVar(&preview, "preview", false, "Render a styled Markdown preview to the terminal")
	return cmd
}

func runAssemble(cmd *cobra.Command, input, output, format string, preview bool) error {
	cfg, err := loadRuntimeConfig(cmd.Flags())
	if err != nil {
		return err
	}
	if format == "" {
		format = cfg.OutputFormat
	}
	logger := newLogger(cfg, "Assemble")

	data, err := readInput(input)
	if err != nil {
		return err
	}
	breakdown, err := proposal.Parse(data)
	if err != nil {
		return err
	}
	if err := breakdown.Validate(); err != nil {
		return fmt.Errorf("invalid work breakdown: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	doc := editor.NewDocument()
	target := bus.Target{
		DocumentID: "local",
		Provider: assembler.ProviderFunc(func() (assembler.Editor, bool) {
			return doc, true
		}),
	}

	// The command layer never touches the document directly; it publishes an
	// insert command and the assembly consumer acts on the carried target.
	commandBus := bus.New(1)
	defer commandBus.Close()
	done := make(chan error, 1)
	go func() {
		for c := range commandBus.Commands() {
			switch c := c.(type) {
			case bus.InsertBreakdown:
				asm := assembler.New(c.Target.Provider,
					content.NewBuilder(rollup.NewFormatter(cfg.Locale)),
					logger, cfg.EditorRetryDelay())
				done <- asm.Insert(ctx, c.Breakdown)
				return
			}
		}
	}()

	if err := commandBus.Publish(ctx, bus.InsertBreakdown{Target: target, Breakdown: breakdown}); err != nil {
		return err
	}
	if err := <-done; err != nil {
		// Assembly failures must be loud: a partial document is surfaced,
		// never silently shipped.
		fmt.Fprintln(os.Stderr, errorLine("assembly failed: "+err.Error()))
		return err
	}

	rendered, err := renderDocument(doc, format)
	if err != nil {
		return err
	}

	if preview && isTTY() {
		styled, err := renderMarkdownPreview(doc.ExportMarkdown())
		if err == nil {
			fmt.Fprint(os.Stdout, styled)
			fmt.Fprintln(os.Stderr, successLine(fmt.Sprintf("assembled %q (%d nodes)", breakdown.ProjectTitle, doc.Len())))
			return nil
		}
		fmt.Fprintln(os.Stderr, yellow("preview renderer unavailable, falling back to plain output"))
	}

	if output == "" {
		fmt.Fprint(os.Stdout, rendered)
	} else {
		if err := os.WriteFile(output, []byte(rendered), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", output, err)
		}
	}
	fmt.Fprintln(os.Stderr, successLine(fmt.Sprintf("assembled %q (%d nodes)", breakdown.ProjectTitle, doc.Len())))
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

func renderDocument(doc *editor.Document, format string) (string, error) {
	switch format {
	case "html":
		return doc.ExportHTML(), nil
	case "markdown", "md":
		return doc.ExportMarkdown(), nil
	case "json":
		data, err := json.MarshalIndent(doc.Nodes(), "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding node tree: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("unknown output format %q (want html, markdown, or json)", format)
	}
}
