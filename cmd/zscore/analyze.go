package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/zscore/internal/config"
	"github.com/verte-zerg/zscore/internal/i18n"
	"github.com/verte-zerg/zscore/internal/model"
	"github.com/verte-zerg/zscore/internal/render"
	"github.com/verte-zerg/zscore/internal/textstats"
)

var (
	analyzeFile   string
	analyzeTop    = config.DefaultTop
	analyzeAll    bool
	analyzeJSON   bool
	analyzeNoSave bool
)

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [text...]",
		Short: "Analyze text from arguments, a file, or stdin",
		RunE:  runAnalyzeCmd,
	}
	cmd.Flags().StringVar(&analyzeFile, "file", "", "read text from file")
	cmd.Flags().IntVar(&analyzeTop, "top", config.DefaultTop, "rows in the top-words chart (0 hides it)")
	cmd.Flags().BoolVar(&analyzeAll, "all", false, "print the full frequency table")
	cmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&analyzeNoSave, "no-save", false, "do not record the analysis in history")
	return cmd
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	text, err := readInput(cmd.InOrStdin(), args, analyzeFile)
	if err != nil {
		return err
	}
	if textstats.IsBlank(text) {
		text = ""
	}

	var result model.AnalysisResult
	if s.cfg.Save {
		session, closeFn, err := openSession(s)
		if err != nil {
			return err
		}
		defer closeFn()
		session.SetText(text)
		result, err = session.Analyze(context.Background())
		if err != nil {
			return err
		}
	} else {
		result = textstats.Analyze(text)
	}

	out := cmd.OutOrStdout()
	if analyzeJSON {
		return render.RenderJSON(out, result, render.IsTerminal(out))
	}
	return render.RenderResult(out, result, render.Options{
		Top:      s.cfg.Top,
		All:      analyzeAll,
		Width:    render.TerminalWidth(out),
		Messages: i18n.For(s.cfg.Lang),
		Styles:   render.NewStyles(s.cfg.Theme, render.IsTerminal(out)),
	})
}

// readInput picks the text source: arguments, then --file, then piped stdin.
func readInput(stdin io.Reader, args []string, file string) (string, error) {
	if len(args) > 0 && file != "" {
		return "", fmt.Errorf("pass text arguments or --file, not both")
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", file, err)
		}
		return string(data), nil
	}
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", fmt.Errorf("no input: pass text, --file, or pipe text on stdin")
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
