package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/zscore/internal/i18n"
	"github.com/verte-zerg/zscore/internal/render"
)

var historyJSON bool

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect and manage recorded analyses",
	}
	cmd.PersistentFlags().BoolVar(&historyJSON, "json", false, "print JSON")

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List recorded analyses, newest first",
		Args:  cobra.NoArgs,
		RunE:  runHistoryListCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "show ID",
		Short: "Show one recorded analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistoryShowCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "rm ID",
		Short: "Remove one recorded analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistoryRemoveCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove every recorded analysis",
		Args:  cobra.NoArgs,
		RunE:  runHistoryClearCmd,
	})
	return cmd
}

func runHistoryListCmd(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	session, closeFn, err := openSession(s)
	if err != nil {
		return err
	}
	defer closeFn()

	items, err := session.History(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}
	out := cmd.OutOrStdout()
	if historyJSON {
		return render.RenderJSON(out, items, render.IsTerminal(out))
	}
	return render.RenderHistory(out, items, render.Options{
		Messages: i18n.For(s.cfg.Lang),
		Styles:   render.NewStyles(s.cfg.Theme, render.IsTerminal(out)),
		Width:    render.TerminalWidth(out),
	})
}

func runHistoryShowCmd(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	session, closeFn, err := openSession(s)
	if err != nil {
		return err
	}
	defer closeFn()

	item, err := session.Item(context.Background(), args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if historyJSON {
		return render.RenderJSON(out, item, render.IsTerminal(out))
	}
	opts := render.Options{
		Top:      s.cfg.Top,
		All:      true,
		Messages: i18n.For(s.cfg.Lang),
		Styles:   render.NewStyles(s.cfg.Theme, render.IsTerminal(out)),
		Width:    render.TerminalWidth(out),
	}
	if _, err := fmt.Fprintf(out, "%s  %s %s\n%s\n\n", item.ID, opts.Messages.AnalyzedOn,
		render.FormatTimestamp(item.Result.Timestamp), item.Result.Text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return render.RenderResult(out, item.Result, opts)
}

func runHistoryRemoveCmd(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	session, closeFn, err := openSession(s)
	if err != nil {
		return err
	}
	defer closeFn()

	return session.RemoveHistoryItem(context.Background(), args[0])
}

func runHistoryClearCmd(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	session, closeFn, err := openSession(s)
	if err != nil {
		return err
	}
	defer closeFn()

	return session.ClearHistory(context.Background())
}
