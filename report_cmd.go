package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nish-b/found-call-explorer/analysis"
	"github.com/nish-b/found-call-explorer/model"
	"github.com/nish-b/found-call-explorer/report"
)

func (s *session) load(ctx context.Context) ([]model.CallRecord, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return s.loader.Load(ctx, s.source)
}

func runSummary(cmd *cobra.Command, args []string) error {
	s, err := newSession(args, false)
	if err != nil {
		return err
	}
	defer s.close()

	records, err := s.load(cmd.Context())
	if err != nil {
		return err
	}
	summary := analysis.Summarize(records)
	s.logger.Info("summary computed",
		zap.Int("working_set", summary.Rows),
		zap.Int("categories", len(summary.Breakdown)),
	)
	return printMarkdown(cmd, report.Overview(s.cfg.Title, summary))
}

func runInspect(cmd *cobra.Command, args []string) error {
	disposition := args[0]
	s, err := newSession(args[1:], false)
	if err != nil {
		return err
	}
	defer s.close()

	records, err := s.load(cmd.Context())
	if err != nil {
		return err
	}
	notes := analysis.NotesFor(analysis.WorkingSet(records), disposition)
	keywords := analysis.KeywordFrequency(notes)
	if !analysis.IsMapped(disposition) {
		s.logger.Warn("disposition is not in any category", zap.String("disposition", disposition))
	}
	return printMarkdown(cmd, report.Detail(disposition, notes, keywords))
}

func printMarkdown(cmd *cobra.Command, md string) error {
	out := md
	if !raw {
		rendered, err := report.Render(md, width, style)
		if err != nil {
			return err
		}
		out = rendered
	}
	_, err := fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
