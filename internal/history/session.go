// Package history tracks the current input, the current result, and a capped
// record of past analyses.
package history

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/zscore/internal/model"
	"github.com/verte-zerg/zscore/internal/store"
	"github.com/verte-zerg/zscore/internal/textstats"
)

// ErrNotFound is returned when a history id is unknown.
var ErrNotFound = store.ErrNotFound

// Recorder persists analyses. *store.Store implements it.
type Recorder interface {
	InsertResult(ctx context.Context, item model.HistoryItem, limit int) error
	ListHistory(ctx context.Context, limit int) ([]model.HistoryItem, error)
	GetHistory(ctx context.Context, id string) (model.HistoryItem, error)
	RemoveHistory(ctx context.Context, id string) error
	ClearHistory(ctx context.Context) (int64, error)
}

// Options configures a Session.
type Options struct {
	MaxSize  int
	Save     bool
	Analyzer *textstats.Analyzer
	NewID    func() string
	Logger   zerolog.Logger
}

// Session holds UI-facing state. It is not safe for concurrent use.
type Session struct {
	rec      Recorder
	analyzer *textstats.Analyzer
	newID    func() string
	maxSize  int
	save     bool
	logger   zerolog.Logger

	text   string
	result *model.AnalysisResult
}

// NewSession builds a Session over rec.
func NewSession(rec Recorder, opts Options) *Session {
	s := &Session{
		rec:      rec,
		analyzer: opts.Analyzer,
		newID:    opts.NewID,
		maxSize:  opts.MaxSize,
		save:     opts.Save,
		logger:   opts.Logger,
	}
	if s.analyzer == nil {
		s.analyzer = textstats.NewAnalyzer(nil)
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	if s.maxSize <= 0 {
		s.maxSize = 10
	}
	return s
}

// SetText replaces the current input.
func (s *Session) SetText(text string) {
	s.text = text
}

// Text returns the current input.
func (s *Session) Text() string {
	return s.text
}

// Result returns the current result, if any.
func (s *Session) Result() (model.AnalysisResult, bool) {
	if s.result == nil {
		return model.AnalysisResult{}, false
	}
	return *s.result, true
}

// Analyze analyzes the current input and records it. Whitespace-only input
// produces a zero result that is not recorded.
func (s *Session) Analyze(ctx context.Context) (model.AnalysisResult, error) {
	if textstats.IsBlank(s.text) {
		r := s.analyzer.Analyze("")
		s.result = &r
		return r, nil
	}
	r := s.analyzer.Analyze(s.text)
	s.result = &r
	if !s.save {
		return r, nil
	}
	item := model.HistoryItem{ID: s.newID(), Result: r}
	if err := s.rec.InsertResult(ctx, item, s.maxSize); err != nil {
		return r, fmt.Errorf("failed to save analysis: %w", err)
	}
	s.logger.Debug().Str("id", item.ID).Int("words", r.WordCount).Msg("analysis recorded")
	return r, nil
}

// ClearCurrent drops the current input and result.
func (s *Session) ClearCurrent() {
	s.text = ""
	s.result = nil
}

// History returns recorded analyses, newest first.
func (s *Session) History(ctx context.Context) ([]model.HistoryItem, error) {
	return s.rec.ListHistory(ctx, s.maxSize)
}

// ClearHistory removes every recorded analysis.
func (s *Session) ClearHistory(ctx context.Context) error {
	n, err := s.rec.ClearHistory(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	s.logger.Debug().Int64("removed", n).Msg("history cleared")
	return nil
}

// RemoveHistoryItem removes one recorded analysis.
func (s *Session) RemoveHistoryItem(ctx context.Context, id string) error {
	if err := s.rec.RemoveHistory(ctx, id); err != nil {
		return fmt.Errorf("failed to remove %s: %w", id, err)
	}
	return nil
}

// Item returns one recorded analysis.
func (s *Session) Item(ctx context.Context, id string) (model.HistoryItem, error) {
	item, err := s.rec.GetHistory(ctx, id)
	if err != nil {
		return model.HistoryItem{}, fmt.Errorf("failed to load %s: %w", id, err)
	}
	return item, nil
}

// LoadHistoryText copies a recorded text into the current input.
func (s *Session) LoadHistoryText(ctx context.Context, id string) (string, error) {
	item, err := s.Item(ctx, id)
	if err != nil {
		return "", err
	}
	s.text = item.Result.Text
	return s.text, nil
}
