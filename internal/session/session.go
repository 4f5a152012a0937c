// Package session runs the interactive question loop.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/DjordjeVuckovic/reasoner/internal/logging"
	"github.com/DjordjeVuckovic/reasoner/internal/reasoner"
	"github.com/samber/lo"
)

const (
	EmptyPrompt = "Please enter a question."
	Goodbye     = "Goodbye!"

	cmdDemo    = "demo"
	cmdStats   = "stats"
	cmdHistory = "history"
	cmdHelp    = "help"
)

type Config struct {
	Prompt    string
	ExitWords []string
}

func DefaultConfig() Config {
	return Config{Prompt: "> ", ExitWords: []string{"exit", "quit"}}
}

// Session reads one question per line and writes one answer line per
// question.
type Session struct {
	reasoner *reasoner.Reasoner
	in       *bufio.Reader
	out      io.Writer
	cfg      Config
	logger   *slog.Logger
}

func New(r *reasoner.Reasoner, in io.Reader, out io.Writer, cfg Config, logger *slog.Logger) *Session {
	if len(cfg.ExitWords) == 0 {
		cfg.ExitWords = DefaultConfig().ExitWords
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Session{
		reasoner: r,
		in:       bufio.NewReader(in),
		out:      out,
		cfg:      cfg,
		logger:   logger,
	}
}

// Run loops until an exit word, end of input or context cancellation.
// Ending the loop is never an error; only write failures are returned.
func (s *Session) Run(ctx context.Context) error {
	if err := s.printf("Ask a question. Type %q for examples, %q to quit.\n", cmdDemo, s.cfg.ExitWords[0]); err != nil {
		return err
	}

	for {
		if ctx.Err() != nil {
			s.logger.Debug("Session cancelled", "error", ctx.Err())
			return nil
		}

		if err := s.printf("%s", s.cfg.Prompt); err != nil {
			return err
		}

		line, readErr := s.in.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("read input: %w", readErr)
		}
		eof := errors.Is(readErr, io.EOF)

		line = strings.TrimSpace(line)
		if eof && line == "" {
			s.logger.Debug("Input closed")
			return s.printf("\n")
		}

		done, err := s.handle(line)
		if err != nil {
			return err
		}
		if done || eof {
			return nil
		}
	}
}

func (s *Session) handle(line string) (bool, error) {
	switch {
	case line == "":
		return false, s.printf("%s\n", EmptyPrompt)
	case s.isExit(line):
		return true, s.printf("%s\n", Goodbye)
	}

	switch strings.ToLower(line) {
	case cmdDemo:
		return false, s.demo()
	case cmdStats:
		return false, s.stats()
	case cmdHistory:
		return false, s.history()
	case cmdHelp:
		return false, s.help()
	}

	ans := s.reasoner.Ask(line)
	return false, s.printf("%s\n", ans.Line())
}

func (s *Session) isExit(line string) bool {
	return lo.ContainsBy(s.cfg.ExitWords, func(w string) bool {
		return strings.EqualFold(w, line)
	})
}

func (s *Session) demo() error {
	for i, ans := range s.reasoner.Demo() {
		if err := s.printf("%d. %s\n   %s\n", i+1, ans.Question, ans.Line()); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) stats() error {
	st := s.reasoner.Transcript().Stats()
	if err := s.printf("Answered %d questions (%d computed, %d not enough data)\n",
		st.Total, st.Computed, st.NotEnoughData); err != nil {
		return err
	}

	cats := lo.Keys(st.ByCategory)
	slices.Sort(cats)
	for _, c := range cats {
		if err := s.printf("  %-12s %d\n", c, st.ByCategory[c]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) history() error {
	entries := s.reasoner.Transcript().Entries()
	if len(entries) == 0 {
		return s.printf("No questions yet.\n")
	}
	for i, e := range entries {
		if err := s.printf("%d. %s\n   %s\n", i+1, e.Question, e.Answer.Line()); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) help() error {
	return s.printf("Commands: %s, %s, %s, %s. Anything else is answered as a question.\n",
		cmdDemo, cmdStats, cmdHistory, strings.Join(s.cfg.ExitWords, "/"))
}

func (s *Session) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(s.out, format, args...); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
