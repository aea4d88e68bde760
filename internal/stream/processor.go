package stream

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/706f6c6c7578/enigma/internal/enigma"
)

// DefaultGroupSize is the width of the letter groups in the output.
const DefaultGroupSize = 5

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(p *Processor) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithGroupSize sets the output group width. Zero or less disables
// grouping.
func WithGroupSize(n int) Option {
	return func(p *Processor) {
		p.groupSize = n
	}
}

// Processor converts a stream of lines with one machine.
type Processor struct {
	machine   *enigma.Machine
	logger    *slog.Logger
	groupSize int
}

func NewProcessor(m *enigma.Machine, opts ...Option) *Processor {
	p := &Processor{
		machine:   m,
		logger:    slog.Default(),
		groupSize: DefaultGroupSize,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run reads lines from r and writes the results to w. Blank lines are
// copied, setup lines reconfigure the machine and every other line is
// converted. The first non-blank line must be a setup line.
//
// Lines converted before an error have been written to w.
func (p *Processor) Run(r io.Reader, w io.Writer) error {
	bw := bufio.NewWriter(w)
	err := p.run(r, bw)
	if ferr := bw.Flush(); err == nil && ferr != nil {
		err = fmt.Errorf("error writing output: %w", ferr)
	}
	return err
}

func (p *Processor) run(r io.Reader, w *bufio.Writer) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	configured := false
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()

		switch {
		case strings.TrimSpace(line) == "":
			if _, err := fmt.Fprintln(w); err != nil {
				return fmt.Errorf("error writing output: %w", err)
			}
		case IsSetup(line):
			setup, err := ParseSetup(line, p.machine.NumRotors())
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			if err := setup.Apply(p.machine); err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			configured = true
			p.logger.Debug("machine configured",
				"line", lineNo,
				"rotors", strings.Join(setup.Rotors, " "),
				"setting", setup.Setting,
				"rings", setup.Rings,
				"plugboard", setup.Plugboard)
		default:
			if !configured {
				return fmt.Errorf("line %d: %w", lineNo,
					enigma.Errorf(enigma.KindSetup, "input must start with a setup line"))
			}
			out, err := p.machine.ConvertMessage(line)
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			if _, err := fmt.Fprintln(w, Group(out, p.groupSize)); err != nil {
				return fmt.Errorf("error writing output: %w", err)
			}
			if err := w.Flush(); err != nil {
				return fmt.Errorf("error writing output: %w", err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	p.logger.Debug("input finished", "lines", lineNo, "settings", p.machine.Settings())
	return nil
}

// Group splits msg into groups of size runes separated by single spaces.
func Group(msg string, size int) string {
	runes := []rune(msg)
	if size <= 0 || len(runes) <= size {
		return msg
	}

	var b strings.Builder
	for i, r := range runes {
		if i > 0 && i%size == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
