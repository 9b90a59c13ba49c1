package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"lotto-gate/internal/lotto"

	"github.com/rs/zerolog"
)

// prompter reads answers line by line and asks again after every rejection.
type prompter struct {
	reader *bufio.Reader
	out    io.Writer
	logger zerolog.Logger
}

func newPrompter(in io.Reader, out io.Writer, logger zerolog.Logger) *prompter {
	return &prompter{
		reader: bufio.NewReader(in),
		out:    out,
		logger: logger,
	}
}

func (p *prompter) run() error {
	parser := lotto.NewParser()

	price, err := ask(p, "Enter the purchase amount.", func(input string) (int, error) {
		if err := lotto.ValidatePrice(input); err != nil {
			return 0, err
		}
		return parser.ParseInt(input)
	})
	if err != nil {
		return err
	}

	numbers, err := ask(p, "Enter the winning numbers.", lotto.ValidateWinningNumbers)
	if err != nil {
		return err
	}

	bonus, err := ask(p, "Enter the bonus number.", func(input string) (int, error) {
		if err := lotto.ValidateBonus(input, numbers); err != nil {
			return 0, err
		}
		return parser.ParseInt(input)
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(p.out, "price: %d\n", price)
	fmt.Fprintf(p.out, "winning numbers: %v\n", numbers)
	fmt.Fprintf(p.out, "bonus number: %d\n", bonus)
	return nil
}

// readLine prints question and returns the next line without its line ending.
// Other whitespace is kept so that it is validated, not silently dropped.
// Lines of any length are returned whole, and a last line without a newline
// still counts as an answer.
func (p *prompter) readLine(question string) (string, error) {
	fmt.Fprintln(p.out, question)

	line, err := p.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", io.ErrUnexpectedEOF
		}
	}

	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func ask[T any](p *prompter, question string, validate func(string) (T, error)) (T, error) {
	for {
		line, err := p.readLine(question)
		if err != nil {
			var zero T
			return zero, err
		}

		value, err := validate(line)
		if err == nil {
			return value, nil
		}

		p.logger.Debug().Str("input", line).Err(err).Msg("input rejected, asking again")
		fmt.Fprintf(p.out, "[ERROR] %s\n", err)
	}
}
