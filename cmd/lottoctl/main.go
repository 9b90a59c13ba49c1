package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"lotto-gate/internal/config"
	"lotto-gate/internal/lotto"
	"lotto-gate/internal/model"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// errRejected is returned by check commands when the input fails validation.
var errRejected = errors.New("input rejected")

func main() {
	if err := newApp(os.Stdin, os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(in io.Reader, out, errOut io.Writer) *cli.App {
	logger := zerolog.Nop()

	return &cli.App{
		Name:      "lottoctl",
		Usage:     "Validate lotto ticket price, winning number and bonus number input",
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			cfg := config.LoadLoggerConfig()
			cfg.Level = c.String("log-level")
			cfg.Format = "console"
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger = config.NewLoggerTo(c.App.ErrWriter, cfg)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "check",
				Usage: "Validate a single input and print ok or the rejection code",
				Subcommands: []*cli.Command{
					{
						Name:      "price",
						Usage:     "Validate a ticket price",
						ArgsUsage: "<input>",
						Action: func(c *cli.Context) error {
							input, err := singleArg(c)
							if err != nil {
								return err
							}
							return report(c.App.Writer, logger, "price", input, lotto.ValidatePrice(input))
						},
					},
					{
						Name:      "winning",
						Usage:     "Validate six comma separated winning numbers",
						ArgsUsage: "<input>",
						Action: func(c *cli.Context) error {
							input, err := singleArg(c)
							if err != nil {
								return err
							}
							_, err = lotto.ValidateWinningNumbers(input)
							return report(c.App.Writer, logger, "winning_numbers", input, err)
						},
					},
					{
						Name:      "bonus",
						Usage:     "Validate a bonus number against the winning numbers",
						ArgsUsage: "<input>",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "winning",
								Aliases:  []string{"w"},
								Usage:    "Winning numbers, e.g. 1,2,3,4,5,6",
								Required: true,
							},
						},
						Action: func(c *cli.Context) error {
							input, err := singleArg(c)
							if err != nil {
								return err
							}
							winning, err := lotto.ValidateWinningNumbers(c.String("winning"))
							if err != nil {
								return fmt.Errorf("invalid --winning value: %w", err)
							}
							return report(c.App.Writer, logger, "bonus", input, lotto.ValidateBonus(input, winning))
						},
					},
				},
			},
			{
				Name:  "prompt",
				Usage: "Ask for price, winning numbers and bonus number until each is valid",
				Action: func(c *cli.Context) error {
					return newPrompter(c.App.Reader, c.App.Writer, logger).run()
				},
			},
		},
	}
}

func singleArg(c *cli.Context) (string, error) {
	if c.Args().Len() != 1 {
		return "", fmt.Errorf("expected exactly one input argument, got %d", c.Args().Len())
	}
	return c.Args().First(), nil
}

// report prints ok, or the rejection code and message.
func report(out io.Writer, logger zerolog.Logger, operation, input string, err error) error {
	if err == nil {
		fmt.Fprintln(out, "ok")
		return nil
	}

	code, _ := model.CodeOf(err)
	logger.Debug().Str("operation", operation).Str("input", input).Str("code", code).Msg("input rejected")
	fmt.Fprintf(out, "%s: %s\n", code, err)
	return errRejected
}
