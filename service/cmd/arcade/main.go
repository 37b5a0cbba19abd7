// arcade lists the available games, runs AI self-play batches and plays
// demo games in the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/casualarcade/arcade/engine"
	"github.com/casualarcade/arcade/service/internal/arcade"
	"github.com/casualarcade/arcade/service/internal/config"
)

var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log := logrus.New()
	log.SetLevel(cfg.LogLevel)
	log.SetOutput(os.Stderr)
	engine.SetLogger(log)

	err = run(ctx, os.Args[1:], cfg, log, os.Stdout)
	switch {
	case errors.Is(err, errUsage):
		usage(os.Stderr)
		os.Exit(2)
	case err != nil:
		log.WithError(err).Error("arcade failed")
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprint(w, `usage: arcade <command> [flags]

commands:
  list                         list games
  selfplay -game T [-n N] [-difficulty D] [-workers W] [-seed S]
                               play N AI-vs-AI games of a board title
  demo -game T [-difficulty D] [-seed S] [-max N]
                               watch one game with an autopilot in the player's seat
`)
}

func run(ctx context.Context, args []string, cfg config.Config, log logrus.FieldLogger, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	reg := arcade.DefaultRegistry()
	p := newPrinter(out)
	switch args[0] {
	case "list":
		return listCmd(reg, p)
	case "selfplay":
		return selfPlayCmd(ctx, args[1:], reg, cfg, log, p)
	case "demo":
		return demoCmd(ctx, args[1:], reg, cfg, log, p)
	case "help", "-h", "--help":
		usage(out)
		return nil
	}
	return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
}

// difficultyFlag lets flag parse an engine.Difficulty directly.
type difficultyFlag struct{ d *engine.Difficulty }

func (f difficultyFlag) String() string {
	if f.d == nil {
		return ""
	}
	return f.d.String()
}

func (f difficultyFlag) Set(s string) error {
	d, err := engine.ParseDifficulty(s)
	if err != nil {
		return err
	}
	*f.d = d
	return nil
}
