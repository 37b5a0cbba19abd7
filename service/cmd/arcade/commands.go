package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/casualarcade/arcade/engine"
	"github.com/casualarcade/arcade/engine/dice"
	"github.com/casualarcade/arcade/engine/holdem"
	"github.com/casualarcade/arcade/engine/president"
	"github.com/casualarcade/arcade/engine/rummy"
	"github.com/casualarcade/arcade/engine/sorter"
	"github.com/casualarcade/arcade/service/internal/arcade"
	"github.com/casualarcade/arcade/service/internal/config"
)

func listCmd(reg *arcade.Registry, p *printer) error {
	var kind arcade.Kind
	for _, e := range reg.Entries() {
		if e.Kind != kind {
			kind = e.Kind
			p.heading(string(kind))
		}
		note := ""
		if e.SelfPlay {
			note = p.dim(" (selfplay)")
		}
		p.line("  %s%s", e.Title, note)
	}
	return nil
}

func selfPlayCmd(ctx context.Context, args []string, reg *arcade.Registry, cfg config.Config, log logrus.FieldLogger, p *printer) error {
	fs := flag.NewFlagSet("selfplay", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts := arcade.SelfPlayOptions{Difficulty: cfg.Difficulty, Log: log}
	fs.StringVar(&opts.Title, "game", "", "title to play")
	fs.IntVar(&opts.Games, "n", cfg.Games, "number of games")
	fs.IntVar(&opts.Workers, "workers", cfg.Workers, "parallel games")
	fs.Uint64Var(&opts.Seed, "seed", cfg.Seed, "seed of the first game")
	fs.IntVar(&opts.MaxTurns, "max", arcade.DefaultMaxTurns, "turn limit per game")
	fs.Var(difficultyFlag{&opts.Difficulty}, "difficulty", "easy, normal or hard")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if opts.Title == "" {
		return fmt.Errorf("%w: -game is required", errUsage)
	}

	start := time.Now()
	rep, err := arcade.SelfPlay(ctx, reg, opts)
	if err != nil {
		return err
	}
	p.heading(fmt.Sprintf("%s self-play, %d games at %s", rep.Title, len(rep.Games), rep.Difficulty))
	for _, g := range rep.Games {
		p.line("  #%-3d seed %-6d %4d turns  %s", g.Index, g.Seed, g.Turns, p.outcome(g.Outcome, g.Status))
	}
	p.line("side one %s  side two %s  draws %s  unfinished %d  (%s)",
		p.good(fmt.Sprint(rep.SideOne)), p.bad(fmt.Sprint(rep.SideTwo)), p.warn(fmt.Sprint(rep.Draws)),
		rep.Unfinished, time.Since(start).Round(time.Millisecond))
	return nil
}

func demoCmd(ctx context.Context, args []string, reg *arcade.Registry, cfg config.Config, log logrus.FieldLogger, p *printer) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var title string
	d := cfg.Difficulty
	seed := cfg.Seed
	maxTurns := 500
	delay := cfg.AIDelay
	fs.StringVar(&title, "game", "", "title to play")
	fs.Uint64Var(&seed, "seed", seed, "seed")
	fs.IntVar(&maxTurns, "max", maxTurns, "turn limit")
	fs.DurationVar(&delay, "delay", delay, "pause between turns")
	fs.Var(difficultyFlag{&d}, "difficulty", "easy, normal or hard")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if title == "" {
		return fmt.Errorf("%w: -game is required", errUsage)
	}

	// Turns are paced here, so the session never schedules AI moves itself.
	hostCfg := cfg
	hostCfg.AIDelay = -1
	host := arcade.NewHost(reg, hostCfg, log)
	defer host.Close()
	done := make(chan engine.Outcome, 1)
	host.OnGameEnd = func(_ uuid.UUID, _ string, o engine.Outcome, _ string) { done <- o }

	s, err := host.Create(title, seed, d)
	if err != nil {
		return err
	}
	s.Subscribe(arcade.ListenerFunc(func(ev arcade.Event) {
		who := "you"
		if ev.Type == arcade.EventAIMove {
			who = "cpu"
		}
		if ev.Type == arcade.EventAction || ev.Type == arcade.EventAIMove {
			p.line("%4d %s  %s", ev.Index, p.dim(who), ev.Status)
		}
	}))
	p.heading(fmt.Sprintf("%s demo at %s, seed %d", title, d, seed))
	p.line("     %s", s.Status())

	for turn := 0; turn < maxTurns; turn++ {
		select {
		case o := <-done:
			p.line("%s", p.outcome(o, s.Status()))
			return nil
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		if s.StepAI() {
			continue
		}
		if err := s.Do(autopilot); err != nil {
			if errors.Is(err, errStuck) {
				break
			}
			return err
		}
	}
	select {
	case o := <-done:
		p.line("%s", p.outcome(o, s.Status()))
	default:
		p.line("%s after %d turns: %s", p.warn("stopped"), maxTurns, s.Status())
	}
	return nil
}

var errStuck = errors.New("autopilot has no move")

// autopilot takes the player's turn. Most engines expose a policy through
// PerformAIMove that plays whichever seat is to move; the rest need a
// nudge between rounds or a simple rule of their own.
func autopilot(g arcade.Game) error {
	switch v := g.(type) {
	case *dice.Game:
		if v.TurnTotal() >= dice.NormalHold {
			return v.Hold()
		}
		_, err := v.Roll()
		return err
	case *sorter.Game:
		v.Tick(250 * time.Millisecond)
		v.PerformAIMove()
		return nil
	case *rummy.Game:
		if v.Phase() == rummy.PhaseRoundOver {
			return v.NewRound()
		}
	case *president.Game:
		if v.Phase() == president.PhaseRoundOver {
			return v.NewRound()
		}
	case *holdem.Table:
		if v.Street() == holdem.HandOver {
			return v.NewHand()
		}
	}
	if !g.PerformAIMove() {
		return errStuck
	}
	return nil
}
