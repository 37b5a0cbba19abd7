package arcade

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/casualarcade/arcade/engine"
)

// DefaultMaxTurns bounds a single self-play game.
const DefaultMaxTurns = 2000

// SelfPlayOptions configures a batch.
type SelfPlayOptions struct {
	Title      string
	Difficulty engine.Difficulty
	Seed       uint64 // game i uses Seed+i
	Games      int
	Workers    int
	MaxTurns   int // 0 means DefaultMaxTurns
	Log        logrus.FieldLogger
}

// GameResult is one finished self-play game.
type GameResult struct {
	Index   int
	Seed    uint64
	Outcome engine.Outcome
	Turns   int
	Status  string
}

// SelfPlayReport aggregates a batch.
type SelfPlayReport struct {
	Title      string
	Difficulty engine.Difficulty
	Games      []GameResult // in index order
	SideOne    int
	SideTwo    int
	Draws      int
	Unfinished int
	Turns      int
}

// SelfPlay plays opts.Games AI-against-AI games of a self-playable title
// on a bounded number of goroutines. Each game is independent and seeded,
// so a report is reproducible regardless of scheduling.
func SelfPlay(ctx context.Context, reg *Registry, opts SelfPlayOptions) (SelfPlayReport, error) {
	entry, err := reg.Lookup(opts.Title)
	if err != nil {
		return SelfPlayReport{}, err
	}
	if !entry.SelfPlay {
		return SelfPlayReport{}, fmt.Errorf("%w: %s cannot be played AI against AI", engine.ErrInvalidArgument, opts.Title)
	}
	if opts.Games < 1 {
		return SelfPlayReport{}, fmt.Errorf("%w: games must be positive", engine.ErrInvalidArgument)
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.MaxTurns <= 0 {
		opts.MaxTurns = DefaultMaxTurns
	}
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	log = log.WithFields(logrus.Fields{"game": opts.Title, "difficulty": opts.Difficulty})

	results := make([]GameResult, opts.Games)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := range results {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			seed := opts.Seed + uint64(i)
			res, err := playOne(gctx, entry.New(seed, opts.Difficulty), opts.MaxTurns)
			if err != nil {
				return err
			}
			res.Index, res.Seed = i, seed
			results[i] = res
			log.WithFields(logrus.Fields{"index": i, "seed": seed, "outcome": res.Outcome, "turns": res.Turns}).Debug("self-play game finished")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SelfPlayReport{}, err
	}
	if err := ctx.Err(); err != nil {
		return SelfPlayReport{}, err
	}

	rep := SelfPlayReport{Title: opts.Title, Difficulty: opts.Difficulty, Games: results}
	for _, r := range results {
		rep.Turns += r.Turns
		switch r.Outcome {
		case engine.WinSideOne:
			rep.SideOne++
		case engine.WinSideTwo:
			rep.SideTwo++
		case engine.Draw:
			rep.Draws++
		default:
			rep.Unfinished++
		}
	}
	log.WithFields(logrus.Fields{
		"games": len(results), "side_one": rep.SideOne, "side_two": rep.SideTwo, "draws": rep.Draws,
	}).Info("self-play finished")
	return rep, nil
}

func playOne(ctx context.Context, g Game, maxTurns int) (GameResult, error) {
	turns := 0
	for !g.IsOver() && turns < maxTurns {
		if err := ctx.Err(); err != nil {
			return GameResult{}, err
		}
		if !g.PerformAIMove() {
			break
		}
		turns++
	}
	return GameResult{Outcome: outcomeOf(g), Turns: turns, Status: g.Status()}, nil
}
