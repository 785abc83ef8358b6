package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/namsral/flag"

	"github.com/KirkDiggler/tenpin/internal/bowler"
	"github.com/KirkDiggler/tenpin/internal/config"
	"github.com/KirkDiggler/tenpin/internal/console"
	"github.com/KirkDiggler/tenpin/internal/domain/game"
	"github.com/KirkDiggler/tenpin/internal/events"
	"github.com/KirkDiggler/tenpin/internal/services"
	"github.com/KirkDiggler/tenpin/internal/services/scoring"
)

const envPrefix = "TENPIN"

type options struct {
	player   string
	rolls    string
	simulate bool
	seed     int64
	skill    float64
	verbose  bool
	quitWord string
	files    []string
}

func main() {
	// Load .env file
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	opts, err := parseFlags(cfg, os.Args[0], os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, opts, os.Stdin, os.Stdout))
}

// parseFlags reads command line flags. Flags can also be set from the
// environment as TENPIN_<NAME>, the same namespace the config uses.
func parseFlags(cfg *config.Config, name string, args []string) (*options, error) {
	fs := flag.NewFlagSetWithEnvPrefix(name, envPrefix, flag.ContinueOnError)

	var (
		player   = fs.String("player", cfg.Game.DefaultPlayer, "Player name for -rolls and -simulate")
		rolls    = fs.String("rolls", "", "Comma separated rolls to score, e.g. 10,7,3,9,0")
		simulate = fs.Bool("simulate", false, "Let a random bowler play one game")
		seed     = fs.Int64("seed", cfg.Simulate.Seed, "Seed for -simulate, 0 picks one from the clock")
		skill    = fs.Float64("skill", cfg.Simulate.Skill, "Chance the simulated bowler clears the rack")
		verbose  = fs.Bool("verbose", cfg.Console.Verbose, "Log every game event")
	)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &options{
		player:   *player,
		rolls:    *rolls,
		simulate: *simulate,
		seed:     *seed,
		skill:    *skill,
		verbose:  *verbose,
		quitWord: cfg.Console.QuitWord,
		files:    fs.Args(),
	}, nil
}

// run executes one mode and returns the process exit code
func run(ctx context.Context, opts *options, in io.Reader, out io.Writer) int {
	provider := services.NewProvider(&services.ProviderConfig{})
	if opts.verbose {
		provider.Bus.SubscribeAll(&events.ListenerFunc{
			Name:  "logger",
			Order: 100,
			Fn: func(e events.Event) error {
				log.Printf("Event: %s", events.Describe(e))
				return nil
			},
		})
	}

	if err := dispatch(ctx, provider.ScoringService, opts, in, out); err != nil {
		log.Printf("Error: %v", err)
		return 1
	}
	return 0
}

func dispatch(ctx context.Context, svc scoring.Service, opts *options, in io.Reader, out io.Writer) error {
	switch {
	case len(opts.files) > 0:
		return scoreFiles(ctx, svc, opts.files, out)

	case opts.rolls != "":
		rolls, err := parseRolls(opts.rolls)
		if err != nil {
			return err
		}
		g, err := svc.ScoreRolls(ctx, &scoring.ScoreRollsInput{PlayerName: opts.player, Rolls: rolls})
		if err != nil {
			return err
		}
		printGame(out, g)
		return nil

	case opts.simulate:
		seed := opts.seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		log.Printf("Simulating a game for %s with seed %d", opts.player, seed)

		g, err := svc.Simulate(ctx, opts.player, bowler.NewRandomBowler(seed, opts.skill))
		if err != nil {
			return err
		}
		printGame(out, g)
		return nil

	default:
		return console.New(&console.Config{
			Service:  svc,
			In:       in,
			Out:      out,
			QuitWord: opts.quitWord,
		}).Run(ctx)
	}
}

func scoreFiles(ctx context.Context, svc scoring.Service, paths []string, out io.Writer) error {
	inputs := make([]*scoring.ScoreRollsInput, 0, len(paths))
	for _, path := range paths {
		input, err := loadRollFile(path)
		if err != nil {
			return err
		}
		inputs = append(inputs, input)
	}

	results, err := svc.ScoreBatch(ctx, inputs)
	if err != nil {
		return err
	}

	for _, g := range results {
		status := "complete"
		if !g.IsOver() {
			status = fmt.Sprintf("after %d frames", g.FrameCount())
		}
		fmt.Fprintf(out, "%s: %d (%s)\n", g.PlayerName(), g.Score(), status)
	}
	return nil
}

func printGame(out io.Writer, g *game.Game) {
	for i, f := range g.Frames() {
		fmt.Fprintf(out, "Frame %d: %s\n", i+1, f)
	}
	if pending := g.PendingRolls(); len(pending) > 0 {
		fmt.Fprintf(out, "Pending rolls: %v\n", pending)
	}

	frames := g.Frames()
	if g.IsOver() && frames[len(frames)-1].IsTurkey() {
		fmt.Fprintln(out, "Nice, a TURKEY on the final frame!!!")
	}
	fmt.Fprintf(out, "%s's total score: %d\n", g.PlayerName(), g.Score())
	if g.IsPerfect() {
		fmt.Fprintln(out, "Congratulations, you have bowled a PERFECT game!!!")
	}
}
