// Package console runs the interactive score calculator: it asks for a
// player name, captures each frame's rolls from a reader and prints scores
// as frames resolve.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/tenpin/internal/domain/frame"
	"github.com/KirkDiggler/tenpin/internal/domain/game"
	"github.com/KirkDiggler/tenpin/internal/domain/rules"
	bowlerr "github.com/KirkDiggler/tenpin/internal/errors"
	"github.com/KirkDiggler/tenpin/internal/services/scoring"
)

// DefaultQuitWord ends the session when typed instead of a player name
const DefaultQuitWord = "quit"

// Console drives one interactive game
type Console struct {
	service  scoring.Service
	scanner  *bufio.Scanner
	out      io.Writer
	quitWord string
}

// Config holds configuration for the console
type Config struct {
	Service  scoring.Service // Required
	In       io.Reader       // Required
	Out      io.Writer       // Required
	QuitWord string          // Optional, DefaultQuitWord if empty
}

// New creates a console
func New(cfg *Config) *Console {
	if cfg.Service == nil {
		panic("scoring service is required")
	}
	if cfg.In == nil || cfg.Out == nil {
		panic("input and output are required")
	}

	c := &Console{
		service:  cfg.Service,
		scanner:  bufio.NewScanner(cfg.In),
		out:      cfg.Out,
		quitWord: cfg.QuitWord,
	}
	if strings.TrimSpace(c.quitWord) == "" {
		c.quitWord = DefaultQuitWord
	}

	return c
}

// Run plays a single game. It returns nil when the player quits or the game
// completes; bad input aborts the game with an error.
func (c *Console) Run(ctx context.Context) error {
	c.println("*** Ten Pin Bowling Score Calculator ***")

	c.printf("Enter player name or %s to terminate: ", c.quitWord)
	name, err := c.readLine()
	if err != nil {
		return err
	}
	if strings.EqualFold(name, c.quitWord) {
		c.println("Ten Pin Bowling game terminated")
		return nil
	}

	g, err := c.service.StartGame(ctx, name)
	if err != nil {
		return err
	}

	for number := 1; number < rules.MaxFrames; number++ {
		f, err := c.captureDefaultFrame(number)
		if err != nil {
			return err
		}
		if err := c.record(ctx, g, f); err != nil {
			return err
		}
	}

	final, err := c.captureFinalFrame()
	if err != nil {
		return err
	}
	if err := c.record(ctx, g, final); err != nil {
		return err
	}

	if final.IsTurkey() {
		c.println("Nice, a TURKEY on the final frame!!!")
	}
	c.printf("%s's total score: %d\n", g.PlayerName(), g.Score())
	if g.IsPerfect() {
		c.println("Congratulations, you have bowled a PERFECT game!!!")
	}
	c.println("Ten Pin Bowling game complete")

	return nil
}

func (c *Console) record(ctx context.Context, g *game.Game, f *frame.Frame) error {
	if _, err := c.service.AddFrame(ctx, g.ID(), f); err != nil {
		return err
	}

	scored, err := c.service.UpdateScore(ctx, g.ID())
	if err != nil {
		return err
	}
	for _, s := range scored {
		c.printf("Scored frame for %s: %s\n", g.PlayerName(), s)
	}

	return nil
}

func (c *Console) captureDefaultFrame(number int) (*frame.Frame, error) {
	first, err := c.captureRoll("FIRST", number)
	if err != nil {
		return nil, err
	}
	if first == rules.MaxPins {
		return frame.Strike(), nil
	}

	second, err := c.captureRoll("SECOND", number)
	if err != nil {
		return nil, err
	}

	return frame.NewDefault(first, second)
}

func (c *Console) captureFinalFrame() (*frame.Frame, error) {
	first, err := c.captureRoll("FIRST", rules.MaxFrames)
	if err != nil {
		return nil, err
	}
	second, err := c.captureRoll("SECOND", rules.MaxFrames)
	if err != nil {
		return nil, err
	}

	bonus := 0
	if rules.HasEarnedBonus(first, second) {
		bonus, err = c.captureRoll("BONUS", rules.MaxFrames)
		if err != nil {
			return nil, err
		}
	}

	return frame.NewFinal(first, second, bonus)
}

func (c *Console) captureRoll(attempt string, number int) (int, error) {
	c.printf("Enter pins knocked down for %s attempt of frame #%d: ", attempt, number)

	line, err := c.readLine()
	if err != nil {
		return 0, err
	}

	pins, err := strconv.Atoi(line)
	if err != nil {
		return 0, bowlerr.InvalidArgumentf("%q is not a number of pins", line)
	}
	if err := rules.ValidatePins(pins); err != nil {
		return 0, err
	}

	return pins, nil
}

func (c *Console) readLine() (string, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(c.scanner.Text()), nil
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(line string) {
	fmt.Fprintln(c.out, line)
}
