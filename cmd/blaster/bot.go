package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/math-blaster/internal/arith"
	"github.com/vovakirdan/math-blaster/internal/game"
)

var (
	flagDuration   time.Duration
	flagAccuracy   float64
	flagBotName    string
	flagThinkDelay time.Duration
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run a headless game played by a bot",
	Long: `Run a game without a UI. A bot answers the problem closest to the floor
at a fixed pace, getting it right with the given accuracy. Notices and the
final result are logged to stderr.

The saved player name is not touched.

Examples:
  blaster bot
  blaster bot --duration 1m --accuracy 0.6
  blaster bot --digits 2 --ops +,- --think 400ms --seed 7`,
	Args: cobra.NoArgs,
	Run:  runBot,
}

func init() {
	addSettingsFlags(botCmd)
	botCmd.Flags().DurationVar(&flagDuration, "duration", 30*time.Second, "Stop the game after this long")
	botCmd.Flags().Float64Var(&flagAccuracy, "accuracy", 0.9, "Probability of a correct answer (0-1)")
	botCmd.Flags().StringVar(&flagBotName, "name", "Bot", "Player name used by the bot")
	botCmd.Flags().DurationVar(&flagThinkDelay, "think", 700*time.Millisecond, "Delay between answers")
}

func runBot(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagAccuracy < 0 || flagAccuracy > 1 {
		fmt.Fprintln(os.Stderr, "Error: --accuracy must be between 0 and 1")
		os.Exit(1)
	}

	logger, closeLog, err := openLog(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session := game.NewSession(game.Options{
		Config:   cfg,
		Notifier: game.LogNotifier{Logger: logger},
		Logger:   logger,
		Seed:     seed,
	})
	if err := session.SetPlayerName(flagBotName); err != nil {
		logger.Error("invalid bot name", "error", err)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, flagDuration)
	defer cancel()

	bot := &answerBot{
		session:  session,
		rng:      rand.New(rand.NewSource(seed + 1)),
		accuracy: flagAccuracy,
		think:    flagThinkDelay,
	}

	g, gctx := errgroup.WithContext(ctx)
	done := make(chan struct{})
	g.Go(func() error {
		defer close(done)
		return game.NewDriver(session, flagFPS).Run(gctx)
	})
	g.Go(func() error {
		bot.play(gctx, done)
		return nil
	})

	err = g.Wait()
	if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
		logger.Error("bot run failed", "error", err)
	}

	st := session.State()
	logger.Info("bot finished",
		"score", st.Score,
		"lives", st.Lives,
		"answers", bot.answers,
		"correct", bot.correct,
	)
}

// answerBot submits answers to a running session.
type answerBot struct {
	session  *game.Session
	rng      *rand.Rand
	accuracy float64
	think    time.Duration

	answers int
	correct int
}

// play answers once per think interval until ctx is done or the game
// driver signals done.
func (b *answerBot) play(ctx context.Context, done <-chan struct{}) {
	ticker := time.NewTicker(b.think)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			return
		case <-ticker.C:
			input, ok := pickAnswer(b.session.State().Problems, b.rng, b.accuracy)
			if !ok {
				continue
			}
			b.answers++
			if b.session.Submit(input).Matched() {
				b.correct++
			}
		}
	}
}

// pickAnswer targets the problem closest to the floor. With probability
// 1-accuracy it answers off by one instead. ok is false when there is
// nothing to answer.
func pickAnswer(problems []arith.Problem, rng *rand.Rand, accuracy float64) (string, bool) {
	if len(problems) == 0 {
		return "", false
	}
	target := problems[0]
	for _, p := range problems[1:] {
		if p.Y > target.Y {
			target = p
		}
	}

	answer := target.Answer
	if rng.Float64() >= accuracy {
		answer++
	}
	return strconv.Itoa(answer), true
}
