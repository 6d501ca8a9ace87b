package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kiryu-dev/boardgames/internal/adapters/ai"
	"github.com/kiryu-dev/boardgames/internal/config"
	"github.com/kiryu-dev/boardgames/internal/domain"
	"github.com/kiryu-dev/boardgames/internal/engine/connectfour"
	"github.com/kiryu-dev/boardgames/internal/engine/nim"
	"github.com/kiryu-dev/boardgames/internal/transport/terminal"
	"github.com/kiryu-dev/boardgames/internal/usecase/game"
	"github.com/kiryu-dev/boardgames/internal/usecase/session"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const computerName = "Computer"

func main() {
	cfgPath := flag.String("config", "./config.yml", "path to config")
	flag.Parse()
	cfg, err := config.New(*cfgPath)
	if err != nil {
		panic(err)
	}
	logger, err := newLogger(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("starting", zap.String("game", cfg.Game), zap.Int64("seed", seed))
	var (
		rng     = rand.New(rand.NewSource(seed))
		console = terminal.NewConsole(os.Stdin, os.Stdout, cfg.Color)
	)
	defer console.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	errGroup, ctx := errgroup.WithContext(ctx)
	errGroup.Go(func() error {
		select {
		case s := <-sigChan:
			return errors.Errorf("captured signal: %v", s)
		case <-ctx.Done():
			return nil
		}
	})
	var games domain.SessionUseCase
	errGroup.Go(func() error {
		defer cancel()
		players, err := newPlayers(ctx, cfg, console)
		if err != nil {
			return err
		}
		round, err := newRound(cfg, players, console, rng, logger)
		if err != nil {
			return err
		}
		games = session.New(round, players, terminal.NewReporter(console), logger)
		return games.Run(ctx)
	})
	if err := errGroup.Wait(); err != nil && !errors.Is(err, terminal.ErrInputClosed) {
		logger.Info("shutting down: " + err.Error())
	}
	if games != nil {
		logger.Info("session over", zap.Int64("games played", games.GamesPlayed()))
	}
}

func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, errors.WithMessage(err, "parse log level")
	}
	zapCfg.Level = level
	return zapCfg.Build()
}

func newPlayers(ctx context.Context, cfg config.Config, console *terminal.Console) ([2]*domain.Player, error) {
	var players [2]*domain.Player
	for i, p := range cfg.Players {
		id := domain.PlayerID(i + 1)
		name := p.Name
		if name == "" && p.AI != config.Human {
			name = computerName
		}
		if name == "" {
			var err error
			if name, err = console.AskName(ctx, id); err != nil {
				return players, err
			}
		}
		players[i] = domain.NewPlayer(id, name)
	}
	return players, nil
}

func newRound(cfg config.Config, players [2]*domain.Player, console *terminal.Console, rng *rand.Rand,
	logger *zap.Logger) (session.Round, error) {
	switch cfg.Game {
	case config.Nim:
		var seats session.NimSeats
		for i, p := range cfg.Players {
			seatLogger := logger.With(zap.String("player", players[i].Name()))
			switch p.AI {
			case config.OptimalStrategy:
				seats[i] = ai.NewNimOptimal(seatLogger)
			case config.RandomStrategy:
				seats[i] = ai.NewNimRandom(rng, seatLogger)
			default:
				seats[i] = terminal.NewNimPlayer(console, players[i].Name())
			}
		}
		return session.NimRound(game.New[*nim.Board, nim.Move](logger), cfg.Nim, seats,
			terminal.NewNimView(console)), nil
	case config.ConnectFour:
		var seats session.ConnectFourSeats
		for i, p := range cfg.Players {
			seatLogger := logger.With(zap.String("player", players[i].Name()))
			switch p.AI {
			case config.HeuristicStrategy:
				seats[i] = ai.NewConnectFourHeuristic(rng, seatLogger)
			case config.RotationStrategy:
				seats[i] = ai.NewConnectFourRotationAware(rng, seatLogger)
			default:
				seats[i] = terminal.NewConnectFourPlayer(console, players[i].Name())
			}
		}
		return session.ConnectFourRound(game.New[*connectfour.Board, connectfour.Move](logger), cfg.ConnectFour,
			seats, terminal.NewConnectFourView(console)), nil
	}
	return nil, errors.WithMessagef(domain.ErrInvalidConfig, "unknown game %q", cfg.Game)
}
