// Command jungle plays and inspects games of Jungle (Dou Shou Qi) from the
// terminal.
//
// Commands:
//  1. "play" (default) – starts a session and reads moves from stdin
//  2. "show" – prints a setup or an encoded position with its status
//  3. "moves" – lists the legal moves of the side to move
//  4. "setups" – lists the starting setups in the setups directory
//
// Settings come from .env, an optional config file and JUNGLE_* environment
// variables; command line flags override all of them.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wricardo/jungle-game/game/config"
	"github.com/wricardo/jungle-game/game/engine"
	"github.com/wricardo/jungle-game/game/service"
	"github.com/wricardo/jungle-game/game/session"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Jungle"
)

func main() {
	if err := newApp(os.Stdin, os.Stdout).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", AppName, err)
		os.Exit(1)
	}
}

// newApp builds the command tree. in and out replace stdin and stdout so the
// commands can be driven from tests.
func newApp(in io.Reader, out io.Writer) *cli.Command {
	play := func(ctx context.Context, cmd *cli.Command) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		log, err := newLogger(settings.LogLevel)
		if err != nil {
			return err
		}
		defer log.Sync()

		svc, _, err := initializeServices(settings, log)
		if err != nil {
			return fmt.Errorf("failed to initialize services: %w", err)
		}
		return runGameLoop(ctx, svc, cmd.String("setup"), in, out)
	}

	return &cli.Command{
		Name:    "jungle",
		Usage:   "play and inspect Jungle (Dou Shou Qi) games",
		Version: Version,
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "env-file", Value: ".env", Usage: "dotenv file loaded before reading settings"},
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "optional settings file (yaml, json or toml)"},
			&cli.StringFlag{Name: "setups-dir", Usage: "directory holding setup JSON files"},
			&cli.StringFlag{Name: "setup", Aliases: []string{"s"}, Usage: "setup to start from"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
			&cli.StringFlag{Name: "first", Usage: "side to move first in the classic setup (red or black)"},
		},
		Action: play,
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "play a game, reading \"fromRow fromCol toRow toCol\" lines from stdin",
				Action: play,
			},
			{
				Name:      "show",
				Usage:     "print a setup or position",
				ArgsUsage: "[position]",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					b, err := resolveBoard(cmd)
					if err != nil {
						return err
					}
					printBoard(out, b.Grid())
					fmt.Fprintf(out, "position: %s\n", b.Encode())
					fmt.Fprintf(out, "pieces: red %d, black %d\n", b.CountPieces(engine.Red), b.CountPieces(engine.Black))
					if w := b.Winner(); w != engine.SideNone {
						fmt.Fprintf(out, "%s has won\n", w)
					} else {
						fmt.Fprintf(out, "%s to move\n", b.Turn())
					}
					return nil
				},
			},
			{
				Name:      "moves",
				Usage:     "list the legal moves of the side to move",
				ArgsUsage: "[position]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "from", Usage: "only moves of the piece on \"row,col\""},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					b, err := resolveBoard(cmd)
					if err != nil {
						return err
					}
					var moves []engine.Move
					if from := cmd.String("from"); from != "" {
						p, err := parsePosition(from)
						if err != nil {
							return err
						}
						if b.SideAt(p.Row, p.Col) == b.Turn() {
							moves = b.LegalMovesFrom(p.Row, p.Col)
						}
					} else if !b.IsTerminal() {
						moves = b.LegalMoves(b.Turn())
					}
					printMoves(out, b, moves)
					return nil
				},
			},
			{
				Name:  "setups",
				Usage: "list the available setups",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					settings, err := loadSettings(cmd)
					if err != nil {
						return err
					}
					_, setups, err := initializeServices(settings, zap.NewNop().Sugar())
					if err != nil {
						return err
					}
					infos, err := setups.ListSetups()
					if err != nil {
						return err
					}
					for _, info := range infos {
						fmt.Fprintf(out, "%-16s red %2d  black %2d  %s\n", info.SetupID, info.RedPieces, info.BlackPieces, info.Description)
					}
					return nil
				},
			},
		},
	}
}

// loadSettings reads settings and applies flag overrides
func loadSettings(cmd *cli.Command) (*config.Settings, error) {
	settings, err := config.LoadSettings(cmd.String("env-file"), cmd.String("config"))
	if err != nil {
		return nil, err
	}
	if v := cmd.String("setups-dir"); v != "" {
		settings.SetupsDir = v
	}
	if v := cmd.String("setup"); v != "" {
		settings.DefaultSetup = v
	}
	if v := cmd.String("log-level"); v != "" {
		settings.LogLevel = v
	}
	if v := cmd.String("first"); v != "" {
		settings.FirstSide = v
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// newLogger builds a production zap logger at the given level
func newLogger(level string) (*zap.SugaredLogger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger.Sugar(), nil
}

// initializeServices wires the setup catalogue, the session registry and the
// game service together
func initializeServices(settings *config.Settings, log *zap.SugaredLogger) (service.GameService, *config.Manager, error) {
	setups, err := config.NewManager(settings.SetupsDir,
		config.WithDefaultSetup(settings.DefaultSetup),
		config.WithFirstSide(settings.FirstSide),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create setup manager: %w", err)
	}

	sessions := session.NewManager()
	svc := service.NewGameService(sessions, setups, log, service.WithSessionTTL(settings.SessionTTL))
	log.Infow("services initialized", "setups_dir", settings.SetupsDir, "default_setup", setups.GetDefault().Name)
	return svc, setups, nil
}

// resolveBoard decodes the position given as arguments, or loads the setup
// named by --setup (the default setup when unset)
func resolveBoard(cmd *cli.Command) (*engine.Board, error) {
	if cmd.Args().Len() > 0 {
		b, err := engine.DecodeBoard(strings.Join(cmd.Args().Slice(), " "))
		if err != nil {
			return nil, err
		}
		if err := engine.ValidateBoard(b); err != nil {
			return nil, err
		}
		return b, nil
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return nil, err
	}
	_, setups, err := initializeServices(settings, zap.NewNop().Sugar())
	if err != nil {
		return nil, err
	}
	setup, err := setups.LoadSetup(settings.DefaultSetup)
	if err != nil {
		return nil, err
	}
	return setup.Board()
}

const helpText = `commands:
  <fromRow> <fromCol> <toRow> <toCol>   move a piece
  moves [row col]                       list legal moves
  undo                                  take back the last move
  history                               list the moves played
  reset                                 start over
  quit                                  leave the game`

// runGameLoop plays one session, reading commands from in until the game is
// decided, the player quits or in is exhausted
func runGameLoop(ctx context.Context, svc service.GameService, setupName string, in io.Reader, out io.Writer) error {
	info, err := svc.CreateSession(ctx, setupName)
	if err != nil {
		return err
	}
	defer svc.DeleteSession(ctx, info.ID)

	fmt.Fprintf(out, "%s v%s, setup %s, session %s\n", AppName, Version, info.SetupName, info.ID)
	fmt.Fprintln(out, helpText)
	printBoard(out, info.Board)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "%s> ", info.Turn)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "quit", "exit", "q":
			fmt.Fprintln(out, "bye")
			return nil

		case "help", "?":
			fmt.Fprintln(out, helpText)

		case "moves":
			var from *engine.Position
			if len(fields) == 3 {
				p, err := parseInts(fields[1:])
				if err != nil {
					fmt.Fprintf(out, "bad square: %v\n", err)
					continue
				}
				from = &engine.Position{Row: p[0], Col: p[1]}
			}
			moves, err := svc.LegalMoves(ctx, info.ID, from)
			if err != nil {
				return err
			}
			for _, m := range moves {
				fmt.Fprintf(out, "  %d %d %d %d\n", m.From.Row, m.From.Col, m.To.Row, m.To.Col)
			}
			fmt.Fprintf(out, "%d moves\n", len(moves))

		case "undo":
			res, err := svc.Undo(ctx, info.ID)
			if err != nil {
				return err
			}
			info = res.Session
			if !res.Success {
				fmt.Fprintf(out, "cannot undo: %s\n", res.Message)
				continue
			}
			fmt.Fprintln(out, res.Message)
			printBoard(out, info.Board)

		case "history":
			hist, err := svc.GetMoveHistory(ctx, info.ID, service.HistoryOptions{Order: "asc", Limit: 100})
			if err != nil {
				return err
			}
			for _, entry := range hist.Moves {
				fmt.Fprintf(out, "  %3d. %s %s\n", entry.MoveNumber, entry.Piece, entry.Move)
			}

		case "reset":
			if info, err = svc.Reset(ctx, info.ID); err != nil {
				return err
			}
			printBoard(out, info.Board)

		default:
			coords, err := parseInts(fields)
			if err != nil || len(coords) != 4 {
				fmt.Fprintln(out, "expected: fromRow fromCol toRow toCol (or \"help\")")
				continue
			}
			res, err := svc.Move(ctx, info.ID, service.MoveRequest{
				From: engine.Position{Row: coords[0], Col: coords[1]},
				To:   engine.Position{Row: coords[2], Col: coords[3]},
			})
			if err != nil {
				return err
			}
			info = res.Session
			if !res.Success {
				fmt.Fprintf(out, "illegal move: %s\n", res.Message)
				continue
			}
			for _, ev := range res.Events {
				fmt.Fprintln(out, ev.Message)
			}
			printBoard(out, info.Board)
			if res.GameOver {
				fmt.Fprintf(out, "game over: %s wins after %d moves\n", res.Winner, info.MoveCount)
				return nil
			}
		}
	}
}

func printBoard(out io.Writer, grid []string) {
	for _, line := range grid {
		fmt.Fprintln(out, line)
	}
}

func printMoves(out io.Writer, b *engine.Board, moves []engine.Move) {
	for _, m := range moves {
		label := ""
		if target := b.PieceAt(m.To.Row, m.To.Col); !target.IsZero() {
			label = " takes " + target.String()
		}
		fmt.Fprintf(out, "%s %s%s\n", b.PieceAt(m.From.Row, m.From.Col), m, label)
	}
	fmt.Fprintf(out, "%d moves for %s\n", len(moves), b.Turn())
}

// parsePosition reads "row,col"
func parsePosition(s string) (engine.Position, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return engine.Position{}, fmt.Errorf("position %q: want row,col", s)
	}
	p, err := parseInts(parts)
	if err != nil {
		return engine.Position{}, fmt.Errorf("position %q: %w", s, err)
	}
	return engine.Position{Row: p[0], Col: p[1]}, nil
}

func parseInts(fields []string) ([]int, error) {
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, errors.New("not a number: " + f)
		}
		out = append(out, n)
	}
	return out, nil
}
