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
	"github.com/ttacon/chalk"
	"github.com/urfave/cli"

	"robotarena-sim/internal/scenario"
	"robotarena-sim/internal/simulation"
	"robotarena-sim/internal/storage"
)

const envFile = ".env"

func main() {
	loadEnv()

	app := makeapp()
	if err := app.Run(os.Args); err != nil {
		failWith(err)
	}
}

// loadEnv picks up ROBOTSIM_* defaults from a local .env file when there is one.
func loadEnv() {
	if _, err := os.Stat(envFile); err != nil {
		return
	}
	if err := godotenv.Load(envFile); err != nil {
		warnWith(fmt.Errorf("could not load %s: %w", envFile, err))
	}
}

func warnWith(err error) {
	fmt.Print(chalk.Yellow)
	fmt.Print("warning: ", err.Error(), chalk.Reset)
	fmt.Println("")
}

func failWith(err error) {
	fmt.Print(chalk.Red)
	fmt.Print("error: ", err.Error(), chalk.Reset)
	fmt.Println("")
	os.Exit(1)
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Name = "robotsim"
	app.Usage = "Headless robot arena simulator"
	app.Description = "Runs robots, chasers, beam, bump and smart agents among obstacles in a rectangular arena"

	app.Commands = []cli.Command{
		{
			Name:    "run",
			Aliases: []string{"r"},
			Usage:   "Populate an arena and run the simulation",
			Flags: []cli.Flag{
				cli.Float64Flag{Name: "width", Value: scenario.DefaultWidth, Usage: "Arena width", EnvVar: "ROBOTSIM_WIDTH"},
				cli.Float64Flag{Name: "height", Value: scenario.DefaultHeight, Usage: "Arena height", EnvVar: "ROBOTSIM_HEIGHT"},
				cli.IntFlag{Name: "robots", Value: 3, Usage: "Number of basic robots", EnvVar: "ROBOTSIM_ROBOTS"},
				cli.IntFlag{Name: "chasers", Value: 1, Usage: "Number of chaser robots", EnvVar: "ROBOTSIM_CHASERS"},
				cli.IntFlag{Name: "beams", Value: 1, Usage: "Number of beam robots", EnvVar: "ROBOTSIM_BEAMS"},
				cli.IntFlag{Name: "bumps", Value: 1, Usage: "Number of bump robots", EnvVar: "ROBOTSIM_BUMPS"},
				cli.IntFlag{Name: "smarts", Value: 1, Usage: "Number of smart robots", EnvVar: "ROBOTSIM_SMARTS"},
				cli.IntFlag{Name: "obstacles", Value: 8, Usage: "Number of obstacles", EnvVar: "ROBOTSIM_OBSTACLES"},
				cli.IntFlag{Name: "ticks", Value: 300, Usage: "Ticks to run; 0 runs until interrupted", EnvVar: "ROBOTSIM_TICKS"},
				cli.IntFlag{Name: "tps", Value: 60, Usage: "Ticks per second; 0 runs as fast as possible", EnvVar: "ROBOTSIM_TPS"},
				cli.Int64Flag{Name: "seed", Usage: "Random seed; defaults to the current time", EnvVar: "ROBOTSIM_SEED"},
				cli.Float64Flag{Name: "speed", Value: 1, Usage: "Simulation speed multiplier", EnvVar: "ROBOTSIM_SPEED"},
				cli.IntFlag{Name: "report-every", Value: 100, Usage: "Print the arena state every N ticks; 0 disables", EnvVar: "ROBOTSIM_REPORT_EVERY"},
				cli.StringFlag{Name: "scenario", Usage: "YAML scenario describing the starting arena", EnvVar: "ROBOTSIM_SCENARIO"},
				cli.StringFlag{Name: "load", Usage: "Snapshot file to start from", EnvVar: "ROBOTSIM_LOAD"},
				cli.StringFlag{Name: "save", Usage: "Snapshot file written when the run ends", EnvVar: "ROBOTSIM_SAVE"},
				cli.BoolFlag{Name: "debug", Usage: "Enable debug logging", EnvVar: "ROBOTSIM_DEBUG"},
			},
			Action: runAction,
		},
		{
			Name:      "inspect",
			Aliases:   []string{"i"},
			Usage:     "Print the contents of a snapshot file",
			ArgsUsage: "<snapshot>",
			Flags: []cli.Flag{
				cli.BoolFlag{Name: "debug", Usage: "Enable debug logging", EnvVar: "ROBOTSIM_DEBUG"},
			},
			Action: inspectAction,
		},
	}

	return app
}

func newLogger(debug bool) *log.Logger {
	if !debug {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "", log.LstdFlags)
}

func runAction(c *cli.Context) error {
	logger := newLogger(c.Bool("debug"))
	store := storage.NewTextStore(logger)

	seed := time.Now().UnixNano()
	if c.IsSet("seed") {
		seed = c.Int64("seed")
	}
	opts := []simulation.Option{simulation.WithSeed(seed), simulation.WithLogger(logger)}

	ticks := c.Int("ticks")
	var (
		arena *simulation.Arena
		err   error
	)
	if path := c.String("scenario"); path != "" {
		sc, err := scenario.Load(path)
		if err != nil {
			return err
		}
		if arena, err = sc.Build(opts...); err != nil {
			return err
		}
		if sc.Ticks > 0 && !c.IsSet("ticks") {
			ticks = sc.Ticks
		}
	} else {
		arena, err = populate(c, opts)
		if err != nil {
			return err
		}
	}

	if path := c.String("load"); path != "" {
		skipped, err := store.LoadArena(path, arena)
		if err != nil {
			return err
		}
		for _, e := range skipped {
			warnWith(e)
		}
	}

	if c.IsSet("speed") || c.String("scenario") == "" {
		if err := arena.UpdateSimulationSpeed(c.Float64("speed")); err != nil {
			return err
		}
	}

	fmt.Print("Arena ")
	fmt.Print(chalk.Cyan, arena.ID(), chalk.Reset)
	fmt.Printf(" %.0fx%.0f with %d items, seed %d\n", arena.Width(), arena.Height(), arena.Len(), seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := &runner{arena: arena, ticks: ticks, tps: c.Int("tps"), reportEvery: c.Int("report-every"), out: os.Stdout}
	if err := r.run(ctx); err != nil {
		warnWith(err)
	}

	fmt.Print(chalk.Green, "Finished", chalk.Reset)
	fmt.Printf(" after %d ticks\n", arena.Ticks())
	fmt.Print(arena.Status())

	if path := c.String("save"); path != "" {
		if err := store.SaveArena(path, arena); err != nil {
			return err
		}
		fmt.Print("Snapshot saved to ")
		fmt.Print(chalk.Yellow, path, chalk.Reset)
		fmt.Println("")
	}
	return nil
}

func populate(c *cli.Context, opts []simulation.Option) (*simulation.Arena, error) {
	arena, err := simulation.NewArena(c.Float64("width"), c.Float64("height"), opts...)
	if err != nil {
		return nil, err
	}
	counts := map[simulation.Kind]int{
		simulation.KindRobot:    c.Int("robots"),
		simulation.KindChaser:   c.Int("chasers"),
		simulation.KindBeam:     c.Int("beams"),
		simulation.KindBump:     c.Int("bumps"),
		simulation.KindSmart:    c.Int("smarts"),
		simulation.KindObstacle: c.Int("obstacles"),
	}
	for _, kind := range simulation.Kinds() {
		for i := 0; i < counts[kind]; i++ {
			if _, err := arena.AddItem(kind); err != nil {
				return nil, err
			}
		}
	}
	return arena, nil
}

func inspectAction(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("inspect: snapshot path is required")
	}

	store := storage.NewTextStore(newLogger(c.Bool("debug")))
	// any valid size works; Load replaces it
	arena, err := simulation.NewArena(1, 1)
	if err != nil {
		return err
	}
	skipped, err := store.LoadArena(path, arena)
	if err != nil {
		return err
	}
	for _, e := range skipped {
		warnWith(e)
	}

	arena.PrintState(os.Stdout)
	return nil
}
