package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/alecthomas/kong"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Chlorophytus/rayfly/internal/audio"
	"github.com/Chlorophytus/rayfly/internal/gfx"
	"github.com/Chlorophytus/rayfly/internal/sim"
	"github.com/Chlorophytus/rayfly/internal/terrain"
	"github.com/Chlorophytus/rayfly/internal/version"
)

var CLI struct {
	Width         int    `help:"Window width in pixels." default:"1280" env:"RAYFLY_WIDTH"`
	Height        int    `help:"Window height in pixels." default:"720" env:"RAYFLY_HEIGHT"`
	FPS           int    `name:"fps" help:"Frame rate cap." default:"60" env:"RAYFLY_FPS"`
	Fullscreen    bool   `help:"Start fullscreen on the primary monitor." env:"RAYFLY_FULLSCREEN"`
	Joystick      int    `help:"GLFW joystick index to fly with." default:"0" env:"RAYFLY_JOYSTICK"`
	Seed          uint32 `help:"Terrain seed. Zero draws one from the OS." env:"RAYFLY_SEED"`
	TerrainRadius int    `help:"Load terrain chunks this many chunks around the origin." default:"0" env:"RAYFLY_TERRAIN_RADIUS"`
	Mute          bool   `help:"Disable engine audio." env:"RAYFLY_MUTE"`
	Debug         bool   `help:"Whether to enable debug logging." env:"RAYFLY_DEBUG"`
	Version       bool   `help:"Print version information and exit." short:"v"`
}

func init() {
	// GLFW and the GL context are bound to the main thread.
	runtime.LockOSThread()
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "FATAL: %s\n", err)
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	kong.Parse(&CLI,
		kong.Name(version.Name),
		kong.Description("a tiny joystick flight demo"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	if CLI.Version {
		fmt.Printf("%s (commit %s)\n", version.Title(), version.GitCommit)
		os.Exit(0)
	}

	if err := run(); err != nil {
		log.Error().Err(err).Msg("simulation failed")
		writeError(err)
	}
	log.Info().Msg("bye")
}

func run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	log.Info().Str("version", version.Version).Str("commit", version.GitCommit).Msg("starting")

	seed := CLI.Seed
	if seed == 0 {
		if seed, err = terrain.RandomSeed(); err != nil {
			return err
		}
	}
	generator := terrain.NewGenerator(seed)

	simulator := sim.NewSimulator(gfx.Platform{}, gfx.Joysticks{})
	err = simulator.Init(sim.WindowConfig{
		Title:      version.Title(),
		Width:      CLI.Width,
		Height:     CLI.Height,
		FPS:        CLI.FPS,
		Fullscreen: CLI.Fullscreen,
	})
	if err != nil {
		return err
	}
	defer simulator.Deinit()

	if name := (gfx.Joysticks{}).Name(CLI.Joystick); name != "" {
		log.Info().Int("joystick", CLI.Joystick).Str("name", name).Msg("using joystick")
	}

	if !CLI.Mute {
		engine, err := audio.NewEngine()
		if err != nil {
			log.Warn().Err(err).Msg("audio disabled")
		} else {
			defer engine.Close()
			simulator.SetThrustListener(engine)
		}
	}

	if err := loadTerrain(simulator, generator, int32(CLI.TerrainRadius)); err != nil {
		return err
	}

	return simulator.Run(CLI.Joystick)
}

// loadTerrain uploads the square of chunks within radius of chunk (0, 0).
func loadTerrain(simulator *sim.Simulator, generator *terrain.Generator, radius int32) error {
	if radius <= 0 {
		return nil
	}
	for x := -radius; x <= radius; x++ {
		for z := -radius; z <= radius; z++ {
			chunk := generator.Chunk(x, z)
			model, err := gfx.LoadTerrain(chunk)
			if err != nil {
				return fmt.Errorf("terrain chunk %d,%d: %w", x, z, err)
			}
			// Sink the relief so the grid stays visible over flat ground.
			simulator.AddModel(model, chunk.Origin().Sub(mgl32.Vec3{0, terrain.HeightmapRelief, 0}))
		}
	}
	log.Info().Int32("radius", radius).Msg("terrain loaded")
	return nil
}
