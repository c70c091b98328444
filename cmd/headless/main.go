package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Chlorophytus/rayfly/internal/sim"
	"github.com/Chlorophytus/rayfly/internal/terrain"
)

var CLI struct {
	Steps    int      `help:"Number of ticks to run." default:"1000"`
	Throttle float32  `help:"Throttle axis, 1 is idle and -1 is full." default:"0"`
	StickX   float32  `name:"stick-x" help:"Roll axis." default:"0"`
	StickY   float32  `name:"stick-y" help:"Pitch axis." default:"0"`
	Rudder   float32  `help:"Yaw axis." default:"0"`
	Chunk    []string `help:"Terrain chunk to generate as x,z. Repeatable." sep:"none" placeholder:"X,Z"`
	Seed     uint32   `help:"Terrain seed. Zero draws one from the OS."`
	Debug    bool     `help:"Whether to enable debug logging."`
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("headless"),
		kong.Description("Run the flight model without a window."),
		kong.UsageOnError())
	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	chunks, err := parseChunks(CLI.Chunk)
	ctx.FatalIfErrorf(err)

	axes := make([]float32, sim.MinAxes)
	axes[sim.AxisStickX] = CLI.StickX
	axes[sim.AxisStickY] = CLI.StickY
	axes[sim.AxisThrottle] = CLI.Throttle
	axes[sim.AxisRudder] = CLI.Rudder

	state := sim.NewState()
	for i := 0; i < CLI.Steps; i++ {
		if err := state.Step(axes); err != nil {
			fmt.Fprintf(os.Stderr, "FATAL: %s\n", err)
			os.Exit(1)
		}
	}

	p := state.Position
	fmt.Printf("Completed %d steps. pos=(%.4f, %.4f, %.4f) speed=%.6f thrust=%.6f yaw=%.3f pitch=%.3f roll=%.3f\n",
		CLI.Steps, p.X(), p.Y(), p.Z(), state.Speed(), state.Thrust,
		sim.RadToDeg(state.Yaw()), sim.RadToDeg(state.Pitch()), sim.RadToDeg(state.Roll()))

	if len(chunks) == 0 {
		return
	}
	seed := CLI.Seed
	if seed == 0 {
		seed, err = terrain.RandomSeed()
		ctx.FatalIfErrorf(err)
	}
	generator := terrain.NewGenerator(seed)
	for _, c := range chunks {
		chunk := generator.Chunk(c[0], c[1])
		fmt.Printf("chunk (%d, %d) seed=%d digest=%016x vertices=%d\n",
			chunk.X, chunk.Z, seed, chunk.Digest(), chunk.Mesh.VertexCount())
	}
}

// parseChunks reads "x,z" pairs.
func parseChunks(specs []string) ([][2]int32, error) {
	out := make([][2]int32, 0, len(specs))
	for _, s := range specs {
		xs, zs, ok := strings.Cut(s, ",")
		if !ok {
			return nil, fmt.Errorf("chunk %q: want x,z", s)
		}
		x, err := strconv.ParseInt(strings.TrimSpace(xs), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("chunk %q: %w", s, err)
		}
		z, err := strconv.ParseInt(strings.TrimSpace(zs), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("chunk %q: %w", s, err)
		}
		out = append(out, [2]int32{int32(x), int32(z)})
	}
	return out, nil
}
