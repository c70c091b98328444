//go:build !test
// +build !test

package audio

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/oto/v2"
	"github.com/rs/zerolog/log"
)

const readyTimeout = 2 * time.Second

// Engine owns the output device and the single looping rotor player.
type Engine struct {
	ctx    *oto.Context
	player oto.Player
	rotor  *rotorReader
}

// NewEngine opens the default output device and starts the rotor loop at
// idle, which is silent.
func NewEngine() (*Engine, error) {
	rotor, err := newRotorReader()
	if err != nil {
		return nil, err
	}

	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("audio init: %w", err)
	}
	select {
	case <-ready:
	case <-time.After(readyTimeout):
		return nil, errors.New("audio init: device not ready")
	}

	player := ctx.NewPlayer(rotor)
	player.SetVolume(1)
	player.Play()
	log.Info().
		Int("rate", SampleRate).
		Float64("rotor_rpm", rotor.baseRPM).
		Msg("audio started")
	return &Engine{ctx: ctx, player: player, rotor: rotor}, nil
}

// SetThrust follows the thrust accumulator, normalized to 0..1.
func (e *Engine) SetThrust(norm float64) {
	e.rotor.SetThrust(norm)
}

func (e *Engine) Close() {
	if e == nil || e.player == nil {
		return
	}
	if err := e.player.Close(); err != nil {
		log.Warn().Err(err).Msg("audio close")
	}
	e.player = nil
}
