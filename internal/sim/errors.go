package sim

import "errors"

var (
	ErrAlreadyInitialized = errors.New("sim: already initialized, no need to do it again")
	ErrNotInitialized     = errors.New("sim: not initialized")
	ErrJoystickNotPresent = errors.New("sim: joystick not present")
	ErrInsufficientAxes   = errors.New("sim: joystick reports too few axes")
)
