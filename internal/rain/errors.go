package rain

import "errors"

// ErrInvalidArgument is returned when a Simulation is built or run with
// arguments it cannot work with.
var ErrInvalidArgument = errors.New("rain: invalid argument")
