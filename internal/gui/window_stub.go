//go:build !ebiten

package gui

import (
	"errors"
	"time"

	"github.com/san-kum/digirain/internal/viz"
)

var ErrNoGUI = errors.New("gui: window renderer requires building with the 'ebiten' tag")

// Run reports that this build has no window renderer.
func Run(viz.Builder, int, int, time.Duration) error {
	return ErrNoGUI
}
