// Package rain provides the simulation engine behind the falling-code effect.
//
// A [Simulation] owns a character grid and one [Line] per column. Every tick
// each Line falls one row and reports the cells it recolours to a
// [CellRenderer]; the Simulation additionally scrambles random characters
// inside the glowing part of each trail and occasionally switches the active
// [ColorTriple].
//
// # Example
//
//	sim, err := rain.New(80, 24, renderer, []rain.ColorTriple{{15, 10, 2}})
//	if err != nil {
//		return err
//	}
//	err = sim.Play(ctx, 10*time.Millisecond)
//
// # Thread Safety
//
// Simulation instances are NOT thread-safe. All callbacks run synchronously
// on the goroutine that calls [Simulation.Step] or [Simulation.Play].
package rain
