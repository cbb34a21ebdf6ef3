// Package viz renders trajectories in the terminal.
//
//   - [Canvas]: Braille-based pixel canvas, 2x4 dots per cell
//   - [RenderOrbit]: x/y path of a trajectory around the attractor
//   - [PlotSeries]: line chart of a scalar series
//   - [Replay]: animated Bubble Tea replay of a trajectory
//
// # Key Bindings (replay)
//
//	Space - Pause/Resume
//	+/-   - Faster/slower playback
//	R     - Restart from the first sample
//	Q     - Quit
package viz
