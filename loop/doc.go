// Package loop implements the fixed/variable timestep game loop: a
// scheduler that paces user-supplied update and draw callbacks, with
// catch-up accumulation, frame-lag detection, and FPS tracking.
package loop
