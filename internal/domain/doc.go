// Package domain contains the core value objects for the die yield engine.
//
// This package is the innermost layer. It has no dependencies on
// infrastructure concerns (CLI, file formats, rendering, logging) and
// carries only the entities a yield calculation produces and consumes.
//
// # Entities
//
//   - [Substrate]: The wafer or panel being tiled, with its edge margin
//   - [Reticle]: The exposure field repeated across the substrate
//   - [Die]: Die dimensions and scribe-line spacing within a shot
//   - [DieInstance]: One placed die with absolute coordinates and status
//   - [YieldParams]: Defect rate, critical area, and yield model choice
//   - [Result]: Category tallies and the computed fab yield
//
// All entities are value objects built in a single top-to-bottom pass;
// nothing here is shared or mutated across components.
package domain
