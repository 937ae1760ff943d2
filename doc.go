// Package beamlab generates and validates grid-based laser-reflection
// puzzles, from the raw ray-trace physics up to a guaranteed-solvable
// generation pipeline.
//
// 🔦 What is beamlab?
//
//	A deterministic, in-memory puzzle engine that brings together:
//		• Grid & materials: square grids of mirrors, water, glass, metal, absorbers
//		• Ray tracing: one beam, cell by cell, with per-material reflection rules
//		• Validation: continuity, reflection accuracy, termination and confidence
//		• Planning: backward synthesis of a reflection path at a target difficulty
//		• Placement: density-constrained material fill around a protected path
//		• Orchestration: plan → place → simulate → validate → accept-or-retry
//
// ✨ Why choose beamlab?
//
//   - Guaranteed solvability – every accepted puzzle is forward-simulated first
//   - Reproducible – all randomness flows from one injectable seed
//   - Pure Go – no I/O, no globals, no hidden state
//   - Composable – every stage is a plain constructor-injected service
//
// Under the hood, everything is organized per pipeline stage:
//
//	beamgrid/  : positions, materials, grids & difficulty configuration
//	trace/     : the ray-trace engine and angle geometry
//	validate/  : physics validation and complexity scoring
//	pathplan/  : the reverse path planner and seeded RNG utilities
//	placement/ : the material placement / density optimizer
//	puzzle/    : the generation orchestrator, scoring and fallback
//
// Quick ASCII example (6×6, entry ▶ at the left edge, one 45° mirror):
//
//	    ▲
//	▶ · ╱ · · ·
//	  · · · · ·
//
//	the beam enters heading east, turns 90° at the mirror and exits north.
//
// Dive into the per-package doc.go files for contracts, invariants and
// complexity notes.
//
//	go get github.com/lumivak/beamlab
package beamlab
