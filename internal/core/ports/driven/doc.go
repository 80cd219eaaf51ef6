// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - RandomSource: Uniform integer draws for the decoration engine
//   - RandomSourceFactory: Builds a RandomSource from settings
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the decoration service degrades gracefully:
//
//   - Normaliser: Decodes raw input bytes into UTF-8 text. Without it, input is read as-is.
//   - StageFactory: Builds pre-decoration pipelines. Without it, no stages can be requested.
//   - TextMeasurer: Grapheme and width measurement. Without it, inspection reports runes only.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, normaliser, or postprocessor package
package driven
