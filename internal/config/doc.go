// Package config loads and validates shiftcal configuration.
//
// It supplies defaults matching the schedules the parser was tuned for,
// reads TOML files, and checks that every value can be handed to the
// extractor. Fields left out of a file keep their defaults.
package config
