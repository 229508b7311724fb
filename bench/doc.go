// SPDX-License-Identifier: MIT

// Package bench is the benchmark harness: it generates two n×n operands,
// times matrix.Multiply against tiled.Run on them and reports the outcome.
//
// A run is described by Config, read from YAML with LoadConfig or filled in
// from command-line flags. Run prints the classic progress lines
// ("Parameters: ...", "Done! It took ...ms") to a writer and returns a
// Report that can be written out with WriteYAML.
package bench
