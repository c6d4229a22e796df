// Package stretch locates the onset of critical strain for serpentine
// interconnects bonded to elastomer substrates.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - ratio.go: high-strain length fraction along one measurement path
//   - search.go: cached bisection over frames and the tagged OnsetResult
//   - reconcile.go: combining the two redundant surfaces into one answer
//
// # Architecture
//
// The package is a pure search-and-interpolation core. It reads simulation
// output through the FieldSource interface (path.go) and never touches the
// solver's native result format; implementations live in sub-packages:
//   - stretch/fixture: YAML trajectory fixtures and synthetic generation
//   - stretch/report: flattening summaries into CSV rows for batch runs
//
// A trajectory is an ordered sequence of frames under monotonically
// increasing load. For each frame, EvaluateFrame scans the path set in
// order and short-circuits on the first path whose high-strain fraction
// exceeds the ratio limit. SearchOnset bisects the trajectory for the
// earliest exceeding frame, memoizing probes in a cache owned by that one
// call, then interpolates the monitor value (displacement) at the exact
// crossing. Reconcile picks the governing surface between the top and
// bottom results.
package stretch
