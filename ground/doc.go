// Package ground represents the static walking/impact surface a body
// interacts with and answers three queries against it: SampleAt (surface
// point, normal, material at a world position), Raycast (ray-vs-ground
// hit), and MaterialAt (material lookup alone). Three interchangeable
// representations back those queries: a single infinite Plane (uniform),
// sparse per-cell Plane/BodyProps overrides keyed by a caller-supplied
// world-to-coord mapper (tiles), and a regular-grid heightmap
// (heightfield).
//
// Grounded on original_source/byul/ground/ground.h and ground.cpp.
package ground
