// Package coord provides the integer-coordinate primitives shared by
// navgrid, coordpq, route, routefinder, and dstarlite: a wraparound
// (Coord), a generic owned map keyed by Coord (CoordHash), and an ordered
// sequence of coords (CoordList).
//
// The original C source modeled CoordHash's value type with explicit
// copy_func/destroy_func callback pairs because C has no generics; that
// indirection is an accident of the host language (spec.md §9) and is
// replaced here by an ordinary Go generic, V: any with a caller-supplied
// Clone for deep copies.
package coord
