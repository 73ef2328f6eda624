// Package collision implements closed-form, loop-free continuous collision
// detection (CCD) between a kinematic projectile and static or moving
// planes, spheres, and triangles.
//
// Every routine shares the same contract: given a position/velocity/
// acceleration triple (p0, v0, a) constant over a tick window [t_prev,
// t_prev+dt], find the earliest time of impact (TOI) in that window against
// the target primitive, using a stable closed-form quadratic solve rather
// than substepping. A projectile that already overlaps the target at t=0
// reports an immediate hit snapped to the target surface; one that never
// moves, or for which dt is non-positive, reports no hit.
//
// Grounded on original_source/byul/balix/collision/collision.cpp.
package collision
