package c2

import "math"

const C2_maxFloat = math.MaxFloat64

/// A small value used to guard divisions and normalizations. Values whose
/// magnitude falls below it are treated as zero.
const C2_epsilon = 1.0e-9

const C2_pi = math.Pi

/// @file
/// Global tuning constants for the narrow phase.
///

// Collision

/// The maximum number of contact points between two convex shapes. Do
/// not change this value.
const C2_maxManifoldPoints = 2

/// The maximum number of vertices on a convex polygon. Higher than 8 and
/// shapes start to look like circles; the hull keeps the first 8 it selects.
const C2_polyMaxVerts = 8

/// A small length used as a collision tolerance. Usually it is chosen to be
/// numerically significant, but visually insignificant.
const C2_linearSlop = 0.005

/// Points closer than this are welded together when building a hull.
const C2_weldDistance = 0.5 * C2_linearSlop

/// Two shapes whose GJK distance is at or below this are considered touching.
const C2_touchTolerance = 1.0e-7

/// Core segments closer than this are treated as intersecting, and contact
/// falls back to clipping instead of the GJK witness axis.
const C2_coreContactTolerance = 1.0e-6

// GJK

/// Upper bound on support point evaluations per GJK call.
const C2_gjkMaxIters = 20

/// GJK stops once a new simplex improves the squared distance by less than
/// this fraction.
const C2_gjkRelTolerance = 1.0e-9

// SAT

/// Reference face selection prefers shape A unless shape B's axis separates
/// by more than this.
const C2_satTieTolerance = 1.0e-6

// Time of impact

/// Maximum conservative advancement steps.
const C2_toiMaxIters = 20

/// Separation at which the time of impact solver reports contact.
const C2_toiTolerance = 1.0e-4
