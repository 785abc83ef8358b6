// Package frame models a single bowling frame.
//
// A frame is one of two shapes, tagged by Kind:
//   - KindDefault, frames 1 through 9, holding two rolls whose sum is at
//     most 10. A strike is stored as (10, 0).
//   - KindFinal, frame 10, holding two rolls and a bonus roll that may only
//     be non-zero after a strike or a spare.
//
// Category predicates are derived from the rolls on every call. The running
// score is a single-assignment cell that is safe to read from other
// goroutines once set.
package frame
