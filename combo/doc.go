// Package combo enumerates the Cartesian product of per-node candidate lists.
//
// A Generator walks the product like an odometer: the last list spins fastest
// and each call to Next yields exactly one combination. Nothing is recursive
// and nothing is materialised up front, so a caller may stop early.
//
//	lists:  [a b] [x y z]
//	order:  (a x) (a y) (a z) (b x) (b y) (b z)
//
// Edge cases:
//
//	– No lists at all yields exactly one empty combination.
//	– Any empty list yields no combination.
//
// Complexity:
//
//	– Time:  O(L) per combination for L lists; Π|list| combinations in total.
//	– Space: O(L) for the cursor plus the returned slice.
//
// A Generator is single-use; build a new one from the same lists to restart.
package combo
