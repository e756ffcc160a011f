// Package assert provides panicking assertions for conditions that can only
// fail through a programming error, such as a corrupted tree structure.
// Build with the assertions_disabled tag to compile them out.
package assert
