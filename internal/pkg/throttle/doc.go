// Package throttle provides per-key cooldown enforcement for operations that
// must not run more often than a configured interval.
package throttle
