// Package otp generates short-lived numeric one-time passwords.
//
// These are the codes emailed to users during signup: random, fixed-width,
// stored server-side next to an expiry timestamp. They are deliberately not
// cryptographically hardened; possession of the code only ever proves control
// of an inbox for a few minutes.
package otp
