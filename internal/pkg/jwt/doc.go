// Package jwt wraps token generation and verification behind a small
// interface so handlers and usecases stay agnostic of the signing scheme.
package jwt
