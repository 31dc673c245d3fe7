// Package services implements the driving port interfaces.
// Services apply documented defaults and forward each call to the
// driven Backend in exactly one round trip; they never retry or cache.
//
// A service constructed with a nil Backend runs in development mode:
// every call returns domain.ErrNotConfigured.
package services
