// Package log provides a minimal leveled logger for the devconf service.
//
// Debug output is gated behind the verbose flag; errors always go to stderr.
package log
