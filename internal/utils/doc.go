// Package utils contains small helpers shared across devconf packages.
package utils
