// Package magetasks holds the build, test and lint tasks run by the
// Magefile. Tasks shell out through mage's sh package so output streams
// straight to the terminal.
package magetasks
