// Package logging provides a unified logging interface for the vec32check
// harness. It abstracts the underlying logging implementation, allowing
// consistent logging across suites while supporting multiple backends.
package logging
