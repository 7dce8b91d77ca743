// Package input classifies and parses the raw target argument into a list
// of domains. The argument may be a comma-separated list, a path to a file
// with one domain per line, or a single literal domain.
package input
