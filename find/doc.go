// Package find locates files with regexp in/exclusion filters and
// writes the matches to list files, optionally divided into ratio-based
// splits such as train/test.
package find
