// Package filters implements the stream decode filters needed to recover
// operator text from PDF content streams: Flate (the compression every
// plotting library uses), ASCII85, and ASCIIHex.
package filters
