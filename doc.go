// Package jsonevents implements an incremental, event-driven JSON
// parser. It consumes input one byte at a time and reports a stream
// of semantic events — object/array start and end, keys, strings,
// numbers, booleans, and null — to a caller-supplied Sink.
//
// The parser never buffers a whole document and builds no value
// tree: it is meant for embedding in pipelines that cannot, such as
// streaming HTTP bodies or restricted-memory environments. Numbers
// surface as the raw bytes of their textual form; turning them into
// a numeric type is left to the caller.
//
// In addition to strict JSON (RFC 8259), the parser optionally
// recognizes C-style block comments (/* ... */) and YAML-style line
// comments (# ... \n) anywhere whitespace is allowed, controlled by
// Config.AllowCComments and Config.AllowYAMLComments.
package jsonevents
