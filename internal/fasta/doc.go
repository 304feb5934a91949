// Package fasta extracts subsequences from single-record FASTA files by seeking.
//
// A file is described by its Layout: the byte offset where sequence data starts
// and the width of a full sequence line. Every line except the last is assumed
// to share that width, which lets a 1-based sequence coordinate be turned into
// an absolute byte offset without reading anything in between:
//
//	offset(pos) = beginning + pos + (pos-1)/linewidth - 1
//
// This package never imports app, cli, or config; it only deals in readers,
// writers, and typed errors.
package fasta
