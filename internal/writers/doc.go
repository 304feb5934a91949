// Package writers holds output-stream helpers shared by the command layer.
package writers
