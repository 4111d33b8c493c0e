// Package utils provides common utility functions for the sentence pipeline.
// It includes type conversion helpers shared by the store backends, which
// decode loosely typed JSON and workbook cell values.
package utils
