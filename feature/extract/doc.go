// Package extract pulls sentence text out of a local flashcard deck and
// writes it as a plain text file, one sentence per line, ready to feed into
// the spreadsheet side of the pipeline.
package extract
