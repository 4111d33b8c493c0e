// Package translate builds a translated companion spreadsheet from a column
// of source sentences. It seeds the destination with bulk translation
// formulas, polls until every formula has resolved, then converts the result
// into a plain three column sheet with a formatted header row.
package translate
