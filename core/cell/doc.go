// Package cell defines the typed representation of tabular store cells.
//
// Sheet stores expose cells as bare strings where '=' prefixes carry special
// meaning. Inside the engine a cell is a tagged Value (plain, formula, or
// hyperlink) so emptiness and resolution checks are explicit kind checks
// rather than string-prefix sniffing. Serialization back to the store's
// string form happens only at the adapter boundary.
package cell
