// Package sheet provides the tabular store contract and the column adapter
// the reconciliation engine reads and writes through.
//
// # Architecture
//
// The Service interface is the raw store contract: rectangular A1 ranges of
// strings, batch formatting, metadata, and spreadsheet creation. Two
// implementations exist, googlesheets (the Sheets REST API) and workbook
// (a local .xlsx file via excelize).
//
// The Adapter sits above Service and exposes the store the way the engine
// thinks about it: ordered columns of typed cells aligned by row offset.
// Reading without a forced length truncates trailing blanks and so defines
// the column's natural length; reading with a forced length pads with empty
// cells so two columns can be compared position by position.
//
// All Adapter calls go through the shared retry executor; the Service
// implementations stay retry-free.
package sheet
