// Package ledger models the external revenue ledger: a keyed table of
// asset_id to realized value, consulted once per run.
//
// Sources fetch the ledger wholesale (an HTTP CSV export or an object in
// the storage bucket). A fetch failure never aborts a run: FetchOrEmpty
// downgrades it to an empty ledger and a warning, and the cycle simply
// finds no matches. Duplicate ids in an export resolve to the first row
// encountered.
package ledger
