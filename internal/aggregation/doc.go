// Package aggregation derives dashboard views from a snapshot of the sales,
// salespeople and stores tables.
//
// Every function is pure: inputs are never mutated and the same snapshot
// always yields the same result. Rows are ordered with stable sorts, so ties
// keep the order of the table they were built from. A sale whose salesperson
// or store no longer resolves is still counted; it is reported under a
// neutral label instead of being dropped.
package aggregation
