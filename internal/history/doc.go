// Package history persists a ledger of file-processing runs in SQLite.
//
// Every completed run of the rewriter records its input, output, counts,
// and timing as one row. The ledger is pruned to a configured number of
// recent runs on each insert, so the database stays small no matter how
// often the tool runs. Recording is best-effort from the caller's point of
// view; a history failure never fails the run that produced it.
package history
