// Package rankingengine derives award winners from committed state. Nothing
// here is persisted: every call recomputes the standings from evaluated
// projects and their scores, so a winner declaration is always consistent
// with the ledger at read time.
package rankingengine
