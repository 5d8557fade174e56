// Package projectlifecycle owns the submission lifecycle of competing
// projects: authors submit work under an award, edit or withdraw it while it
// is still pending, and the record freezes once the first evaluation lands.
// The evaluated transition itself is driven by the evaluation ledger through
// a guarded compare-and-set on the project status.
package projectlifecycle
