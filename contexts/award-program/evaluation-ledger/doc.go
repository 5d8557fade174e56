// Package evaluationledger records evaluator verdicts against submitted
// projects. Writing the first evaluation also flips the project from pending
// to evaluated; the insert and the status flip commit together in one
// transaction so no reader sees an evaluated project without a verdict or a
// verdict against a pending project.
package evaluationledger
