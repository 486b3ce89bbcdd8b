// Package model defines the data structures shared by the estimator and the
// report writers.
//
// This package contains the following main types:
//   - Pair: one sampled pair of integers with its GCD, used for debug traces
//   - Result: the outcome of a complete estimation run
//
// The models are kept in their own package so that the coprime and report
// packages can both use them without importing each other.
package model
