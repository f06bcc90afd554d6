// Package fmqe implements a model-based optimization and
// quantifier-elimination engine for linear arithmetic over the rationals.
//
// Given a finite set of linear constraints over rational-valued variables
// together with a satisfying assignment (a "model"), the engine supports
// two primitive operations: Maximize, which returns the supremum of a
// linear objective over the feasible region (or reports unboundedness) and
// updates the model to witness the optimum; and Project, which eliminates a
// variable from the constraint system while preserving satisfiability,
// using the model to pick which Fourier-Motzkin resolvent to keep.
//
// The engine is single-threaded, non-reentrant, and holds no I/O on its
// critical path; callers that need parallelism should Clone an Engine
// rather than share one across goroutines. Parsing of formulas, a SAT/SMT
// interface, and the calling quantifier-elimination driver are all
// out of scope: this package is the dense rational tableau and its
// resolution rule, nothing more.
package fmqe
