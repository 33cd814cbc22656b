// Package matadapt bridges float64 engine arrays and gonum matrices.
//
// Both directions share storage where the layout allows it, so a matrix
// operation's result can travel back to the host runtime without a copy.
package matadapt
