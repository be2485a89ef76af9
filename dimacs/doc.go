// Package dimacs reads and writes the DIMACS CNF format: the external
// boundary between a CNF file on disk and the in-memory clause lists that
// core.NewFactorGraph consumes.
package dimacs
