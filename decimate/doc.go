// Package decimate fixes the most-biased fraction of unassigned variables
// each SID iteration and cascades unit propagation whenever a clause is
// reduced to its last enabled literal.
package decimate
