// Package processor runs a translation job: it loads the order lines,
// translates every distinct product name once, writes the augmented table
// and reports what happened. It also turns the resolved command-line
// flags into the translator chain of the chosen strategy.
package processor
