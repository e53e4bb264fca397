// Package normalize produces the canonical form of raw product names before
// they are looked up or sent to a translation provider.
package normalize
