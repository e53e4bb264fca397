// Package dictionary translates grocery product names offline by
// substituting known Vietnamese terms with their English counterparts.
package dictionary
