// Package buildingtype normalises the building-use identifiers found in form
// input (legacy keys, singular/plural spellings and the official model names
// printed on 様式A) to the small closed set of canonical types that drive
// reference-range lookups. Resolve never fails: identifiers it does not know
// fall back to Offices.
package buildingtype
