// Package analysis produces reference commentary for computed results: how a
// category's design intensity compares with typical buildings of the same
// use, the rating band of a BEI value, and improvement ideas for categories
// that run high.
package analysis
