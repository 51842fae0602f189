// Package reference holds the energy-intensity reference ranges consulted by
// both input validation and the typical-value guidance shown next to design
// energy fields. The bundled table is embedded as YAML and parsed once; Load
// accepts an alternate table with the same layout.
package reference
