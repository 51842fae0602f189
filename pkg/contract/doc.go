// Package contract checks outgoing payloads against an embedded OpenAPI
// description of the official service's request bodies, so that shape
// mistakes are reported with a FieldPath and wizard step before anything is
// sent.
package contract
