// Package formconfig describes a declarative form and merges caller supplied
// configuration with the engine defaults into one Effective configuration.
//
// A Config names the form (its registry key), its endpoint, the form element
// id and the ordered list of field names. Everything else is optional:
// prefixes, CSS classes and messages fall back to defaults, and messages are
// merged key by key so overriding the success text keeps the other defaults.
//
// Configs can be written in Go, loaded from YAML/JSON documents with LoadFS,
// or derived from an OpenAPI operation with FromOpenAPI.
package formconfig
