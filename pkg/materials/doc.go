// Package materials holds the material-property data model behind Ashby
// charts: properties, per-property value ranges, records grouped into
// categories, and the typed unit and color lookup tables.
//
// Lookup tables are explicit, validated mappings passed as configuration
// and resolved once per plot generation, not ambient globals. An unknown
// property or category is a structured error, never a silent default.
//
// All values here are value objects rebuilt on every plot regeneration;
// nothing is persisted or shared.
package materials
