// Package mend repairs structural defects in the output of a schema-to-model
// generator before the models are usable.
//
// Three passes run in fixed order against one in-memory text buffer:
//
//  1. Mutable-default normalization: shared mutable literal defaults
//     ("= []", "= {}") become deferred construction via
//     field(default_factory=...), so every instance gets an independent
//     container instead of aliasing one shared object.
//  2. Hierarchy flattening: every record with a declared parent is rewritten
//     as a flat, parent-less record carrying the deduplicated union of its
//     ancestors' and its own fields, required fields first. The target
//     representation has no field inheritance, so inherited fields must be
//     materialized locally.
//  3. Manual overrides: a fixed table of record name to canonical body,
//     applied as an exact-replacement pass for shapes the generator resolves
//     incorrectly.
//
// The passes are best-effort: records or fields that do not match the
// expected convention are skipped silently (see package diagnostic). Only
// I/O failures around the buffer are fatal, and those belong to the caller.
package mend
