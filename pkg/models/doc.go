// Package models provides shared data models for vslice.
//
// # Projects
//
// [ProjectConfig] is the marker written to .vslice.yaml at the root of every
// generated project. Its presence is how commands run later (slice,
// ingredient) locate the project root.
//
// # Columns
//
// Ingredient models are declared with a list of [Column] values. Each column
// carries one of the fixed [ColumnType] hints, which map onto SQLAlchemy
// column types:
//
//	col := models.Column{Name: "age", Type: models.ColumnInt}
//	col.Type.SQLType() // "Integer"
package models
