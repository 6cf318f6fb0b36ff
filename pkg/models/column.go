package models

import "slices"

// ColumnType is a Python type hint accepted for ingredient columns.
type ColumnType string

const (
	ColumnInt      ColumnType = "int"
	ColumnFloat    ColumnType = "float"
	ColumnStr      ColumnType = "str"
	ColumnBool     ColumnType = "bool"
	ColumnDateTime ColumnType = "datetime"
)

// sqlTypes maps each hint to its SQLAlchemy column type.
var sqlTypes = map[ColumnType]string{
	ColumnInt:      "Integer",
	ColumnFloat:    "Float",
	ColumnStr:      "String",
	ColumnBool:     "Boolean",
	ColumnDateTime: "DateTime",
}

// ValidColumnTypes returns all accepted column type hints in declaration order.
func ValidColumnTypes() []ColumnType {
	return []ColumnType{ColumnInt, ColumnFloat, ColumnStr, ColumnBool, ColumnDateTime}
}

// IsValid reports whether t is one of the accepted hints.
func (t ColumnType) IsValid() bool {
	return slices.Contains(ValidColumnTypes(), t)
}

// SQLType returns the SQLAlchemy type name, or "" for an unknown hint.
func (t ColumnType) SQLType() string {
	return sqlTypes[t]
}

// Column is a single model column as declared on the command line.
type Column struct {
	Name string     `yaml:"name" json:"name"`
	Type ColumnType `yaml:"type" json:"type"`
}

// SQLType returns the SQLAlchemy type of the column.
func (c Column) SQLType() string {
	return c.Type.SQLType()
}
