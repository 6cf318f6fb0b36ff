package models_test

import (
	"testing"

	"github.com/vslice-dev/vslice/pkg/models"
)

func TestColumnTypeIsValid(t *testing.T) {
	tests := []struct {
		name  string
		typ   models.ColumnType
		valid bool
	}{
		{"int", models.ColumnInt, true},
		{"float", models.ColumnFloat, true},
		{"str", models.ColumnStr, true},
		{"bool", models.ColumnBool, true},
		{"datetime", models.ColumnDateTime, true},
		{"empty", models.ColumnType(""), false},
		{"uppercase", models.ColumnType("INT"), false},
		{"decimal", models.ColumnType("decimal"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.IsValid(); got != tt.valid {
				t.Errorf("IsValid(%q) = %v, want %v", tt.typ, got, tt.valid)
			}
		})
	}
}

func TestColumnTypeSQLType(t *testing.T) {
	want := map[models.ColumnType]string{
		models.ColumnInt:      "Integer",
		models.ColumnFloat:    "Float",
		models.ColumnStr:      "String",
		models.ColumnBool:     "Boolean",
		models.ColumnDateTime: "DateTime",
	}
	for _, typ := range models.ValidColumnTypes() {
		if got := typ.SQLType(); got != want[typ] {
			t.Errorf("SQLType(%q) = %q, want %q", typ, got, want[typ])
		}
	}

	if got := models.ColumnType("uuid").SQLType(); got != "" {
		t.Errorf("SQLType(uuid) = %q, want empty", got)
	}
}

func TestColumnSQLType(t *testing.T) {
	c := models.Column{Name: "age", Type: models.ColumnInt}
	if got := c.SQLType(); got != "Integer" {
		t.Errorf("Column.SQLType() = %q, want Integer", got)
	}
}
