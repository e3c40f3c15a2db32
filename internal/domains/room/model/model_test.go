package model

import (
	"os"
	"reflect"
	"regexp"
	"testing"
)

// collectDBColumns walks the struct, descending into embedded structs the
// same way the repository layer does when it builds column lists.
func collectDBColumns(t reflect.Type) []string {
	columns := []string{}

	for i := range t.NumField() {
		field := t.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, collectDBColumns(field.Type)...)

			continue
		}

		tag := field.Tag.Get("db")
		if tag != "" && tag != "-" {
			columns = append(columns, tag)
		}
	}

	return columns
}

func TestRoomColumnsMatchMigration(t *testing.T) {
	migration, err := os.ReadFile("../../../../migrations/postgres/000002_create_rooms_table.up.sql")
	if err != nil {
		t.Fatalf("failed to read rooms migration: %v", err)
	}

	columns := collectDBColumns(reflect.TypeOf(Room{}))
	if len(columns) == 0 {
		t.Fatal("expected Room to declare db columns")
	}

	for _, column := range columns {
		declared := regexp.MustCompile(`(?m)^\s*` + column + `\s`)
		if !declared.Match(migration) {
			t.Errorf("column %q from the Room model is not declared in the rooms migration", column)
		}
	}
}
