package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Columns returns the lower-cased column names of a table.
// A table that does not exist yields an empty list.
func Columns(db *gorm.DB, table string) ([]string, error) {
	var names []string

	if db.Dialector.Name() == "sqlite" {
		var rows []struct {
			Name string
		}
		if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", table)).Scan(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", table, err)
		}
		for _, r := range rows {
			names = append(names, strings.ToLower(r.Name))
		}
		return names, nil
	}

	var rows []struct {
		Field string
	}
	if err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", table)).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", table, err)
	}
	for _, r := range rows {
		names = append(names, strings.ToLower(r.Field))
	}
	return names, nil
}

// MissingColumns lists the wanted columns absent from table.
func MissingColumns(db *gorm.DB, table string, want []string) ([]string, error) {
	have, err := Columns(db, table)
	if err != nil {
		return nil, err
	}
	present := make(map[string]struct{}, len(have))
	for _, c := range have {
		present[c] = struct{}{}
	}
	var missing []string
	for _, c := range want {
		if _, ok := present[strings.ToLower(c)]; !ok {
			missing = append(missing, c)
		}
	}
	return missing, nil
}
