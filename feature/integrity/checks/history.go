package checks

import (
	"fmt"

	"rein-stock/core/database"
	"rein-stock/feature/stock"

	"gorm.io/gorm"
)

// CheckHistory verifies the sync history table against the expected columns.
func CheckHistory(db *gorm.DB) Result {
	if db == nil {
		return Result{Status: StatusSkipped, Detail: "no database configured"}
	}

	table := stock.SyncRun{}.TableName()
	missing, err := database.MissingColumns(db, table, stock.HistoryColumns)
	if err != nil {
		return failed(err)
	}
	if len(missing) > 0 {
		return Result{
			Status:  StatusError,
			Detail:  fmt.Sprintf("table %s does not match the sync run model", table),
			Missing: missing,
		}
	}
	return Result{Status: StatusOK, Detail: table}
}
