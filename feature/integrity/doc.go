// Package integrity provides health checks for the stock service.
//
// # Checks Provided
//
//   - Cache: the snapshot file exists and how many SKUs it holds.
//   - History: the stock_sync_runs table has every expected column.
//   - Mirror: the snapshot bucket exists (supports ?fix=true).
//   - Credentials: the ERP client ID, secret, database and base URL are set.
//
// Subsystems that are not configured report "skipped" and do not affect the
// overall status.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks; 503 when any check errors.
//   - GET /integrity/cache
//   - GET /integrity/history
//   - GET /integrity/mirror
//   - GET /integrity/credentials
package integrity
