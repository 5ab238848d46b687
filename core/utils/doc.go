// Package utils provides coercion helpers shared by the payload parsing layer.
// Values coming from the ERP are loosely typed (numbers arrive as strings,
// floats or json.Number depending on the endpoint), so every numeric field
// goes through ToInt instead of a strict type assertion.
package utils
