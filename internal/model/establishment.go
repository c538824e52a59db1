package model

// establishmentNames maps the integer site codes used across the system to
// human-readable store names. Codes outside the table belong to the central
// warehouse.
var establishmentNames = map[int]string{
	1: "Sunnyvale",
	2: "Fremont",
	3: "Milpitas",
	4: "Karthik",
}

// DefaultSiteName is used for any establishment code outside the fixed table.
const DefaultSiteName = "warehouse"

// SiteName resolves an establishment code to its store name.
func SiteName(establishment int) string {
	if name, ok := establishmentNames[establishment]; ok {
		return name
	}
	return DefaultSiteName
}
