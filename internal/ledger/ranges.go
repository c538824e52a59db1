package ledger

// Ranges builds the named ranges for the three inventory sheets. Waste rows
// span A:G (7 columns), product-management rows A:O (15 columns), and the
// count sheet A:E (5 columns).
type Ranges struct {
	WasteSheet   string
	ProductSheet string
	CountSheet   string
}

func (r Ranges) Waste() string   { return quote(r.WasteSheet, "A:G") }
func (r Ranges) Product() string { return quote(r.ProductSheet, "A:O") }
func (r Ranges) Count() string   { return quote(r.CountSheet, "A:E") }

// Data ranges start at row 2 so clearing them preserves the header row.
func (r Ranges) WasteData() string   { return quote(r.WasteSheet, "A2:G") }
func (r Ranges) ProductData() string { return quote(r.ProductSheet, "A2:O") }
func (r Ranges) CountData() string   { return quote(r.CountSheet, "A2:E") }

func quote(sheet, cells string) string {
	return "'" + sheet + "'!" + cells
}
