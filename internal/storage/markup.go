package storage

// MarkupSetting is one row of the admin-editable markup table. Category-level
// rows carry the category name; the account default has category = "".
type MarkupSetting struct {
	ID       int64   `json:"id"`
	Category string  `json:"category"`
	Percent  float64 `json:"percent"`
	IsActive bool    `json:"is_active"`
}
