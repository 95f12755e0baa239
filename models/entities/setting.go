package entities

// Setting is one persisted key-value pair; values are JSON-encoded arrays.
type Setting struct {
	Key   string `gorm:"primaryKey"`
	Value string `gorm:"not null"`
}
