package entity

// Setting is one persisted settings row. Settings are stored as individual
// key/value records and folded into a StoreSettings on read.
type Setting struct {
	Key   string `gorm:"primaryKey;size:64" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}

// TableName returns the table name for the Setting model
func (Setting) TableName() string {
	return "settings"
}

// Settings keys in use.
const (
	SettingStoreName  = "storeName"
	SettingAddress    = "address"
	SettingPhone      = "phone"
	SettingUPIID      = "upiId"
	SettingGSTEnabled = "gstEnabled"
	SettingLogo       = "logo"
)

// StoreSettings is the typed view of the settings collection. Absent keys
// read back as zero values; consumers supply their own defaults.
type StoreSettings struct {
	StoreName  string `json:"storeName"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	UPIID      string `json:"upiId"`
	GSTEnabled bool   `json:"gstEnabled"`
	Logo       string `json:"logo"` // image data URI
}
