// Package models contains database model definitions.
package models

// UserSetting is a row of the user_setting table.
//
// The platform default columns and valueType carry column defaults so that an
// insert which only names key, defaultValue and valueType yields a complete row.
type UserSetting struct {
	ID             uint64  `gorm:"primaryKey;column:id"`
	Key            string  `gorm:"column:key;size:255;not null;uniqueIndex"`
	UserValue      *string `gorm:"column:userValue;type:text"`
	DefaultValue   string  `gorm:"column:defaultValue;type:text;not null"`
	LinuxDefault   string  `gorm:"column:linuxDefault;size:2048;not null;default:''"`
	MacDefault     string  `gorm:"column:macDefault;size:2048;not null;default:''"`
	WindowsDefault string  `gorm:"column:windowsDefault;size:2048;not null;default:''"`
	ValueType      int16   `gorm:"column:valueType;not null;default:0"`
}

// TableName overrides the pluralized gorm default.
func (UserSetting) TableName() string {
	return "user_setting"
}
