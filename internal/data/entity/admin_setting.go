package entity

type AdminSetting struct {
	BaseNoDelete
	SettingName  string `db:"setting_name"`
	SettingValue string `db:"setting_value"`
}
