package request

type UpsertSettingRequest struct {
	SettingName  string `json:"setting_name" validate:"required,min=2,max=50"`
	SettingValue string `json:"setting_value" validate:"required,max=200"`
}
