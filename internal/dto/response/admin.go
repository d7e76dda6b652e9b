package response

import (
	"time"

	"gym-booking/internal/data/entity"
)

type DashboardResponse struct {
	TotalBookings     int64 `json:"total_bookings"`
	ActivePackages    int64 `json:"active_packages"`
	TotalCategories   int64 `json:"total_categories"`
	TotalPackageTypes int64 `json:"total_package_types"`
}

type AdminSettingResponse struct {
	SettingName  string `json:"setting_name"`
	SettingValue string `json:"setting_value"`
}

type InquiryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Helper converters
func AdminSettingToResponse(setting *entity.AdminSetting) AdminSettingResponse {
	return AdminSettingResponse{
		SettingName:  setting.SettingName,
		SettingValue: setting.SettingValue,
	}
}

func InquiryToResponse(inquiry *entity.Inquiry) InquiryResponse {
	return InquiryResponse{
		ID:        inquiry.ID.String(),
		Name:      inquiry.Name,
		Email:     inquiry.Email,
		Message:   inquiry.Message,
		CreatedAt: inquiry.CreatedAt,
	}
}
