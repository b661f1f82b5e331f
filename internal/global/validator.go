package global

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("report_mode", validateReportMode)
}

// validateReportMode kiểm tra mode báo cáo hợp lệ (day|week|month, rỗng = day)
func validateReportMode(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	switch value {
	case "", "day", "week", "month":
		return true
	}
	return false
}
