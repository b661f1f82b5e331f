// Package reporthdl - Handler cho API báo cáo vận hành Ozon.
package reporthdl

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/yulianggan/ozondailyreport/internal/api/base/handler"
	"github.com/yulianggan/ozondailyreport/internal/api/report/calendar"
	reportdto "github.com/yulianggan/ozondailyreport/internal/api/report/dto"
	reportsvc "github.com/yulianggan/ozondailyreport/internal/api/report/service"
	"github.com/yulianggan/ozondailyreport/internal/common"
	"github.com/yulianggan/ozondailyreport/internal/global"
)

// ReportHandler xử lý các request báo cáo vận hành.
type ReportHandler struct {
	ReportService *reportsvc.ReportService
}

// NewReportHandler tạo mới một instance của ReportHandler.
func NewReportHandler() (*ReportHandler, error) {
	svc, err := reportsvc.NewReportService()
	if err != nil {
		return nil, err
	}
	return &ReportHandler{
		ReportService: svc,
	}, nil
}

// HandleHealth xử lý GET /health — kiểm tra trạng thái dịch vụ.
func (h *ReportHandler) HandleHealth(c fiber.Ctx) error {
	return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{"status": "ok"})
}

// parseParams đọc và xác thực query của báo cáo, trả về tham số đã chuẩn hóa.
func (h *ReportHandler) parseParams(c fiber.Ctx) (*reportsvc.ReportParams, error) {
	var input reportdto.ReportQueryInput
	if err := c.Bind().Query(&input); err != nil {
		return nil, common.NewError(common.ErrCodeValidationInput,
			common.MsgValidationError+": "+err.Error(), common.StatusBadRequest, nil)
	}
	if err := global.Validate.Struct(&input); err != nil {
		return nil, common.NewError(common.ErrCodeValidationInput,
			common.MsgValidationError+": "+err.Error(), common.StatusBadRequest, nil)
	}

	end, err := calendar.ParseAnyDate(input.Date)
	if err != nil {
		if errors.Is(err, calendar.ErrUnsupportedDateFormat) {
			return nil, common.NewError(common.ErrCodeValidationFormat,
				common.MsgInvalidFormat+": date="+input.Date, common.StatusBadRequest, nil)
		}
		return nil, err
	}

	return &reportsvc.ReportParams{
		End:      end,
		Mode:     input.Mode,
		Days:     input.Days,
		Weeks:    input.Weeks,
		Months:   input.Months,
		Platform: input.Platform,
		Account:  input.Account,
		Page:     input.Page,
		PageSize: input.PageSize,
	}, nil
}

// HandleReport xử lý GET /report — dựng báo cáo theo ngày/tuần/tháng,
// gộp theo nhóm sản phẩm và phân trang.
// Payload trả phẳng (không bọc envelope) để giữ hợp đồng với frontend hiện có.
func (h *ReportHandler) HandleReport(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		params, err := h.parseParams(c)
		if err != nil {
			return err
		}

		resp, err := h.ReportService.BuildReport(c.Context(), *params)
		if err != nil {
			return err
		}
		return basehdl.JSONResponse(c, common.StatusOK, resp)
	})
}

// HandleDebugReport xử lý GET /debug-report — thông tin chẩn đoán filter và
// dữ liệu khớp của một cửa sổ báo cáo. Chỉ dùng khi vận hành, không phải API chính.
func (h *ReportHandler) HandleDebugReport(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		params, err := h.parseParams(c)
		if err != nil {
			return err
		}

		resp, err := h.ReportService.DebugReport(c.Context(), *params)
		if err != nil {
			return err
		}
		return basehdl.JSONResponse(c, common.StatusOK, resp)
	})
}
