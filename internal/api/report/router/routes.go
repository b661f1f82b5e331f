// Package router đăng ký các route thuộc domain Report: health, report, debug-report.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	reporthdl "github.com/yulianggan/ozondailyreport/internal/api/report/handler"
	apirouter "github.com/yulianggan/ozondailyreport/internal/api/router"
)

// Register đăng ký tất cả route báo cáo lên group /api.
// API chỉ đọc, không có middleware xác thực.
func Register(api fiber.Router, r *apirouter.Router) error {
	reportHandler, err := reporthdl.NewReportHandler()
	if err != nil {
		return fmt.Errorf("create report handler: %w", err)
	}

	apirouter.RegisterRouteWithMiddleware(api, "", "GET", "/health", nil, reportHandler.HandleHealth)
	apirouter.RegisterRouteWithMiddleware(api, "", "GET", "/report", nil, reportHandler.HandleReport)
	apirouter.RegisterRouteWithMiddleware(api, "", "GET", "/debug-report", nil, reportHandler.HandleDebugReport)

	return nil
}
