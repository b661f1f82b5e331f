// Package dto định nghĩa input/output cho API báo cáo vận hành.
// Tên field JSON giữ nguyên hợp đồng với frontend dashboard hiện có.
package dto

// ReportQueryInput là query params của GET /api/report.
type ReportQueryInput struct {
	Date     string `query:"date" validate:"required"`      // Ngày kết thúc cửa sổ báo cáo
	Platform string `query:"platform"`                      // Filter theo platform (khớp chính xác, không phân biệt hoa thường)
	Account  string `query:"account"`                       // Filter theo account
	Mode     string `query:"mode" validate:"report_mode"`   // day | week | month, rỗng = day
	Days     *int   `query:"days"`                          // Số ngày (mode=day); nil = từ đầu tháng của Date
	Weeks    *int   `query:"weeks"`                         // Số tuần (mode=week), mặc định 12
	Months   *int   `query:"months"`                        // Số tháng (mode=month), mặc định 12
	Page     int    `query:"page"`                          // Trang, bắt đầu từ 1
	PageSize int    `query:"page_size"`                     // Số nhóm sản phẩm mỗi trang, tối đa 500
}

// PeriodMetrics là chỉ số gộp của một nhóm sản phẩm trong một chu kỳ
// (một ngày, một tuần ISO hoặc một tháng).
type PeriodMetrics struct {
	Date            string  `json:"date"` // Ngày (mode=day) hoặc ngày đầu chu kỳ (mode=week/month)
	TotalSalesQty   int     `json:"total_sales_qty"`
	AdSalesQty      int     `json:"ad_sales_qty"`
	NaturalSalesQty int     `json:"natural_sales_qty"`
	AvgPrice        float64 `json:"avg_price"`
	GoodsCost       float64 `json:"goods_cost"`
	SalesCost       float64 `json:"sales_cost"`
	AdSpend         float64 `json:"ad_spend"` // Template + search
	SalesAmount     float64 `json:"sales_amount"`
	Payout          float64 `json:"payout"`
	Profit          float64 `json:"profit"`    // Tính sau khi gộp xong
	Inventory       int     `json:"inventory"` // Giá trị ghi sau cùng, không cộng dồn
	AdRatio         float64 `json:"ad_ratio"`  // ad_spend / sales_amount
}

// Summary12D là phần tổng hợp 12 chu kỳ gần nhất của một dòng báo cáo
// (12 phần tử cuối của dãy chu kỳ, bất kể chu kỳ là ngày/tuần/tháng).
type Summary12D struct {
	SalesQty     int     `json:"sales_qty"`
	SalesAmount  float64 `json:"sales_amount"`
	AdSalesQty   int     `json:"ad_sales_qty"`
	AdSpend      float64 `json:"ad_spend"`
	AdRatio      float64 `json:"ad_ratio"`       // ad_spend / sales_amount
	AdSalesRatio float64 `json:"ad_sales_ratio"` // ad_sales_qty / sales_qty
}

// ReportRow là một dòng báo cáo: định danh sản phẩm + tổng hợp 12 chu kỳ
// + dãy chỉ số theo từng chu kỳ. Danh tính lấy từ bản ghi đầu tiên của nhóm.
type ReportRow struct {
	Category  *string         `json:"category"`
	NameCN    *string         `json:"name_cn"`
	SKU       *string         `json:"sku"`
	OzonID    *string         `json:"ozon_id"`
	Platform  *string         `json:"platform"`
	Account   *string         `json:"account"`
	Summary12 Summary12D      `json:"summary_12d"`
	Days      []PeriodMetrics `json:"days"` // Giữ tên "days" theo hợp đồng frontend, kể cả mode tuần/tháng
}

// ReportResponse là response của GET /api/report.
type ReportResponse struct {
	Start        string      `json:"start"`
	End          string      `json:"end"`
	DaysCount    int         `json:"days_count"` // Alias của period_count, hợp đồng cũ của frontend
	PeriodCount  int         `json:"period_count"`
	Page         int         `json:"page"`
	PageSize     int         `json:"page_size"`
	Total        int         `json:"total"`
	Mode         string      `json:"mode"`
	PeriodLabels []string    `json:"period_labels"` // Rỗng ở mode=day; "monday ~ sunday" hoặc "YYYY-MM (start ~ end)"
	Rows         []ReportRow `json:"rows"`
}

// DebugReportResponse là response của GET /api/debug-report, phục vụ chẩn đoán
// vận hành: filter đã dựng, số document khớp, danh sách field của một document mẫu.
type DebugReportResponse struct {
	Start      string   `json:"start"`
	End        string   `json:"end"`
	Filter     string   `json:"filter"`
	StrDates   []string `json:"str_dates"` // Tối đa 5 biến thể chuỗi ngày đầu tiên
	TotalMatch int64    `json:"total_match"`
	SampleKeys []string `json:"sample_keys"`
}
