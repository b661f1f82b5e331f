package reportsvc

import (
	"github.com/yulianggan/ozondailyreport/internal/api/report/dto"
	"github.com/yulianggan/ozondailyreport/internal/api/report/models"
)

// rollupWindow là số chu kỳ cuối dãy dùng cho phần tổng hợp của mỗi dòng báo cáo.
// Cửa sổ tính theo VỊ TRÍ (12 phần tử cuối), không tính lại theo lịch,
// nên giữ nguyên ý nghĩa khi đổi mode ngày/tuần/tháng.
const rollupWindow = 12

// GroupRecords gộp bản ghi theo ProductKey, giữ thứ tự khóa xuất hiện lần đầu.
func GroupRecords(docs []models.RawRecord) ([]models.ProductKey, map[models.ProductKey][]models.RawRecord) {
	var keys []models.ProductKey
	groups := make(map[models.ProductKey][]models.RawRecord)

	for _, doc := range docs {
		key := models.KeyOf(doc)
		if _, seen := groups[key]; !seen {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], doc)
	}
	return keys, groups
}

// PaginateKeys cắt trang danh sách khóa nhóm sản phẩm.
// page tính từ 1; trang vượt quá cuối danh sách trả về dãy rỗng.
func PaginateKeys(keys []models.ProductKey, page, pageSize int) []models.ProductKey {
	startIdx := (page - 1) * pageSize
	if startIdx >= len(keys) {
		return nil
	}
	endIdx := startIdx + pageSize
	if endIdx > len(keys) {
		endIdx = len(keys)
	}
	return keys[startIdx:endIdx]
}

// BuildRow dựng một dòng báo cáo cho một nhóm sản phẩm: định danh lấy từ bản
// ghi đầu tiên của nhóm (không kiểm tra nhất quán giữa các bản ghi), dãy chỉ số
// theo chu kỳ từ FoldRecords, và phần tổng hợp trên 12 chu kỳ cuối.
func BuildRow(spans []PeriodSpan, docs []models.RawRecord, mode string) dto.ReportRow {
	var key models.ProductKey
	if len(docs) > 0 {
		key = models.KeyOf(docs[0])
	}

	metrics := FoldRecords(spans, docs, mode)

	periods := make([]dto.PeriodMetrics, len(metrics))
	for i, m := range metrics {
		periods[i] = dto.PeriodMetrics{
			Date:            spans[i].Start.Format("2006-01-02"),
			TotalSalesQty:   m.TotalSalesQty,
			AdSalesQty:      m.AdSalesQty,
			NaturalSalesQty: m.NaturalSalesQty,
			AvgPrice:        m.AvgPrice,
			GoodsCost:       m.GoodsCost,
			SalesCost:       m.SalesCost,
			AdSpend:         m.AdSpend,
			SalesAmount:     m.SalesAmount,
			Payout:          m.Payout,
			Profit:          m.Profit,
			Inventory:       m.Inventory,
			AdRatio:         m.AdRatio,
		}
	}

	return dto.ReportRow{
		Category:  optional(key.Category),
		NameCN:    optional(key.NameCN),
		SKU:       optional(key.SKU),
		OzonID:    optional(key.OzonID),
		Platform:  optional(key.Platform),
		Account:   optional(key.Account),
		Summary12: buildSummary(metrics),
		Days:      periods,
	}
}

// buildSummary tổng hợp 12 chu kỳ cuối của dãy chỉ số.
func buildSummary(metrics []BucketMetrics) dto.Summary12D {
	startIdx := 0
	if len(metrics) > rollupWindow {
		startIdx = len(metrics) - rollupWindow
	}

	var summary dto.Summary12D
	for _, m := range metrics[startIdx:] {
		summary.SalesQty += m.TotalSalesQty
		summary.SalesAmount += m.SalesAmount
		summary.AdSalesQty += m.AdSalesQty
		summary.AdSpend += m.AdSpend
	}

	// Tỷ lệ tính từ tổng chưa làm tròn; làm tròn chỉ áp cho số tiền hiển thị
	if summary.SalesAmount > 0 {
		summary.AdRatio = round4(summary.AdSpend / summary.SalesAmount)
	}
	if summary.SalesQty > 0 {
		summary.AdSalesRatio = round4(float64(summary.AdSalesQty) / float64(summary.SalesQty))
	}
	summary.SalesAmount = round2(summary.SalesAmount)
	summary.AdSpend = round2(summary.AdSpend)
	return summary
}

// optional chuyển chuỗi rỗng thành nil để field định danh serialize thành null.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
