package reportsvc

import (
	"math"
	"time"

	"github.com/yulianggan/ozondailyreport/internal/api/report/models"
)

// Mode xác định độ rộng chu kỳ của báo cáo.
const (
	ModeDay   = "day"
	ModeWeek  = "week"
	ModeMonth = "month"
)

// PeriodSpan là biên của một chu kỳ trong dãy báo cáo. Với mode=day thì
// Start == End và Label rỗng.
type PeriodSpan struct {
	Start time.Time
	End   time.Time
	Label string
}

// Contains kiểm tra ngày d có nằm trong chu kỳ không (bao gồm cả hai biên).
func (s PeriodSpan) Contains(d time.Time) bool {
	return !d.Before(s.Start) && !d.After(s.End)
}

// BucketMetrics là accumulator chỉ số của một nhóm sản phẩm trong một chu kỳ.
// Mỗi lượt gộp tạo accumulator mới theo từng (nhóm × chu kỳ), không chia sẻ
// giữa các request.
type BucketMetrics struct {
	TotalSalesQty   int
	AdSalesQty      int
	NaturalSalesQty int
	AvgPrice        float64
	GoodsCost       float64
	SalesCost       float64
	AdSpend         float64
	SalesAmount     float64
	Payout          float64
	Inventory       int
	Profit          float64
	AdRatio         float64
}

// extractRecordMetrics chuẩn hóa một bản ghi thô thành bộ chỉ số của chính nó.
func extractRecordMetrics(doc models.RawRecord) BucketMetrics {
	totalQty := extractCount(doc, models.FieldsTotalQty)
	tplQty := extractCount(doc, models.FieldsTemplateQty)
	searchQty := extractCount(doc, models.FieldsSearchQty)

	tplSpend := extractAmount(doc, models.FieldsTemplateSpend)
	searchSpend := extractAmount(doc, models.FieldsSearchSpend)

	return BucketMetrics{
		TotalSalesQty:   totalQty,
		AdSalesQty:      tplQty + searchQty,
		NaturalSalesQty: extractNaturalQty(doc, totalQty, tplQty, searchQty),
		AvgPrice:        extractAmount(doc, models.FieldsAvgPrice),
		GoodsCost:       extractAmount(doc, models.FieldsGoodsCost),
		SalesCost:       extractAmount(doc, models.FieldsSalesCost),
		AdSpend:         tplSpend + searchSpend,
		SalesAmount:     extractAmount(doc, models.FieldsSalesAmount),
		Payout:          extractAmount(doc, models.FieldsPayout),
		Inventory:       extractCount(doc, models.FieldsInventory),
	}
}

// FoldRecords gộp các bản ghi của MỘT nhóm sản phẩm vào dãy chu kỳ, trả về một
// BucketMetrics cho mỗi chu kỳ (cùng thứ tự với spans).
//
// Mode=day: mỗi bản ghi ghi đè toàn bộ chỉ số của ngày tương ứng — dữ liệu chuẩn
// mỗi ngày một bản ghi, bản ghi trùng ngày thì bản sau thắng, không cộng dồn.
// Mode=week/month: sản lượng, doanh thu, chi phí, hồi tiền cộng dồn; tồn kho
// ghi đè (bản ghi sau thắng theo đúng thứ tự store trả về, không sort lại).
// Bản ghi không đọc được ngày hoặc ngày nằm ngoài mọi chu kỳ bị bỏ qua.
//
// Các chỉ số suy diễn (profit, ad_ratio, avg_price tuần/tháng) chỉ được tính
// một lần ở bước chốt sau khi gộp xong, không tính dồn từng bản ghi.
func FoldRecords(spans []PeriodSpan, docs []models.RawRecord, mode string) []BucketMetrics {
	metrics := make([]BucketMetrics, len(spans))

	for _, doc := range docs {
		d, ok := recordDate(doc)
		if !ok {
			continue
		}
		idx := locateSpan(spans, d)
		if idx < 0 {
			continue
		}

		m := extractRecordMetrics(doc)
		if mode == ModeDay {
			metrics[idx] = m
			continue
		}

		acc := &metrics[idx]
		acc.TotalSalesQty += m.TotalSalesQty
		acc.AdSalesQty += m.AdSalesQty
		acc.NaturalSalesQty += m.NaturalSalesQty
		acc.GoodsCost += m.GoodsCost
		acc.SalesCost += m.SalesCost
		acc.AdSpend += m.AdSpend
		acc.SalesAmount += m.SalesAmount
		acc.Payout += m.Payout
		acc.Inventory = m.Inventory
	}

	for i := range metrics {
		finalizeBucket(&metrics[i], mode)
	}
	return metrics
}

// locateSpan tìm chu kỳ chứa ngày d. Quét tuần tự vì số chu kỳ nhỏ
// (tối đa 62 ngày / 52 tuần / 36 tháng).
func locateSpan(spans []PeriodSpan, d time.Time) int {
	for i, s := range spans {
		if s.Contains(d) {
			return i
		}
	}
	return -1
}

// finalizeBucket tính các chỉ số suy diễn của một chu kỳ sau khi gộp xong.
// Với mode tuần/tháng, avg_price được tính lại từ tổng doanh thu / tổng sản
// lượng thay vì lấy từ bản ghi nguồn.
func finalizeBucket(m *BucketMetrics, mode string) {
	if mode != ModeDay {
		if m.TotalSalesQty > 0 {
			m.AvgPrice = round2(m.SalesAmount / float64(m.TotalSalesQty))
		} else {
			m.AvgPrice = 0
		}
	}

	m.Profit = round2(m.SalesAmount - m.GoodsCost - m.SalesCost - m.AdSpend)
	if m.SalesAmount > 0 {
		m.AdRatio = round4(m.AdSpend / m.SalesAmount)
	} else {
		m.AdRatio = 0
	}
}

// round2 làm tròn 2 chữ số thập phân (tiền).
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round4 làm tròn 4 chữ số thập phân (tỷ lệ).
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
