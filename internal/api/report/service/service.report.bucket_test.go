// Package reportsvc - Test gộp bản ghi vào dãy chu kỳ: ghi đè ngày, cộng dồn tuần/tháng.
package reportsvc

import (
	"testing"
	"time"

	"github.com/yulianggan/ozondailyreport/internal/api/report/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daySpans(start time.Time, n int) []PeriodSpan {
	spans := make([]PeriodSpan, n)
	for i := 0; i < n; i++ {
		d := start.AddDate(0, 0, i)
		spans[i] = PeriodSpan{Start: d, End: d}
	}
	return spans
}

func TestFoldRecords_ModeDay_GhiDeKhongCongDon(t *testing.T) {
	spans := daySpans(day(2024, time.May, 1), 3)
	docs := []models.RawRecord{
		{"日期": "2024-05-02", "总销量": 10, "总销售额": 100.0},
		// Bản ghi trùng ngày: bản sau thắng toàn bộ, không cộng
		{"日期": "2024-05-02", "总销量": 4, "总销售额": 40.0},
	}

	metrics := FoldRecords(spans, docs, ModeDay)
	if len(metrics) != 3 {
		t.Fatalf("FoldRecords trả về %d chu kỳ, muốn 3", len(metrics))
	}
	if metrics[1].TotalSalesQty != 4 || metrics[1].SalesAmount != 40 {
		t.Errorf("ngày trùng phải lấy bản ghi sau: qty=%d amount=%v, muốn 4/40",
			metrics[1].TotalSalesQty, metrics[1].SalesAmount)
	}
	if metrics[0].TotalSalesQty != 0 || metrics[2].TotalSalesQty != 0 {
		t.Error("các ngày không có bản ghi phải giữ giá trị 0")
	}
}

func TestFoldRecords_ModeWeek_CongDonVaTinhLaiGiaTrungBinh(t *testing.T) {
	spans := []PeriodSpan{{Start: day(2024, time.May, 13), End: day(2024, time.May, 19)}}
	docs := []models.RawRecord{
		{"日期": "2024-05-13", "总销量": 2, "总销售额": 100.0, "均价": 50.0, "库存数量": 30},
		{"日期": "2024-05-15", "总销量": 3, "总销售额": 150.0, "均价": 50.0, "库存数量": 25},
	}

	metrics := FoldRecords(spans, docs, ModeWeek)
	m := metrics[0]
	if m.TotalSalesQty != 5 {
		t.Errorf("sản lượng tuần = %d, muốn 2+3=5", m.TotalSalesQty)
	}
	if m.SalesAmount != 250 {
		t.Errorf("doanh thu tuần = %v, muốn 100+150=250", m.SalesAmount)
	}
	// avg_price tính lại sau khi gộp, không lấy từ bản ghi nguồn
	if m.AvgPrice != 50 {
		t.Errorf("avg_price tuần = %v, muốn 250/5=50", m.AvgPrice)
	}
	// Tồn kho ghi đè theo bản ghi sau cùng
	if m.Inventory != 25 {
		t.Errorf("tồn kho tuần = %d, muốn giá trị bản ghi cuối 25", m.Inventory)
	}
}

func TestFoldRecords_BoQuaBanGhiNgoaiChuKy(t *testing.T) {
	spans := daySpans(day(2024, time.May, 1), 2)
	docs := []models.RawRecord{
		{"日期": "2024-04-30", "总销量": 9}, // trước cửa sổ
		{"日期": "2024-05-03", "总销量": 9}, // sau cửa sổ
		{"总销量": 9},                      // không có ngày
		{"日期": "???", "总销量": 9},         // ngày không parse được
	}
	metrics := FoldRecords(spans, docs, ModeDay)
	for i, m := range metrics {
		if m.TotalSalesQty != 0 {
			t.Errorf("chu kỳ %d phải rỗng, có qty=%d", i, m.TotalSalesQty)
		}
	}
}

// Bản ghi ghi ngày dạng gạch ngang không padding (kiểu export cũ) phải được
// gán vào chu kỳ như mọi định dạng khác, không bị lặng lẽ bỏ qua.
func TestFoldRecords_NgayGachNgangKhongPadding(t *testing.T) {
	spans := daySpans(day(2024, time.May, 5), 1)
	docs := []models.RawRecord{
		{"日期": "2024-5-5", "总销量": 6, "总销售额": 60.0},
	}

	metrics := FoldRecords(spans, docs, ModeDay)
	if metrics[0].TotalSalesQty != 6 || metrics[0].SalesAmount != 60 {
		t.Errorf("bản ghi ngày 2024-5-5 phải vào chu kỳ 2024-05-05: qty=%d amount=%v, muốn 6/60",
			metrics[0].TotalSalesQty, metrics[0].SalesAmount)
	}
}

func TestFinalizeBucket_ProfitVaAdRatio(t *testing.T) {
	m := BucketMetrics{
		SalesAmount: 1000,
		GoodsCost:   300,
		SalesCost:   100,
		AdSpend:     150,
	}
	finalizeBucket(&m, ModeDay)

	if m.Profit != 450 {
		t.Errorf("profit = %v, muốn 1000-300-100-150=450", m.Profit)
	}
	if m.AdRatio != 0.15 {
		t.Errorf("ad_ratio = %v, muốn 150/1000=0.15", m.AdRatio)
	}

	// Doanh thu 0 → ad_ratio phải là 0, không chia cho 0
	zero := BucketMetrics{AdSpend: 50}
	finalizeBucket(&zero, ModeWeek)
	if zero.AdRatio != 0 {
		t.Errorf("ad_ratio với doanh thu 0 = %v, muốn 0", zero.AdRatio)
	}
	if zero.AvgPrice != 0 {
		t.Errorf("avg_price với sản lượng 0 = %v, muốn 0", zero.AvgPrice)
	}
}

func TestFoldRecords_GoiLaiChoKetQuaGiongNhau(t *testing.T) {
	spans := daySpans(day(2024, time.May, 1), 2)
	docs := []models.RawRecord{
		{"日期": "2024-05-01", "总销量": 3, "总销售额": 90.0},
	}

	first := FoldRecords(spans, docs, ModeDay)
	second := FoldRecords(spans, docs, ModeDay)
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("chu kỳ %d: hai lần gộp cho kết quả khác nhau: %+v vs %+v", i, first[i], second[i])
		}
	}
}
