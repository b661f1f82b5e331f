// Package reportsvc - Test gộp nhóm sản phẩm, tổng hợp 12 chu kỳ cuối và phân trang.
package reportsvc

import (
	"fmt"
	"testing"
	"time"

	"github.com/yulianggan/ozondailyreport/internal/api/report/models"
)

func TestGroupRecords_GiuThuTuXuatHienDauTien(t *testing.T) {
	docs := []models.RawRecord{
		{"Ozon ID": "B", "日期": "2024-05-01"},
		{"Ozon ID": "A", "日期": "2024-05-01"},
		{"Ozon ID": "B", "日期": "2024-05-02"},
	}

	keys, groups := GroupRecords(docs)
	if len(keys) != 2 {
		t.Fatalf("GroupRecords trả về %d khóa, muốn 2", len(keys))
	}
	if keys[0].OzonID != "B" || keys[1].OzonID != "A" {
		t.Errorf("thứ tự khóa = %v, muốn B trước A (theo lần xuất hiện đầu)", keys)
	}
	if len(groups[keys[0]]) != 2 {
		t.Errorf("nhóm B có %d bản ghi, muốn 2", len(groups[keys[0]]))
	}
}

func TestGroupRecords_KhoaTachTheoPlatformAccount(t *testing.T) {
	docs := []models.RawRecord{
		{"Ozon ID": "X", "平台": "ozon", "账号": "acc1"},
		{"Ozon ID": "X", "平台": "ozon", "账号": "acc2"},
	}
	keys, _ := GroupRecords(docs)
	if len(keys) != 2 {
		t.Errorf("cùng Ozon ID khác account phải thành 2 nhóm, có %d", len(keys))
	}
}

func TestPaginateKeys(t *testing.T) {
	keys := make([]models.ProductKey, 5)
	for i := range keys {
		keys[i] = models.ProductKey{OzonID: fmt.Sprintf("p%d", i)}
	}

	page2 := PaginateKeys(keys, 2, 2)
	if len(page2) != 2 || page2[0].OzonID != "p2" {
		t.Errorf("trang 2 size 2 = %v, muốn [p2 p3]", page2)
	}

	// Trang cuối thiếu phần tử
	page3 := PaginateKeys(keys, 3, 2)
	if len(page3) != 1 || page3[0].OzonID != "p4" {
		t.Errorf("trang 3 size 2 = %v, muốn [p4]", page3)
	}

	// Trang vượt quá → rỗng, không lỗi
	if got := PaginateKeys(keys, 4, 2); len(got) != 0 {
		t.Errorf("trang vượt quá phải rỗng, có %d phần tử", len(got))
	}
}

func TestBuildRow_TongHop12ChuKyCuoi(t *testing.T) {
	// 20 ngày, mỗi ngày bán 1 sản phẩm giá 10 → phần tổng hợp chỉ lấy 12 ngày cuối
	start := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	spans := daySpans(start, 20)

	var docs []models.RawRecord
	for i := 0; i < 20; i++ {
		docs = append(docs, models.RawRecord{
			"Ozon ID": "p1",
			"日期":      start.AddDate(0, 0, i).Format("2006-01-02"),
			"总销量":     1,
			"总销售额":    10.0,
			"模板销量":    1,
			"总模板花费":   2.0,
		})
	}

	row := BuildRow(spans, docs, ModeDay)
	if len(row.Days) != 20 {
		t.Fatalf("dãy chu kỳ có %d phần tử, muốn 20", len(row.Days))
	}
	if row.Summary12.SalesQty != 12 {
		t.Errorf("summary sales_qty = %d, muốn 12 (chỉ 12 chu kỳ cuối)", row.Summary12.SalesQty)
	}
	if row.Summary12.SalesAmount != 120 {
		t.Errorf("summary sales_amount = %v, muốn 120", row.Summary12.SalesAmount)
	}
	if row.Summary12.AdSpend != 24 {
		t.Errorf("summary ad_spend = %v, muốn 24", row.Summary12.AdSpend)
	}
	if row.Summary12.AdRatio != 0.2 {
		t.Errorf("summary ad_ratio = %v, muốn 24/120=0.2", row.Summary12.AdRatio)
	}
	if row.Summary12.AdSalesRatio != 1 {
		t.Errorf("summary ad_sales_ratio = %v, muốn 12/12=1", row.Summary12.AdSalesRatio)
	}
}

// Tỷ lệ trong phần tổng hợp tính từ tổng chưa làm tròn: làm tròn tiền về 2 chữ
// số trước khi chia có thể lệch chữ số thứ 3-4 của tỷ lệ.
func TestBuildSummary_TyLeTinhTruocKhiLamTronTien(t *testing.T) {
	metrics := []BucketMetrics{
		{AdSpend: 0.111},
		{AdSpend: 0.111},
		{AdSpend: 0.111},
		{SalesAmount: 1.0},
	}

	summary := buildSummary(metrics)
	// 0.333/1.0 = 0.333; nếu chia sau khi round2 (0.33/1.0) sẽ ra 0.33
	if summary.AdRatio != 0.333 {
		t.Errorf("ad_ratio = %v, muốn 0.333 (chia trước khi làm tròn tiền)", summary.AdRatio)
	}
	if summary.AdSpend != 0.33 {
		t.Errorf("ad_spend hiển thị = %v, muốn làm tròn về 0.33", summary.AdSpend)
	}
}

func TestBuildRow_DinhDanhTuBanGhiDau(t *testing.T) {
	spans := daySpans(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), 1)
	docs := []models.RawRecord{
		{"日期": "2024-05-01", "Ozon ID": "p9", "中文名称": "测试产品"},
	}

	row := BuildRow(spans, docs, ModeDay)
	if row.OzonID == nil || *row.OzonID != "p9" {
		t.Errorf("ozon_id = %v, muốn p9", row.OzonID)
	}
	if row.NameCN == nil || *row.NameCN != "测试产品" {
		t.Errorf("name_cn = %v, muốn 测试产品", row.NameCN)
	}
	// Field định danh vắng mặt serialize thành null
	if row.SKU != nil {
		t.Errorf("sku vắng mặt phải là nil, có %v", *row.SKU)
	}
	if row.Days[0].Date != "2024-05-01" {
		t.Errorf("date của chu kỳ = %q, muốn 2024-05-01", row.Days[0].Date)
	}
}
