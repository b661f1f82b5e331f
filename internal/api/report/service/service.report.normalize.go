// Package reportsvc dựng báo cáo vận hành theo chu kỳ từ dữ liệu thô trong MongoDB.
package reportsvc

import (
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yulianggan/ozondailyreport/internal/api/report/calendar"
	"github.com/yulianggan/ozondailyreport/internal/api/report/models"
)

// firstPresent trả về giá trị của field ứng viên đầu tiên có mặt và khác nil.
// "Có mặt" là tiêu chí duy nhất: giá trị 0 hay chuỗi rỗng vẫn thắng các ứng viên sau.
func firstPresent(doc models.RawRecord, candidates []string) (interface{}, bool) {
	for _, field := range candidates {
		if v, ok := doc[field]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// extractAmount đọc một chỉ số tiền/số thực từ bản ghi theo danh sách field ứng viên.
// Giá trị dạng chuỗi được bỏ dấu phẩy ngăn cách hàng nghìn trước khi parse.
// Không bao giờ trả lỗi: field vắng mặt hoặc parse thất bại đều cho 0.
func extractAmount(doc models.RawRecord, candidates []string) float64 {
	v, ok := firstPresent(doc, candidates)
	if !ok {
		return 0
	}

	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case primitive.Decimal128:
		if f, err := strconv.ParseFloat(n.String(), 64); err == nil {
			return f
		}
		return 0
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(n), ",", "")
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
		return 0
	default:
		return 0
	}
}

// extractCount đọc một chỉ số nguyên (sản lượng, tồn kho) theo danh sách field ứng viên.
// Chuỗi số thập phân được parse float rồi cắt phần lẻ. Mọi thất bại cho 0.
func extractCount(doc models.RawRecord, candidates []string) int {
	v, ok := firstPresent(doc, candidates)
	if !ok {
		return 0
	}

	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float64:
		return int(n)
	case float32:
		return int(n)
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(n), ",", "")
		if i, err := strconv.Atoi(s); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f)
		}
		return 0
	default:
		return 0
	}
}

// extractNaturalQty tính sản lượng tự nhiên của một bản ghi.
// Nếu export ghi sẵn field sản lượng tự nhiên thì dùng giá trị đó (kể cả 0);
// nếu không, suy ra = tổng - template - search, chặn dưới tại 0.
func extractNaturalQty(doc models.RawRecord, totalQty, tplQty, searchQty int) int {
	if _, ok := firstPresent(doc, models.FieldsNaturalQty); ok {
		return extractCount(doc, models.FieldsNaturalQty)
	}
	natural := totalQty - tplQty - searchQty
	if natural < 0 {
		natural = 0
	}
	return natural
}

// recordDate đọc ngày của bản ghi: chấp nhận giá trị date/datetime gốc của
// MongoDB hoặc chuỗi theo các định dạng trong calendar.DateLayouts.
// Trả về false khi field vắng mặt hoặc không parse được; bản ghi đó sẽ bị
// bỏ qua khi gán vào chu kỳ (không phải lỗi).
func recordDate(doc models.RawRecord) (time.Time, bool) {
	v, ok := firstPresent(doc, models.FieldsDate)
	if !ok {
		return time.Time{}, false
	}

	switch d := v.(type) {
	case primitive.DateTime:
		return calendar.DateOf(d.Time()), true
	case time.Time:
		return calendar.DateOf(d), true
	case string:
		parsed, err := calendar.ParseAnyDate(strings.TrimSpace(d))
		if err != nil {
			return time.Time{}, false
		}
		return parsed, true
	default:
		return time.Time{}, false
	}
}
