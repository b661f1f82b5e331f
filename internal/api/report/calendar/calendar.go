// Package calendar chứa các hàm thuần túy xử lý lịch cho báo cáo:
// parse ngày nhiều định dạng, tính biên tuần ISO / tháng, sinh dãy ngày
// và dựng danh sách chu kỳ tuần/tháng neo theo ngày kết thúc.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// DateLayouts là danh sách các định dạng ngày được chấp nhận, thử theo thứ tự.
// Dữ liệu nguồn ghi ngày không thống nhất (có/không zero-padding, có giờ),
// nên parse phải thử lần lượt và lấy kết quả đầu tiên thành công.
var DateLayouts = []string{
	"2006-01-02",
	"2006/1/2",
	"2006/01/02",
	"2006-01-02T15:04:05",
	"2006-1-2",
}

// ErrUnsupportedDateFormat trả về khi chuỗi ngày không khớp định dạng nào.
var ErrUnsupportedDateFormat = errors.New("unsupported date format")

// WeekRange là một tuần ISO, xác định bởi cặp thứ Hai / Chủ Nhật.
type WeekRange struct {
	Monday time.Time
	Sunday time.Time
}

// MonthRange là một tháng dương lịch, xác định bởi ngày đầu / ngày cuối và nhãn "YYYY-MM".
type MonthRange struct {
	Start time.Time
	End   time.Time
	Label string
}

// DateOf chuẩn hóa một thời điểm về 00:00:00 UTC của ngày đó.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseAnyDate parse chuỗi ngày theo danh sách DateLayouts, trả về ngày đầu tiên
// parse thành công (đã chuẩn hóa về 00:00 UTC). Trả về ErrUnsupportedDateFormat
// kèm chuỗi gốc nếu không định dạng nào khớp.
func ParseAnyDate(text string) (time.Time, error) {
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return DateOf(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %s", ErrUnsupportedDateFormat, text)
}

// MonthStart trả về ngày đầu tiên của tháng chứa d.
func MonthStart(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthEnd trả về ngày cuối cùng của tháng chứa d.
// time.Date tự chuẩn hóa tháng 13 về tháng 1 năm sau nên tháng 12 vẫn đúng.
func MonthEnd(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month()+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
}

// ISOWeekBounds trả về thứ Hai và Chủ Nhật của tuần ISO chứa d
// (thứ Hai = 1 .. Chủ Nhật = 7).
func ISOWeekBounds(d time.Time) (monday, sunday time.Time) {
	d = DateOf(d)
	weekday := int(d.Weekday())
	if weekday == 0 {
		weekday = 7 // time.Sunday = 0, theo ISO là 7
	}
	monday = d.AddDate(0, 0, -(weekday - 1))
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday
}

// DaySequence sinh dãy ngày liên tiếp từ start đến end (bao gồm cả hai đầu),
// tăng dần. Trả về dãy rỗng nếu start > end.
func DaySequence(start, end time.Time) []time.Time {
	start = DateOf(start)
	end = DateOf(end)

	var days []time.Time
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		days = append(days, cur)
	}
	return days
}

// BuildWeekBuckets dựng danh sách n tuần ISO, cũ nhất trước, tuần cuối cùng
// là tuần chứa end; mỗi tuần trước đó lùi đúng 7 ngày.
func BuildWeekBuckets(end time.Time, n int) []WeekRange {
	if n <= 0 {
		return nil
	}

	lastMonday, _ := ISOWeekBounds(end)
	weeks := make([]WeekRange, 0, n)
	for i := n - 1; i >= 0; i-- {
		monday := lastMonday.AddDate(0, 0, -7*i)
		weeks = append(weeks, WeekRange{Monday: monday, Sunday: monday.AddDate(0, 0, 6)})
	}
	return weeks
}

// BuildMonthBuckets dựng danh sách n tháng dương lịch, cũ nhất trước, tháng
// cuối cùng là tháng chứa end. Khi lùi về tháng trước, neo tại ngày 15 của
// tháng hiện tại rồi mới trừ một tháng: số ngày các tháng không bằng nhau
// (29/30/31) nên lùi từ ngày cuối tháng có thể nhảy cóc qua tháng (31/01 trừ
// một tháng chuẩn hóa thành 02/03), còn ngày 15 thì luôn an toàn.
func BuildMonthBuckets(end time.Time, n int) []MonthRange {
	if n <= 0 {
		return nil
	}

	months := make([]MonthRange, n)
	cur := DateOf(end)
	for i := n - 1; i >= 0; i-- {
		months[i] = MonthRange{
			Start: MonthStart(cur),
			End:   MonthEnd(cur),
			Label: cur.Format("2006-01"),
		}
		anchor := time.Date(cur.Year(), cur.Month(), 15, 0, 0, 0, 0, time.UTC)
		cur = anchor.AddDate(0, -1, 0)
	}
	return months
}
