package reportsvc

import (
	"context"
	"fmt"
	"time"

	"github.com/yulianggan/ozondailyreport/internal/api/report/calendar"
	"github.com/yulianggan/ozondailyreport/internal/api/report/dto"
)

// Giới hạn cửa sổ báo cáo theo từng mode.
const (
	maxDays   = 62
	maxWeeks  = 52
	maxMonths = 36

	defaultWeeks    = 12
	defaultMonths   = 12
	defaultPageSize = 50
	maxPageSize     = 500
)

// ReportParams là tham số đã chuẩn hóa của một lần dựng báo cáo.
type ReportParams struct {
	End      time.Time // Ngày kết thúc cửa sổ
	Mode     string    // day | week | month, rỗng = day
	Days     *int      // nil = từ đầu tháng của End
	Weeks    *int      // nil = defaultWeeks
	Months   *int      // nil = defaultMonths
	Platform string
	Account  string
	Page     int
	PageSize int
}

// ReportService điều phối toàn bộ pipeline báo cáo: dựng dãy chu kỳ,
// truy xuất dữ liệu, gộp nhóm sản phẩm và phân trang.
type ReportService struct {
	store *ReportStoreService
}

// NewReportService tạo service báo cáo với store mặc định.
func NewReportService() (*ReportService, error) {
	store, err := NewReportStoreService()
	if err != nil {
		return nil, err
	}
	return &ReportService{store: store}, nil
}

// buildSpans dựng dãy chu kỳ theo mode và trả về kèm nhãn chu kỳ.
// Nhãn rỗng ở mode=day để giữ payload gọn theo hợp đồng cũ.
func buildSpans(params ReportParams) ([]PeriodSpan, []string) {
	switch params.Mode {
	case ModeWeek:
		n := clampWindow(params.Weeks, defaultWeeks, maxWeeks)
		weeks := calendar.BuildWeekBuckets(params.End, n)
		spans := make([]PeriodSpan, len(weeks))
		labels := make([]string, len(weeks))
		for i, w := range weeks {
			spans[i] = PeriodSpan{Start: w.Monday, End: w.Sunday}
			labels[i] = w.Monday.Format("2006-01-02") + " ~ " + w.Sunday.Format("2006-01-02")
		}
		return spans, labels

	case ModeMonth:
		n := clampWindow(params.Months, defaultMonths, maxMonths)
		months := calendar.BuildMonthBuckets(params.End, n)
		spans := make([]PeriodSpan, len(months))
		labels := make([]string, len(months))
		for i, m := range months {
			spans[i] = PeriodSpan{Start: m.Start, End: m.End, Label: m.Label}
			labels[i] = fmt.Sprintf("%s (%s ~ %s)", m.Label,
				m.Start.Format("2006-01-02"), m.End.Format("2006-01-02"))
		}
		return spans, labels

	default: // ModeDay
		var start time.Time
		if params.Days == nil {
			start = calendar.MonthStart(params.End)
		} else {
			n := clampWindow(params.Days, 1, maxDays)
			start = params.End.AddDate(0, 0, -(n - 1))
		}
		days := calendar.DaySequence(start, params.End)
		spans := make([]PeriodSpan, len(days))
		for i, d := range days {
			spans[i] = PeriodSpan{Start: d, End: d}
		}
		return spans, []string{}
	}
}

// clampWindow chuẩn hóa kích thước cửa sổ: nil dùng mặc định, ngoài [1, max]
// thì kẹp về biên gần nhất.
func clampWindow(value *int, fallback, max int) int {
	n := fallback
	if value != nil {
		n = *value
	}
	if n < 1 {
		n = 1
	}
	if n > max {
		n = max
	}
	return n
}

// normalizeMode đưa mode về một trong ba giá trị hợp lệ, rỗng thành day.
func normalizeMode(mode string) string {
	switch mode {
	case ModeWeek, ModeMonth:
		return mode
	default:
		return ModeDay
	}
}

// BuildReport thực thi pipeline báo cáo đầy đủ cho một yêu cầu.
func (s *ReportService) BuildReport(ctx context.Context, params ReportParams) (*dto.ReportResponse, error) {
	params.Mode = normalizeMode(params.Mode)

	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = defaultPageSize
	}
	if params.PageSize > maxPageSize {
		params.PageSize = maxPageSize
	}

	spans, labels := buildSpans(params)

	// Khoảng truy xuất phủ toàn bộ dãy chu kỳ, kể cả phần tuần/tháng
	// nằm ngoài ngày kết thúc yêu cầu.
	fetchStart := spans[0].Start
	fetchEnd := spans[len(spans)-1].End

	docs, err := s.store.FetchRecords(ctx, fetchStart, fetchEnd, params.Platform, params.Account)
	if err != nil {
		return nil, err
	}

	keys, groups := GroupRecords(docs)
	total := len(keys)

	pageKeys := PaginateKeys(keys, params.Page, params.PageSize)
	rows := make([]dto.ReportRow, 0, len(pageKeys))
	for _, key := range pageKeys {
		rows = append(rows, BuildRow(spans, groups[key], params.Mode))
	}

	return &dto.ReportResponse{
		Start:        fetchStart.Format("2006-01-02"),
		End:          fetchEnd.Format("2006-01-02"),
		DaysCount:    len(spans),
		PeriodCount:  len(spans),
		Page:         params.Page,
		PageSize:     params.PageSize,
		Total:        total,
		Mode:         params.Mode,
		PeriodLabels: labels,
		Rows:         rows,
	}, nil
}

// DebugReport trả thông tin chẩn đoán cho một cửa sổ báo cáo: filter đã dựng,
// vài biến thể chuỗi ngày đầu tiên, số bản ghi khớp và danh sách khóa của một
// bản ghi mẫu.
func (s *ReportService) DebugReport(ctx context.Context, params ReportParams) (*dto.DebugReportResponse, error) {
	params.Mode = normalizeMode(params.Mode)

	spans, _ := buildSpans(params)
	fetchStart := spans[0].Start
	fetchEnd := spans[len(spans)-1].End

	filter := s.store.BuildFilter(fetchStart, fetchEnd, params.Platform, params.Account)

	strDates := StringDateVariants(fetchStart, fetchEnd)
	if len(strDates) > 5 {
		strDates = strDates[:5]
	}

	total, err := s.store.CountMatched(ctx, fetchStart, fetchEnd, params.Platform, params.Account)
	if err != nil {
		return nil, err
	}

	var sampleKeys []string
	sample, err := s.store.SampleDocument(ctx, fetchStart, fetchEnd, params.Platform, params.Account)
	if err != nil {
		return nil, err
	}
	for k := range sample {
		sampleKeys = append(sampleKeys, k)
	}

	return &dto.DebugReportResponse{
		Start:      fetchStart.Format("2006-01-02"),
		End:        fetchEnd.Format("2006-01-02"),
		Filter:     fmt.Sprintf("%v", filter),
		StrDates:   strDates,
		TotalMatch: total,
		SampleKeys: sampleKeys,
	}, nil
}
