// Package reportsvc - Test dựng dãy chu kỳ và chuẩn hóa tham số báo cáo.
package reportsvc

import (
	"testing"
	"time"
)

func intPtr(n int) *int { return &n }

func TestBuildSpans_ModeDay_MacDinhTuDauThang(t *testing.T) {
	end := time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)
	spans, labels := buildSpans(ReportParams{End: end, Mode: ModeDay})

	if len(spans) != 15 {
		t.Fatalf("days nil phải chạy từ đầu tháng: có %d chu kỳ, muốn 15", len(spans))
	}
	if !spans[0].Start.Equal(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("chu kỳ đầu = %v, muốn 2024-05-01", spans[0].Start)
	}
	if !spans[14].Start.Equal(end) {
		t.Errorf("chu kỳ cuối = %v, muốn %v", spans[14].Start, end)
	}
	if len(labels) != 0 {
		t.Errorf("mode=day không có nhãn chu kỳ, có %d", len(labels))
	}
}

func TestBuildSpans_ModeDay_ChiDinhSoNgay(t *testing.T) {
	end := time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)

	spans, _ := buildSpans(ReportParams{End: end, Mode: ModeDay, Days: intPtr(7)})
	if len(spans) != 7 {
		t.Fatalf("days=7 trả về %d chu kỳ", len(spans))
	}
	if !spans[0].Start.Equal(time.Date(2024, time.May, 9, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("chu kỳ đầu = %v, muốn end-(7-1)=2024-05-09", spans[0].Start)
	}

	// Vượt trần thì kẹp
	spans, _ = buildSpans(ReportParams{End: end, Mode: ModeDay, Days: intPtr(999)})
	if len(spans) != maxDays {
		t.Errorf("days=999 phải kẹp về %d, có %d", maxDays, len(spans))
	}
	spans, _ = buildSpans(ReportParams{End: end, Mode: ModeDay, Days: intPtr(0)})
	if len(spans) != 1 {
		t.Errorf("days=0 phải kẹp về 1, có %d", len(spans))
	}
}

func TestBuildSpans_ModeWeek(t *testing.T) {
	end := time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC) // thứ Tư
	spans, labels := buildSpans(ReportParams{End: end, Mode: ModeWeek})

	if len(spans) != defaultWeeks {
		t.Fatalf("weeks nil phải dùng mặc định %d, có %d", defaultWeeks, len(spans))
	}
	last := spans[len(spans)-1]
	if !last.Start.Equal(time.Date(2024, time.May, 13, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("tuần cuối bắt đầu %v, muốn thứ Hai 2024-05-13", last.Start)
	}
	if labels[len(labels)-1] != "2024-05-13 ~ 2024-05-19" {
		t.Errorf("nhãn tuần cuối = %q", labels[len(labels)-1])
	}
}

func TestBuildSpans_ModeMonth(t *testing.T) {
	end := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
	spans, labels := buildSpans(ReportParams{End: end, Mode: ModeMonth, Months: intPtr(2)})

	if len(spans) != 2 {
		t.Fatalf("months=2 trả về %d chu kỳ", len(spans))
	}
	if spans[0].Label != "2024-02" || spans[1].Label != "2024-03" {
		t.Errorf("nhãn chu kỳ = %q, %q, muốn 2024-02, 2024-03", spans[0].Label, spans[1].Label)
	}
	if labels[0] != "2024-02 (2024-02-01 ~ 2024-02-29)" {
		t.Errorf("nhãn tháng đầu = %q", labels[0])
	}
}

func TestNormalizeMode(t *testing.T) {
	cases := map[string]string{
		"":          ModeDay,
		"day":       ModeDay,
		"week":      ModeWeek,
		"month":     ModeMonth,
		"quarterly": ModeDay, // giá trị lạ rơi về day
	}
	for in, want := range cases {
		if got := normalizeMode(in); got != want {
			t.Errorf("normalizeMode(%q) = %q, muốn %q", in, got, want)
		}
	}
}

func TestClampWindow(t *testing.T) {
	if got := clampWindow(nil, 12, 52); got != 12 {
		t.Errorf("nil phải dùng mặc định 12, có %d", got)
	}
	if got := clampWindow(intPtr(100), 12, 52); got != 52 {
		t.Errorf("100 phải kẹp về 52, có %d", got)
	}
	if got := clampWindow(intPtr(-3), 12, 52); got != 1 {
		t.Errorf("-3 phải kẹp về 1, có %d", got)
	}
}
