// Package reportsvc - Test dựng filter MongoDB cho khoảng ngày và điều kiện lọc.
package reportsvc

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yulianggan/ozondailyreport/internal/api/report/calendar"
	"github.com/yulianggan/ozondailyreport/internal/api/report/models"
	"github.com/yulianggan/ozondailyreport/internal/global"
)

func TestNewReportStoreService_CollectionChuaDangKy(t *testing.T) {
	oldName := global.MongoDB_ColNames.OzonOperations
	defer func() { global.MongoDB_ColNames.OzonOperations = oldName }()

	// Chưa đăng ký collection → phải trả lỗi ngay, không giữ collection nil
	global.MongoDB_ColNames.OzonOperations = "chua_dang_ky"
	svc, err := NewReportStoreService()
	require.Error(t, err)
	assert.Nil(t, svc)

	// Sau khi đăng ký thì tạo được
	global.MongoDB_ColNames.OzonOperations = "test_ozon_operations"
	_, regErr := global.RegistryCollections.Register("test_ozon_operations", nil)
	require.NoError(t, regErr)

	svc, err = NewReportStoreService()
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestStringDateVariants(t *testing.T) {
	start := time.Date(2024, time.May, 5, 0, 0, 0, 0, time.UTC)
	variants := StringDateVariants(start, start)

	// Một ngày có 4 kiểu ghi, "2024-05-05" và "2024-5-5" khác nhau nên đủ 4
	assert.ElementsMatch(t, []string{"2024/5/5", "2024/05/05", "2024-05-05", "2024-5-5"}, variants)
	assert.True(t, sort.StringsAreSorted(variants), "biến thể chuỗi ngày phải được sắp xếp")

	// Ngày hai chữ số: dạng có padding và không padding trùng nhau, phải loại trùng
	d := time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)
	variants = StringDateVariants(d, d)
	assert.Len(t, variants, 3)
	assert.Contains(t, variants, "2024/05/15")
	assert.Contains(t, variants, "2024-05-15")
}

// Mọi biến thể chuỗi mà filter dùng để fetch đều phải parse lại được về đúng
// ngày đó: một biến thể khớp filter nhưng không parse được sẽ làm bản ghi bị
// fetch về rồi rơi khỏi mọi chu kỳ.
func TestStringDateVariants_DeuParseLaiDuoc(t *testing.T) {
	for _, d := range []time.Time{
		time.Date(2024, time.May, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC),
	} {
		for _, variant := range StringDateVariants(d, d) {
			parsed, err := calendar.ParseAnyDate(variant)
			require.NoError(t, err, "biến thể %q phải parse được", variant)
			assert.True(t, parsed.Equal(d), "biến thể %q parse ra %v, muốn %v", variant, parsed, d)
		}
	}
}

func TestBuildFilter_DieuKienNgay(t *testing.T) {
	s := &ReportStoreService{}
	start := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC)

	filter := s.BuildFilter(start, end, "", "")

	andConds, ok := filter["$and"].([]bson.M)
	require.True(t, ok, "filter phải bọc trong $and")
	require.Len(t, andConds, 1, "không có platform/account thì chỉ còn điều kiện ngày")

	dateConds, ok := andConds[0]["$or"].([]bson.M)
	require.True(t, ok)
	// Mỗi field ngày ứng viên có 2 điều kiện: khoảng BSON date + $in chuỗi
	assert.Len(t, dateConds, len(models.FieldsDate)*2)

	// Điều kiện khoảng của field đầu tiên: [start, end+1d)
	rangeCond, ok := dateConds[0]["日期"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, start, rangeCond["$gte"])
	assert.Equal(t, end.AddDate(0, 0, 1), rangeCond["$lt"])

	// Điều kiện $in của field đầu tiên chứa biến thể chuỗi của cả hai ngày
	inCond, ok := dateConds[1]["日期"].(bson.M)
	require.True(t, ok)
	strDates, ok := inCond["$in"].([]string)
	require.True(t, ok)
	assert.Contains(t, strDates, "2024-05-01")
	assert.Contains(t, strDates, "2024/5/2")
}

func TestBuildFilter_PlatformAccountRegex(t *testing.T) {
	s := &ReportStoreService{}
	start := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	filter := s.BuildFilter(start, start, "Ozon", "shop.01")

	andConds := filter["$and"].([]bson.M)
	require.Len(t, andConds, 3, "ngày + platform + account")

	platformConds, ok := andConds[1]["$or"].([]bson.M)
	require.True(t, ok)
	assert.Len(t, platformConds, len(models.FieldsPlatformFilter))

	re, ok := platformConds[0]["平台"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, `^\s*Ozon\s*$`, re.Pattern)
	assert.Equal(t, "i", re.Options, "so khớp không phân biệt hoa thường")

	// Ký tự đặc biệt trong giá trị phải được escape
	accountConds := andConds[2]["$or"].([]bson.M)
	re, ok = accountConds[0]["账号"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, `^\s*shop\.01\s*$`, re.Pattern)
}
