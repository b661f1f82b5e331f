package reportsvc

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yulianggan/ozondailyreport/internal/api/report/calendar"
	"github.com/yulianggan/ozondailyreport/internal/api/report/models"
	"github.com/yulianggan/ozondailyreport/internal/common"
	"github.com/yulianggan/ozondailyreport/internal/global"
	"github.com/yulianggan/ozondailyreport/internal/logger"
)

// ReportStoreService truy xuất dữ liệu vận hành thô từ MongoDB.
// Dữ liệu nguồn được import thủ công nên trường ngày có thể là BSON date hoặc
// chuỗi với nhiều kiểu định dạng khác nhau; filter phải phủ cả hai dạng.
type ReportStoreService struct {
	collection *mongo.Collection
	log        *logrus.Logger
}

// NewReportStoreService tạo service truy xuất dữ liệu báo cáo,
// lấy collection từ registry toàn cục. Trả lỗi nếu collection chưa được
// đăng ký (boot sai thứ tự) thay vì giữ collection nil rồi panic khi Find.
func NewReportStoreService() (*ReportStoreService, error) {
	colName := global.MongoDB_ColNames.OzonOperations
	coll, exist := global.RegistryCollections.Get(colName)
	if !exist {
		return nil, common.NewError(common.ErrCodeDatabaseConnection,
			fmt.Sprintf("collection %s chưa được đăng ký vào registry", colName),
			common.StatusInternalServerError, nil)
	}
	return &ReportStoreService{
		collection: coll,
		log:        logger.GetAppLogger(),
	}, nil
}

// StringDateVariants sinh mọi biến thể chuỗi của các ngày trong khoảng
// [start, end] theo các định dạng xuất hiện trong dữ liệu nguồn:
// "2006/1/2", "2006/01/02", "2006-01-02", "2006-1-2".
// Kết quả được sắp xếp và loại trùng.
func StringDateVariants(start, end time.Time) []string {
	seen := make(map[string]struct{})
	for _, d := range calendar.DaySequence(start, end) {
		y, m, day := d.Year(), int(d.Month()), d.Day()
		variants := []string{
			fmt.Sprintf("%d/%d/%d", y, m, day),
			fmt.Sprintf("%d/%02d/%02d", y, m, day),
			fmt.Sprintf("%d-%02d-%02d", y, m, day),
			fmt.Sprintf("%d-%d-%d", y, m, day),
		}
		for _, v := range variants {
			seen[v] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// trimmedMatchRegex tạo regex so khớp chính xác giá trị, bỏ qua khoảng trắng
// đầu/cuối và không phân biệt hoa thường.
func trimmedMatchRegex(value string) primitive.Regex {
	return primitive.Regex{
		Pattern: `^\s*` + regexp.QuoteMeta(value) + `\s*$`,
		Options: "i",
	}
}

// BuildFilter dựng filter MongoDB cho khoảng ngày [start, end] kèm điều kiện
// platform/account tùy chọn. Điều kiện ngày là $or trên mọi trường ngày ứng
// viên, mỗi trường gồm cả khoảng BSON date lẫn $in trên các biến thể chuỗi.
func (s *ReportStoreService) BuildFilter(start, end time.Time, platform, account string) bson.M {
	endExclusive := end.AddDate(0, 0, 1)
	strDates := StringDateVariants(start, end)

	var dateConds []bson.M
	for _, field := range models.FieldsDate {
		dateConds = append(dateConds, bson.M{field: bson.M{"$gte": start, "$lt": endExclusive}})
		dateConds = append(dateConds, bson.M{field: bson.M{"$in": strDates}})
	}

	andConds := []bson.M{{"$or": dateConds}}

	if platform != "" {
		var conds []bson.M
		for _, field := range models.FieldsPlatformFilter {
			conds = append(conds, bson.M{field: trimmedMatchRegex(platform)})
		}
		andConds = append(andConds, bson.M{"$or": conds})
	}
	if account != "" {
		var conds []bson.M
		for _, field := range models.FieldsAccountFilter {
			conds = append(conds, bson.M{field: trimmedMatchRegex(account)})
		}
		andConds = append(andConds, bson.M{"$or": conds})
	}

	return bson.M{"$and": andConds}
}

// FetchRecords lấy toàn bộ bản ghi khớp khoảng ngày và điều kiện lọc.
// Lỗi truy vấn được trả nguyên trạng cho tầng trên xử lý.
func (s *ReportStoreService) FetchRecords(ctx context.Context, start, end time.Time, platform, account string) ([]models.RawRecord, error) {
	filter := s.BuildFilter(start, end, platform, account)

	began := time.Now()
	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var docs []models.RawRecord
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	s.log.WithFields(logrus.Fields{
		"start":    start.Format("2006-01-02"),
		"end":      end.Format("2006-01-02"),
		"platform": platform,
		"account":  account,
		"matched":  len(docs),
		"took":     time.Since(began).String(),
	}).Debug("Đã truy xuất dữ liệu báo cáo từ MongoDB")

	return docs, nil
}

// CountMatched đếm số bản ghi khớp filter, phục vụ endpoint chẩn đoán.
func (s *ReportStoreService) CountMatched(ctx context.Context, start, end time.Time, platform, account string) (int64, error) {
	filter := s.BuildFilter(start, end, platform, account)
	count, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return count, nil
}

// SampleDocument lấy một bản ghi mẫu khớp filter, trả về nil nếu không có.
func (s *ReportStoreService) SampleDocument(ctx context.Context, start, end time.Time, platform, account string) (models.RawRecord, error) {
	filter := s.BuildFilter(start, end, platform, account)

	var doc models.RawRecord
	err := s.collection.FindOne(ctx, filter, options.FindOne()).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return doc, nil
}
