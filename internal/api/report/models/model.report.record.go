package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// RawRecord là một document vận hành thô đọc từ MongoDB.
// Schema không cố định nên giữ nguyên dạng map, việc đọc giá trị đi qua
// các hàm extract của service với danh sách field ứng viên.
type RawRecord = bson.M

// ProductKey là khóa định danh một nhóm sản phẩm: các bản ghi cùng bộ
// (Ozon ID, tên, thể loại, SKU, platform, account) gộp thành một dòng báo cáo.
// So sánh bằng đẳng thức tuple, phân biệt hoa thường, không chuẩn hóa gì thêm.
type ProductKey struct {
	OzonID   string
	NameCN   string
	Category string
	SKU      string
	Platform string
	Account  string
}

// KeyOf trích ProductKey từ một bản ghi. Field vắng mặt cho chuỗi rỗng;
// giá trị không phải string được ép kiểu qua fmt.
func KeyOf(doc RawRecord) ProductKey {
	return ProductKey{
		OzonID:   stringField(doc, FieldOzonID),
		NameCN:   stringField(doc, FieldNameCN),
		Category: stringField(doc, FieldCategory),
		SKU:      stringField(doc, FieldSKU),
		Platform: stringField(doc, FieldPlatform),
		Account:  stringField(doc, FieldAccount),
	}
}

// stringField đọc một field dạng chuỗi, ép kiểu khi cần, vắng mặt trả về rỗng.
func stringField(doc RawRecord, field string) string {
	v, ok := doc[field]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
