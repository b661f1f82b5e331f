// Package models định nghĩa kiểu dữ liệu cho báo cáo vận hành Ozon.
//
// Document trong collection vận hành do tool export bên ngoài ghi vào, field name
// không thống nhất giữa các đợt export (nhãn tiếng Trung và alias tiếng Anh lẫn
// lộn, cùng một chỉ số có thể nằm dưới nhiều tên khác nhau). Mỗi chỉ số vì vậy
// có một danh sách field ứng viên, thử theo đúng thứ tự khai báo và lấy giá trị
// đầu tiên xuất hiện (không phải giá trị khác 0 đầu tiên).
package models

// Danh sách field ứng viên cho từng chỉ số, thứ tự là một phần của hợp đồng dữ liệu.
var (
	// FieldsDate là các field chứa ngày của bản ghi.
	FieldsDate = []string{"日期", "date", "Date"}

	// FieldsTotalQty: tổng sản lượng bán.
	FieldsTotalQty = []string{"总销量", "销量", "销售量"}

	// FieldsTemplateQty: sản lượng từ quảng cáo vị trí template.
	FieldsTemplateQty = []string{"模板销量"}

	// FieldsSearchQty: sản lượng từ quảng cáo tìm kiếm.
	FieldsSearchQty = []string{"搜索销量"}

	// FieldsNaturalQty: sản lượng tự nhiên (nếu export ghi sẵn; kể cả khi = 0
	// vẫn dùng giá trị này thay vì tự suy ra).
	FieldsNaturalQty = []string{"自然销量"}

	// FieldsAvgPrice: đơn giá trung bình.
	FieldsAvgPrice = []string{"均价", "售价"}

	// FieldsSalesAmount: tổng doanh thu.
	FieldsSalesAmount = []string{"总销售额", "销售额"}

	// FieldsGoodsCost: giá vốn hàng hóa.
	FieldsGoodsCost = []string{"总货物成本", "货物成本", "成本|卢布", "成本"}

	// FieldsSalesCost: chi phí bán hàng (vận chuyển, hoa hồng sàn...).
	FieldsSalesCost = []string{"总销售成本", "销售成本"}

	// FieldsTemplateSpend / FieldsSearchSpend: chi phí hai loại quảng cáo,
	// luôn lấy riêng từng loại rồi cộng, không có field gộp.
	FieldsTemplateSpend = []string{"总模板花费", "模板花费"}
	FieldsSearchSpend   = []string{"总搜索花费", "搜索花费"}

	// FieldsPayout: tiền sàn hoàn về.
	FieldsPayout = []string{"总回款", "回款"}

	// FieldsInventory: tồn kho tại thời điểm bản ghi.
	FieldsInventory = []string{"库存数量"}
)

// Field định danh sản phẩm (không có fallback, mỗi thuộc tính một field cố định).
const (
	FieldOzonID   = "Ozon ID"
	FieldNameCN   = "中文名称"
	FieldCategory = "类别"
	FieldSKU      = "SKU"
	FieldPlatform = "平台"
	FieldAccount  = "账号"
)

// Field dùng cho filter platform/account: bản ghi cũ dùng nhãn tiếng Trung,
// bản ghi mới dùng alias tiếng Anh, filter phải khớp cả hai.
var (
	FieldsPlatformFilter = []string{"平台", "platform"}
	FieldsAccountFilter  = []string{"账号", "account"}
)
