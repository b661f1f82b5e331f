package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yulianggan/ozondailyreport/config"
	"github.com/yulianggan/ozondailyreport/internal/registry"
)

// MongoDB_Data_CollectionName chứa tên các collection trong MongoDB
type MongoDB_Data_CollectionName struct {
	OzonOperations string // Tên collection chứa dữ liệu vận hành Ozon (sản lượng, quảng cáo, tồn kho, hồi tiền)
}

// Các biến toàn cục
var Validate *validator.Validate                                                         // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                                        // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                                           // Cấu hình của server
var MongoDB_ColNames MongoDB_Data_CollectionName = *new(MongoDB_Data_CollectionName)     // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
