package main

import (
	"github.com/sirupsen/logrus"

	"github.com/yulianggan/ozondailyreport/config"
	"github.com/yulianggan/ozondailyreport/internal/database"
	"github.com/yulianggan/ozondailyreport/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database.
// Tên collection báo cáo có thể override qua env (REPORT_COLLECTION) sau khi
// config được load, xem initDatabase_MongoDB.
func initColNames() {
	global.MongoDB_ColNames.OzonOperations = "ozon_operations"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	// Tên collection báo cáo lấy theo config (có default)
	if global.MongoDB_ServerConfig.ReportCollection != "" {
		global.MongoDB_ColNames.OzonOperations = global.MongoDB_ServerConfig.ReportCollection
	}

	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo db và collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session, global.MongoDB_ServerConfig); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection
}
