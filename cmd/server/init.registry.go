package main

import (
	"github.com/sirupsen/logrus"

	"github.com/yulianggan/ozondailyreport/internal/global"
)

// InitRegistry đăng ký các collection vào registry toàn cục.
// Service lấy collection qua registry thay vì giữ tham chiếu trực tiếp.
func InitRegistry() {
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName_Data
	db := global.MongoDB_Session.Database(dbName)

	colName := global.MongoDB_ColNames.OzonOperations
	if _, err := global.RegistryCollections.Register(colName, db.Collection(colName)); err != nil {
		logrus.Fatalf("Failed to register collection %s: %v", colName, err)
	}

	logrus.Infof("Registered collection %s into registry", colName)
}
