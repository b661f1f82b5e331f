package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yulianggan/ozondailyreport/config"
	"github.com/yulianggan/ozondailyreport/internal/logger"
)

// GetInstance tạo kết nối tới MongoDB theo cấu hình và kiểm tra bằng ping.
func GetInstance(c *config.Configuration) (*mongo.Client, error) {
	if c.MongoDB_ConnectionURI == "" {
		return nil, fmt.Errorf("database connection URL is empty")
	}

	// Cài đặt các options cho client
	clientOptions := options.Client().ApplyURI(c.MongoDB_ConnectionURI).
		SetMaxPoolSize(50).                 // Giới hạn tối đa 50 connections
		SetMinPoolSize(10).                 // Giữ tối thiểu 10 connections trong pool
		SetConnectTimeout(5 * time.Second). // Timeout khi kết nối
		SetSocketTimeout(10 * time.Second)  // Timeout khi gửi nhận dữ liệu

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Kiểm tra kết nối
	ctxPing, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancelPing()

	if err := client.Ping(ctxPing, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.GetAppLogger().Info("Successfully connected to MongoDB")
	return client, nil
}

// CloseInstance đóng kết nối MongoDB client.
func CloseInstance(client *mongo.Client) error {
	if err := client.Disconnect(context.TODO()); err != nil {
		logger.GetAppLogger().WithError(err).Error("Failed to disconnect MongoDB client")
		return err
	}
	return nil
}

// EnsureDatabaseAndCollections đảm bảo database data và collection báo cáo tồn tại.
// Dữ liệu vận hành do pipeline bên ngoài ghi vào; API chỉ đọc, nhưng tạo sẵn
// collection rỗng giúp debug trên môi trường mới dễ dàng hơn.
func EnsureDatabaseAndCollections(client *mongo.Client, cfg *config.Configuration) error {
	dbName := cfg.MongoDB_DBName_Data

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := client.Database(dbName)
	collList, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	exists := false
	for _, existingColl := range collList {
		if existingColl == cfg.ReportCollection {
			exists = true
			break
		}
	}
	if !exists {
		logger.GetAppLogger().Infof("Collection %s chưa tồn tại, tạo mới.", cfg.ReportCollection)
		if err := db.CreateCollection(ctx, cfg.ReportCollection); err != nil {
			return fmt.Errorf("failed to create collection %s: %w", cfg.ReportCollection, err)
		}
	}

	logger.GetAppLogger().Infof("Database and collections are ensured in database: %s", dbName)
	return nil
}
