package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nca2student55-crypto/cheongdam-partners-vip/config"
	announcementmodels "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/announcement/models"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/cache"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/events"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/global"
)

func InitRegistry() {
	// Khởi tạo registry và đăng ký các collections
	err := InitCollections(global.MongoDB_Session, global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// InitCollections khởi tạo và đăng ký các collections MongoDB,
// đồng thời bật mirror cache theo dõi thay đổi của các collection đó.
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)
	colNames := []string{
		global.MongoDB_ColNames.Customers,
		global.MongoDB_ColNames.PointHistory,
		global.MongoDB_ColNames.Notifications,
		global.MongoDB_ColNames.Announcements,
		global.MongoDB_ColNames.Inquiries,
		global.MongoDB_ColNames.AdminNotifications,
		global.MongoDB_ColNames.AdminUsers,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Errorf("Collection %s already registered", name)
		}
	}

	cache.Init(colNames...)
	logrus.Info("Initialized mirror cache")

	// Lỗi warm chỉ cảnh báo: GetActive còn nhánh đọc thẳng DB
	if err := warmAnnouncementMirror(client, cfg); err != nil {
		logrus.Warnf("Failed to warm announcement mirror: %v", err)
	}

	return nil
}

// warmAnnouncementMirror nạp sẵn toàn bộ thông báo chung vào mirror qua event
// bus, để GetActive đọc được từ cache ngay sau khởi động. Các thay đổi sau đó
// đi vào mirror qua luồng event của base service như bình thường.
func warmAnnouncementMirror(client *mongo.Client, cfg *config.Configuration) error {
	ctx := context.Background()
	collection := client.Database(cfg.MongoDB_DBName).Collection(global.MongoDB_ColNames.Announcements)

	cursor, err := collection.Find(ctx, bson.D{})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	var announcements []announcementmodels.Announcement
	if err := cursor.All(ctx, &announcements); err != nil {
		return err
	}

	for _, announcement := range announcements {
		events.EmitDataChanged(ctx, events.DataChangeEvent{
			CollectionName: global.MongoDB_ColNames.Announcements,
			Operation:      events.OpUpsert,
			Document:       announcement,
		})
	}

	logrus.Infof("Warmed announcement mirror with %d announcements", len(announcements))
	return nil
}
