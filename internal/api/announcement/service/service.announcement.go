package announcementsvc

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	announcementmodels "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/announcement/models"
	basesvc "github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/base/service"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/api/cache"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/common"
	"github.com/nca2student55-crypto/cheongdam-partners-vip/internal/global"
)

// AnnouncementService là service quản lý thông báo chung
type AnnouncementService struct {
	*basesvc.BaseServiceMongoImpl[announcementmodels.Announcement]
}

// NewAnnouncementService tạo mới AnnouncementService
func NewAnnouncementService() (*AnnouncementService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Announcements)
	if !exist {
		return nil, fmt.Errorf("failed to get announcements collection: %v", common.ErrNotFound)
	}
	return &AnnouncementService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[announcementmodels.Announcement](collection),
	}, nil
}

// GetActive trả về các thông báo đang hiển thị: isActive và chưa hết hạn
// (expiresAt = 0 nghĩa là không hết hạn). Thông báo ghim xếp trước, trong
// cùng nhóm thì mới nhất trước. Ưu tiên đọc từ mirror cache đã được warm
// lúc khởi động; mirror chưa có dữ liệu thì đọc thẳng DB.
func (s *AnnouncementService) GetActive(ctx context.Context) ([]announcementmodels.Announcement, error) {
	now := time.Now().UnixMilli()

	if m := cache.GetMirror(); m != nil && m.Len(global.MongoDB_ColNames.Announcements) > 0 {
		return activeFromMirror(m.Items(global.MongoDB_ColNames.Announcements), now), nil
	}

	filter := bson.M{
		"isActive": true,
		"$or": []bson.M{
			{"expiresAt": bson.M{"$exists": false}},
			{"expiresAt": 0},
			{"expiresAt": bson.M{"$gt": now}},
		},
	}
	opts := options.Find().SetSort(bson.D{
		{Key: "isPinned", Value: -1},
		{Key: "createdAt", Value: -1},
	})
	return s.Find(ctx, filter, opts)
}

// activeFromMirror lọc và sắp xếp các thông báo đang hiển thị từ snapshot mirror.
// Cùng tiêu chí với nhánh truy vấn DB của GetActive.
func activeFromMirror(items map[string]interface{}, now int64) []announcementmodels.Announcement {
	result := []announcementmodels.Announcement{}
	for _, item := range items {
		announcement, ok := item.(announcementmodels.Announcement)
		if !ok {
			continue
		}
		if !announcement.IsActive {
			continue
		}
		if announcement.ExpiresAt != 0 && announcement.ExpiresAt <= now {
			continue
		}
		result = append(result, announcement)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].IsPinned != result[j].IsPinned {
			return result[i].IsPinned
		}
		return result[i].CreatedAt > result[j].CreatedAt
	})
	return result
}
