package announcement

import (
	"context"
	"time"

	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/config"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/consts"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixAnnouncementCacheKey = "cache:announcement"
	AnnouncementCollectionName = "announcement"
)

type Mapper interface {
	Insert(ctx context.Context, announcement *Announcement) error
	FindByClassIDs(ctx context.Context, classIDs []string) ([]*Announcement, error)
}

type MongoMapper struct {
	conn *monc.Model
}

var MapperSet = wire.NewSet(
	NewMongoMapper,
	wire.Bind(new(Mapper), new(*MongoMapper)),
)

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewAnnouncementMongoMapper collection: %s", AnnouncementCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, AnnouncementCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, announcement *Announcement) error {
	if announcement.ID.IsZero() {
		announcement.ID = primitive.NewObjectID()
		announcement.CreateTime = time.Now()
	}
	_, err := m.conn.InsertOneNoCache(ctx, announcement)
	return err
}

// FindByClassIDs 按发布时间倒序返回指定班级的公告
func (m *MongoMapper) FindByClassIDs(ctx context.Context, classIDs []string) ([]*Announcement, error) {
	var announcements []*Announcement
	limit := int64(consts.MaxAnnouncements)
	err := m.conn.Find(ctx, &announcements, bson.M{
		consts.ClassID: bson.M{"$in": classIDs},
	}, &options.FindOptions{
		Limit: &limit,
		Sort:  bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, err
	}
	return announcements, nil
}
