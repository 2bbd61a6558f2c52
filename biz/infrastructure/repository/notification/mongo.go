package notification

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
	prefixNotificationCacheKey = "cache:notification"
	NotificationCollectionName = "notification"
)

type Mapper interface {
	Insert(ctx context.Context, notification *Notification) error
	FindByUserID(ctx context.Context, userID string) ([]*Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
	MarkAllRead(ctx context.Context, userID string) error
}

type MongoMapper struct {
	conn *monc.Model
}

var MapperSet = wire.NewSet(
	NewMongoMapper,
	wire.Bind(new(Mapper), new(*MongoMapper)),
)

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewNotificationMongoMapper collection: %s", NotificationCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, NotificationCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, notification *Notification) error {
	if notification.ID.IsZero() {
		notification.ID = primitive.NewObjectID()
		notification.CreateTime = time.Now()
	}
	_, err := m.conn.InsertOneNoCache(ctx, notification)
	return err
}

func (m *MongoMapper) FindByUserID(ctx context.Context, userID string) ([]*Notification, error) {
	var notifications []*Notification
	limit := int64(consts.MaxNotifications)
	err := m.conn.Find(ctx, &notifications, bson.M{
		consts.UserID: userID,
	}, &options.FindOptions{
		Limit: &limit,
		Sort:  bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead 附带user_id条件, 避免标记他人的通知
func (m *MongoMapper) MarkRead(ctx context.Context, id, userID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	res, err := m.conn.UpdateOneNoCache(ctx, bson.M{
		consts.ID:     oid,
		consts.UserID: userID,
	}, bson.M{
		"$set": bson.M{consts.Read: true},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return consts.ErrNotFound
	}
	return nil
}

func (m *MongoMapper) MarkAllRead(ctx context.Context, userID string) error {
	_, err := m.conn.UpdateManyNoCache(ctx, bson.M{
		consts.UserID: userID,
	}, bson.M{
		"$set": bson.M{consts.Read: true},
	})
	return err
}
