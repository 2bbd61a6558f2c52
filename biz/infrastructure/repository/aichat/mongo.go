package aichat

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
	prefixAIChatCacheKey = "cache:ai_chat"
	AIChatCollectionName = "ai_chat"
)

type Mapper interface {
	Insert(ctx context.Context, record *Record) error
	FindByUserID(ctx context.Context, userID string) ([]*Record, error)
}

type MongoMapper struct {
	conn *monc.Model
}

var MapperSet = wire.NewSet(
	NewMongoMapper,
	wire.Bind(new(Mapper), new(*MongoMapper)),
)

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewAIChatMongoMapper collection: %s", AIChatCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, AIChatCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, record *Record) error {
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
		record.CreateTime = time.Now()
	}
	_, err := m.conn.InsertOneNoCache(ctx, record)
	return err
}

func (m *MongoMapper) FindByUserID(ctx context.Context, userID string) ([]*Record, error) {
	var records []*Record
	limit := int64(consts.MaxNotifications)
	err := m.conn.Find(ctx, &records, bson.M{
		consts.UserID: userID,
	}, &options.FindOptions{
		Limit: &limit,
		Sort:  bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
