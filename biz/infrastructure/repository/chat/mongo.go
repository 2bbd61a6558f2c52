package chat

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
	prefixMessageCacheKey = "cache:chat_message"
	MessageCollectionName = "chat_message"
)

type Mapper interface {
	Insert(ctx context.Context, message *Message) error
	FindByClassID(ctx context.Context, classID string) ([]*Message, error)
	FindDirect(ctx context.Context, userID, partnerID string) ([]*Message, error)
	FindConversations(ctx context.Context, userID string) ([]*Conversation, error)
}

type MongoMapper struct {
	conn *monc.Model
}

var MapperSet = wire.NewSet(
	NewMongoMapper,
	wire.Bind(new(Mapper), new(*MongoMapper)),
)

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewMessageMongoMapper collection: %s", MessageCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, MessageCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, message *Message) error {
	if message.ID.IsZero() {
		message.ID = primitive.NewObjectID()
		message.CreateTime = time.Now()
	}
	_, err := m.conn.InsertOneNoCache(ctx, message)
	return err
}

// FindByClassID 班级群聊消息, 按时间升序
func (m *MongoMapper) FindByClassID(ctx context.Context, classID string) ([]*Message, error) {
	return m.findByFilter(ctx, bson.M{consts.ClassID: classID})
}

// FindDirect 两人之间的私聊消息, 按时间升序
func (m *MongoMapper) FindDirect(ctx context.Context, userID, partnerID string) ([]*Message, error) {
	return m.findByFilter(ctx, bson.M{
		"$or": bson.A{
			bson.M{consts.SenderID: userID, consts.ReceiverID: partnerID},
			bson.M{consts.SenderID: partnerID, consts.ReceiverID: userID},
		},
	})
}

func (m *MongoMapper) findByFilter(ctx context.Context, filter bson.M) ([]*Message, error) {
	var messages []*Message
	limit := int64(consts.MaxChatMessages)
	err := m.conn.Find(ctx, &messages, filter, &options.FindOptions{
		Limit: &limit,
		Sort:  bson.M{consts.CreateTime: 1},
	})
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// FindConversations 按对方分组, 每组保留最近一条消息, 按时间倒序
func (m *MongoMapper) FindConversations(ctx context.Context, userID string) ([]*Conversation, error) {
	pipeline := bson.A{
		bson.M{"$match": bson.M{
			"$or": bson.A{
				bson.M{consts.SenderID: userID},
				bson.M{consts.ReceiverID: userID},
			},
		}},
		bson.M{"$sort": bson.M{consts.CreateTime: -1}},
		bson.M{"$group": bson.M{
			consts.ID: bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$sender_id", userID}},
				"$receiver_id",
				"$sender_id",
			}},
			"last_message": bson.M{"$first": "$content"},
			"last_time":    bson.M{"$first": "$create_time"},
		}},
		bson.M{"$sort": bson.M{"last_time": -1}},
		bson.M{"$limit": consts.MaxConversations},
	}

	var conversations []*Conversation
	err := m.conn.Aggregate(ctx, &conversations, pipeline)
	if err != nil {
		return nil, err
	}
	return conversations, nil
}
