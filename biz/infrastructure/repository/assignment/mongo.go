package assignment

import (
	"context"
	"regexp"
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
	prefixAssignmentCacheKey = "cache:assignment"
	AssignmentCollectionName = "assignment"
)

type Mapper interface {
	Insert(ctx context.Context, assignment *Assignment) error
	FindOne(ctx context.Context, id string) (*Assignment, error)
	FindByClassIDs(ctx context.Context, classIDs []string) ([]*Assignment, error)
	SearchByClassIDs(ctx context.Context, classIDs []string, keyword string) ([]*Assignment, error)
}

type MongoMapper struct {
	conn *monc.Model
}

var MapperSet = wire.NewSet(
	NewMongoMapper,
	wire.Bind(new(Mapper), new(*MongoMapper)),
)

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewAssignmentMongoMapper collection: %s", AssignmentCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, AssignmentCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, assignment *Assignment) error {
	if assignment.ID.IsZero() {
		assignment.ID = primitive.NewObjectID()
		assignment.CreateTime = time.Now()
	}
	_, err := m.conn.InsertOneNoCache(ctx, assignment)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Assignment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var a Assignment
	err = m.conn.FindOneNoCache(ctx, &a, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &a, nil
}

// FindByClassIDs 按截止时间升序返回指定班级的作业
func (m *MongoMapper) FindByClassIDs(ctx context.Context, classIDs []string) ([]*Assignment, error) {
	var assignments []*Assignment
	limit := int64(consts.MaxListLimit)
	err := m.conn.Find(ctx, &assignments, bson.M{
		consts.ClassID: bson.M{"$in": classIDs},
	}, &options.FindOptions{
		Limit: &limit,
		Sort:  bson.M{consts.DueDate: 1},
	})
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// SearchByClassIDs 在指定班级内按标题做大小写不敏感的子串匹配
func (m *MongoMapper) SearchByClassIDs(ctx context.Context, classIDs []string, keyword string) ([]*Assignment, error) {
	var assignments []*Assignment
	limit := int64(consts.MaxSearchResults)
	err := m.conn.Find(ctx, &assignments, bson.M{
		consts.ClassID: bson.M{"$in": classIDs},
		"title":        primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"},
	}, &options.FindOptions{
		Limit: &limit,
	})
	if err != nil {
		return nil, err
	}
	return assignments, nil
}
