package folder

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
	prefixFolderCacheKey = "cache:folder"
	FolderCollectionName = "folder"
)

type Mapper interface {
	Insert(ctx context.Context, folder *Folder) error
	FindOne(ctx context.Context, id string) (*Folder, error)
	FindByOwner(ctx context.Context, ownerID string, parentID *string) ([]*Folder, error)
	FindByClass(ctx context.Context, classID string, parentID *string) ([]*Folder, error)
	Delete(ctx context.Context, id string) error
}

type MongoMapper struct {
	conn *monc.Model
}

var MapperSet = wire.NewSet(
	NewMongoMapper,
	wire.Bind(new(Mapper), new(*MongoMapper)),
)

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewFolderMongoMapper collection: %s", FolderCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, FolderCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, folder *Folder) error {
	if folder.ID.IsZero() {
		folder.ID = primitive.NewObjectID()
		folder.CreateTime = time.Now()
	}
	_, err := m.conn.InsertOneNoCache(ctx, folder)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Folder, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var f Folder
	err = m.conn.FindOneNoCache(ctx, &f, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &f, nil
}

func (m *MongoMapper) FindByOwner(ctx context.Context, ownerID string, parentID *string) ([]*Folder, error) {
	filter := bson.M{consts.OwnerID: ownerID}
	applyParent(filter, parentID)
	return m.findByFilter(ctx, filter)
}

func (m *MongoMapper) FindByClass(ctx context.Context, classID string, parentID *string) ([]*Folder, error) {
	filter := bson.M{consts.ClassID: classID}
	applyParent(filter, parentID)
	return m.findByFilter(ctx, filter)
}

// applyParent parentID为空串时表示查询根目录
func applyParent(filter bson.M, parentID *string) {
	if parentID == nil {
		return
	}
	if *parentID == "" {
		filter["parent_id"] = bson.M{"$exists": false}
	} else {
		filter["parent_id"] = *parentID
	}
}

func (m *MongoMapper) findByFilter(ctx context.Context, filter bson.M) ([]*Folder, error) {
	var folders []*Folder
	limit := int64(consts.MaxListLimit)
	err := m.conn.Find(ctx, &folders, filter, &options.FindOptions{
		Limit: &limit,
		Sort:  bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, err
	}
	return folders, nil
}

func (m *MongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
	return err
}
