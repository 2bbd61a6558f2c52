package file

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
	prefixFileCacheKey = "cache:file"
	FileCollectionName = "file"
)

type Mapper interface {
	Insert(ctx context.Context, file *File) error
	FindOne(ctx context.Context, id string) (*File, error)
	FindByOwner(ctx context.Context, ownerID string) ([]*File, error)
	FindByFolder(ctx context.Context, folderID, ownerID string) ([]*File, error)
	FindByClass(ctx context.Context, classID string) ([]*File, error)
	Delete(ctx context.Context, id string) error
	DeleteByFolder(ctx context.Context, folderID string) (int64, error)
	SearchByOwner(ctx context.Context, ownerID, keyword string) ([]*File, error)
}

type MongoMapper struct {
	conn *monc.Model
}

var MapperSet = wire.NewSet(
	NewMongoMapper,
	wire.Bind(new(Mapper), new(*MongoMapper)),
)

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewFileMongoMapper collection: %s", FileCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, FileCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, file *File) error {
	if file.ID.IsZero() {
		file.ID = primitive.NewObjectID()
		file.CreateTime = time.Now()
	}
	_, err := m.conn.InsertOneNoCache(ctx, file)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*File, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var f File
	err = m.conn.FindOneNoCache(ctx, &f, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &f, nil
}

func (m *MongoMapper) FindByOwner(ctx context.Context, ownerID string) ([]*File, error) {
	return m.findByFilter(ctx, bson.M{consts.OwnerID: ownerID})
}

// FindByFolder 附带owner_id条件, 文件夹id泄露时也拿不到他人的文件
func (m *MongoMapper) FindByFolder(ctx context.Context, folderID, ownerID string) ([]*File, error) {
	return m.findByFilter(ctx, bson.M{consts.FolderID: folderID, consts.OwnerID: ownerID})
}

func (m *MongoMapper) FindByClass(ctx context.Context, classID string) ([]*File, error) {
	return m.findByFilter(ctx, bson.M{consts.ClassID: classID})
}

func (m *MongoMapper) findByFilter(ctx context.Context, filter bson.M) ([]*File, error) {
	var files []*File
	limit := int64(consts.MaxListLimit)
	err := m.conn.Find(ctx, &files, filter, &options.FindOptions{
		Limit:      &limit,
		Sort:       bson.M{consts.CreateTime: -1},
		Projection: bson.M{"extracted_text": 0},
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (m *MongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
	return err
}

// DeleteByFolder 删除文件夹时级联删除其直接包含的文件记录
func (m *MongoMapper) DeleteByFolder(ctx context.Context, folderID string) (int64, error) {
	return m.conn.DeleteMany(ctx, bson.M{consts.FolderID: folderID})
}

// SearchByOwner 在用户自己的文件名中做大小写不敏感的子串匹配
func (m *MongoMapper) SearchByOwner(ctx context.Context, ownerID, keyword string) ([]*File, error) {
	var files []*File
	limit := int64(consts.MaxSearchResults)
	err := m.conn.Find(ctx, &files, bson.M{
		consts.OwnerID: ownerID,
		"filename":     primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"},
	}, &options.FindOptions{
		Limit:      &limit,
		Projection: bson.M{"extracted_text": 0},
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
