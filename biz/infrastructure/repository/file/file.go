package file

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type File struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Filename      string             `bson:"filename" json:"filename"`
	StoragePath   string             `bson:"storage_path" json:"storagePath"`
	ContentType   string             `bson:"content_type" json:"contentType"`
	Size          int64              `bson:"size" json:"size"`
	FolderID      *string            `bson:"folder_id,omitempty" json:"folderId,omitempty"`
	ClassID       *string            `bson:"class_id,omitempty" json:"classId,omitempty"`
	OwnerID       string             `bson:"owner_id" json:"ownerId"`
	ExtractedText *string            `bson:"extracted_text,omitempty" json:"-"`
	CreateTime    time.Time          `bson:"create_time" json:"createTime"`
}
