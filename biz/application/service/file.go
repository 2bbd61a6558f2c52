package service

import (
	"context"
	"time"

	"github.com/google/wire"
	"github.com/samber/lo"

	"github.com/mdtousif1712-create/prodigy-ai/biz/application/dto/basic"
	"github.com/mdtousif1712-create/prodigy-ai/biz/application/dto/prodigy/core"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/consts"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/file"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/folder"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/user"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/storage"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/util"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/util/log"
)

type IFileService interface {
	UploadFile(ctx context.Context, req *core.UploadFileReq) (*core.FileInfo, error)
	ListFiles(ctx context.Context, req *core.ListFilesReq) (*core.ListFilesResp, error)
	GetFile(ctx context.Context, req *core.GetFileReq) (*core.FileInfo, error)
	DownloadFile(ctx context.Context, req *core.DownloadFileReq) (*core.DownloadFileResp, error)
	DeleteFile(ctx context.Context, req *core.DeleteFileReq) (*basic.Response, error)
}

type FileService struct {
	FileMapper    file.Mapper
	FolderMapper  folder.Mapper
	UserMapper    user.Mapper
	ObjectStorage storage.ObjectStorage
	Client        util.CompletionClient
}

var FileServiceSet = wire.NewSet(
	wire.Struct(new(FileService), "*"),
	wire.Bind(new(IFileService), new(*FileService)),
)

// UploadFile 上传文件到对象存储, 文本抽取失败不阻塞上传
func (s *FileService) UploadFile(ctx context.Context, req *core.UploadFileReq) (*core.FileInfo, error) {
	meta, err := requireUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	if req.Filename == "" || len(req.Content) == 0 {
		return nil, consts.ErrInvalidParams
	}
	if req.FolderId != nil {
		fd, err := s.FolderMapper.FindOne(ctx, *req.FolderId)
		if err != nil {
			return nil, consts.ErrNotFound
		}
		if fd.OwnerID != meta.GetUserId() {
			return nil, consts.ErrForbidden
		}
	}

	path, err := s.ObjectStorage.Put(ctx, req.Filename, req.ContentType, req.Content)
	if err != nil {
		log.Error("上传文件失败: %v", err)
		return nil, consts.ErrUpload
	}

	var extracted *string
	if text, err := s.Client.ExtractText(ctx, req.Filename, req.ContentType, req.Content); err != nil {
		log.CtxInfo(ctx, "文本抽取跳过 filename=%s: %v", req.Filename, err)
	} else if text != "" {
		extracted = &text
	}

	now := time.Now()
	f := &file.File{
		Filename:      req.Filename,
		StoragePath:   path,
		ContentType:   req.ContentType,
		Size:          int64(len(req.Content)),
		FolderID:      req.FolderId,
		ClassID:       req.ClassId,
		OwnerID:       meta.GetUserId(),
		ExtractedText: extracted,
		CreateTime:    now,
	}
	if err = s.FileMapper.Insert(ctx, f); err != nil {
		log.Error("保存文件记录失败: %v", err)
		return nil, consts.ErrUpload
	}
	return fileInfo(f), nil
}

// ListFiles 按文件夹或班级过滤, 默认返回自己的全部文件
func (s *FileService) ListFiles(ctx context.Context, req *core.ListFilesReq) (*core.ListFilesResp, error) {
	meta, err := requireUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}

	var files []*file.File
	switch {
	case req.FolderId != nil:
		files, err = s.FileMapper.FindByFolder(ctx, *req.FolderId, meta.GetUserId())
	case req.ClassId != nil:
		files, err = s.FileMapper.FindByClass(ctx, *req.ClassId)
	default:
		files, err = s.FileMapper.FindByOwner(ctx, meta.GetUserId())
	}
	if err != nil {
		log.Error("获取文件列表失败: %v", err)
		return nil, consts.ErrNotFound
	}

	return &core.ListFilesResp{
		Files: lo.Map(files, func(f *file.File, _ int) *core.FileInfo { return fileInfo(f) }),
	}, nil
}

// GetFile 获取文件元数据
func (s *FileService) GetFile(ctx context.Context, req *core.GetFileReq) (*core.FileInfo, error) {
	meta, err := requireUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	f, err := s.FileMapper.FindOne(ctx, req.FileId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if f.OwnerID != meta.GetUserId() && f.ClassID == nil {
		return nil, consts.ErrForbidden
	}
	return fileInfo(f), nil
}

// DownloadFile 下载文件内容, 访问规则与GetFile一致
func (s *FileService) DownloadFile(ctx context.Context, req *core.DownloadFileReq) (*core.DownloadFileResp, error) {
	meta, err := requireUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	f, err := s.FileMapper.FindOne(ctx, req.FileId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if f.OwnerID != meta.GetUserId() && f.ClassID == nil {
		return nil, consts.ErrForbidden
	}

	content, err := s.ObjectStorage.Get(ctx, f.StoragePath)
	if err != nil {
		log.Error("读取存储对象失败 path=%s: %v", f.StoragePath, err)
		return nil, consts.ErrDownload
	}
	return &core.DownloadFileResp{
		Filename:    f.Filename,
		ContentType: f.ContentType,
		Content:     content,
	}, nil
}

// DeleteFile 删除文件, 同时清理对象存储
func (s *FileService) DeleteFile(ctx context.Context, req *core.DeleteFileReq) (*basic.Response, error) {
	meta, err := requireUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	f, err := s.FileMapper.FindOne(ctx, req.FileId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if f.OwnerID != meta.GetUserId() {
		return nil, consts.ErrForbidden
	}

	if err = s.ObjectStorage.Delete(ctx, f.StoragePath); err != nil {
		// 对象清理失败只记日志, 记录照常删除
		log.Error("删除存储对象失败 path=%s: %v", f.StoragePath, err)
	}
	if err = s.FileMapper.Delete(ctx, req.FileId); err != nil {
		log.Error("删除文件记录失败: %v", err)
		return nil, consts.ErrUpdate
	}
	return util.Succeed("删除成功")
}

func fileInfo(f *file.File) *core.FileInfo {
	return &core.FileInfo{
		Id:          f.ID.Hex(),
		Filename:    f.Filename,
		ContentType: f.ContentType,
		Size:        f.Size,
		FolderId:    f.FolderID,
		ClassId:     f.ClassID,
		OwnerId:     f.OwnerID,
		CreateTime:  f.CreateTime.Format(time.RFC3339),
	}
}
