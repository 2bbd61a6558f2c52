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

type IFolderService interface {
	CreateFolder(ctx context.Context, req *core.CreateFolderReq) (*core.FolderInfo, error)
	ListFolders(ctx context.Context, req *core.ListFoldersReq) (*core.ListFoldersResp, error)
	DeleteFolder(ctx context.Context, req *core.DeleteFolderReq) (*basic.Response, error)
}

type FolderService struct {
	FolderMapper  folder.Mapper
	FileMapper    file.Mapper
	UserMapper    user.Mapper
	ObjectStorage storage.ObjectStorage
}

var FolderServiceSet = wire.NewSet(
	wire.Struct(new(FolderService), "*"),
	wire.Bind(new(IFolderService), new(*FolderService)),
)

// CreateFolder 创建文件夹, 父文件夹必须属于本人
func (s *FolderService) CreateFolder(ctx context.Context, req *core.CreateFolderReq) (*core.FolderInfo, error) {
	meta, err := requireUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, consts.ErrInvalidParams
	}
	if req.ParentId != nil {
		parent, err := s.FolderMapper.FindOne(ctx, *req.ParentId)
		if err != nil {
			return nil, consts.ErrNotFound
		}
		if parent.OwnerID != meta.GetUserId() {
			return nil, consts.ErrForbidden
		}
	}

	now := time.Now()
	fd := &folder.Folder{
		Name:       req.Name,
		ParentID:   req.ParentId,
		ClassID:    req.ClassId,
		OwnerID:    meta.GetUserId(),
		CreateTime: now,
	}
	if err = s.FolderMapper.Insert(ctx, fd); err != nil {
		log.Error("创建文件夹失败: %v", err)
		return nil, consts.ErrCreateFolder
	}
	return folderInfo(fd), nil
}

// ListFolders 列出自己的文件夹, 可按父文件夹或班级过滤
func (s *FolderService) ListFolders(ctx context.Context, req *core.ListFoldersReq) (*core.ListFoldersResp, error) {
	meta, err := requireUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}

	var folders []*folder.Folder
	if req.ClassId != nil {
		folders, err = s.FolderMapper.FindByClass(ctx, *req.ClassId, req.ParentId)
	} else {
		folders, err = s.FolderMapper.FindByOwner(ctx, meta.GetUserId(), req.ParentId)
	}
	if err != nil {
		log.Error("获取文件夹列表失败: %v", err)
		return nil, consts.ErrNotFound
	}

	return &core.ListFoldersResp{
		Folders: lo.Map(folders, func(fd *folder.Folder, _ int) *core.FolderInfo { return folderInfo(fd) }),
	}, nil
}

// DeleteFolder 删除文件夹及其中的文件, 不递归删除子文件夹
func (s *FolderService) DeleteFolder(ctx context.Context, req *core.DeleteFolderReq) (*basic.Response, error) {
	meta, err := requireUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	fd, err := s.FolderMapper.FindOne(ctx, req.FolderId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if fd.OwnerID != meta.GetUserId() {
		return nil, consts.ErrForbidden
	}

	// 先清理对象存储再删记录
	files, err := s.FileMapper.FindByFolder(ctx, req.FolderId, meta.GetUserId())
	if err != nil {
		log.Error("获取文件夹内文件失败: %v", err)
		return nil, consts.ErrUpdate
	}
	for _, f := range files {
		if err := s.ObjectStorage.Delete(ctx, f.StoragePath); err != nil {
			log.Error("删除存储对象失败 path=%s: %v", f.StoragePath, err)
		}
	}
	if _, err = s.FileMapper.DeleteByFolder(ctx, req.FolderId); err != nil {
		log.Error("删除文件夹内文件失败: %v", err)
		return nil, consts.ErrUpdate
	}
	if err = s.FolderMapper.Delete(ctx, req.FolderId); err != nil {
		log.Error("删除文件夹失败: %v", err)
		return nil, consts.ErrUpdate
	}
	return util.Succeed("删除成功")
}

func folderInfo(fd *folder.Folder) *core.FolderInfo {
	return &core.FolderInfo{
		Id:         fd.ID.Hex(),
		Name:       fd.Name,
		ParentId:   fd.ParentID,
		ClassId:    fd.ClassID,
		OwnerId:    fd.OwnerID,
		CreateTime: fd.CreateTime.Format(time.RFC3339),
	}
}
