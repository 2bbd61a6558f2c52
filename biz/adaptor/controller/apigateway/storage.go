package apigateway

import (
	"context"
	"io"
	"mime/multipart"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/mdtousif1712-create/prodigy-ai/biz/adaptor"
	"github.com/mdtousif1712-create/prodigy-ai/biz/application/dto/prodigy/core"
	"github.com/mdtousif1712-create/prodigy-ai/provider"
)

// UploadFile 上传文件, multipart表单的file字段为文件本体
func UploadFile(ctx context.Context, c *app.RequestContext) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	content, err := readMultipartFile(fh)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	req := core.UploadFileReq{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Content:     content,
	}
	if v := c.PostForm("folder_id"); v != "" {
		req.FolderId = &v
	}
	if v := c.PostForm("class_id"); v != "" {
		req.ClassId = &v
	}

	p := provider.Get()
	resp, err := p.FileService.UploadFile(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListFiles 获取文件列表
func ListFiles(ctx context.Context, c *app.RequestContext) {
	var req core.ListFilesReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.FileService.ListFiles(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetFile 获取文件元数据
func GetFile(ctx context.Context, c *app.RequestContext) {
	var req core.GetFileReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.FileService.GetFile(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DownloadFile 下载文件内容, 成功时直接写回文件字节
func DownloadFile(ctx context.Context, c *app.RequestContext) {
	var req core.DownloadFileReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.FileService.DownloadFile(ctx, &req)
	if err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+resp.Filename+"\"")
	c.Data(consts.StatusOK, resp.ContentType, resp.Content)
}

// DeleteFile 删除文件
func DeleteFile(ctx context.Context, c *app.RequestContext) {
	var req core.DeleteFileReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.FileService.DeleteFile(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// CreateFolder 创建文件夹
func CreateFolder(ctx context.Context, c *app.RequestContext) {
	var req core.CreateFolderReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.FolderService.CreateFolder(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListFolders 获取文件夹列表
func ListFolders(ctx context.Context, c *app.RequestContext) {
	var req core.ListFoldersReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.FolderService.ListFolders(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeleteFolder 删除文件夹及其中的文件
func DeleteFolder(ctx context.Context, c *app.RequestContext) {
	var req core.DeleteFolderReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.FolderService.DeleteFolder(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func readMultipartFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
