package core

// UploadFileReq 由controller从multipart表单中组装
type UploadFileReq struct {
	Filename    string  `json:"filename"`
	ContentType string  `json:"content_type"`
	Content     []byte  `json:"-"`
	FolderId    *string `json:"folder_id,omitempty"`
	ClassId     *string `json:"class_id,omitempty"`
}

type FileInfo struct {
	Id          string  `form:"id" json:"id" query:"id"`
	Filename    string  `form:"filename" json:"filename" query:"filename"`
	ContentType string  `form:"content_type" json:"content_type" query:"content_type"`
	Size        int64   `form:"size" json:"size" query:"size"`
	FolderId    *string `form:"folder_id" json:"folder_id,omitempty" query:"folder_id"`
	ClassId     *string `form:"class_id" json:"class_id,omitempty" query:"class_id"`
	OwnerId     string  `form:"owner_id" json:"owner_id" query:"owner_id"`
	CreateTime  string  `form:"created_at" json:"created_at" query:"created_at"`
}

type ListFilesReq struct {
	FolderId *string `form:"folder_id" json:"folder_id,omitempty" query:"folder_id"`
	ClassId  *string `form:"class_id" json:"class_id,omitempty" query:"class_id"`
}

type ListFilesResp struct {
	Files []*FileInfo `form:"files" json:"files" query:"files"`
}

type GetFileReq struct {
	FileId string `path:"file_id" json:"file_id"`
}

type DeleteFileReq struct {
	FileId string `path:"file_id" json:"file_id"`
}

type DownloadFileReq struct {
	FileId string `path:"file_id" json:"file_id"`
}

// DownloadFileResp 由controller直接写回响应体, 不走json
type DownloadFileResp struct {
	Filename    string `json:"-"`
	ContentType string `json:"-"`
	Content     []byte `json:"-"`
}

type CreateFolderReq struct {
	Name     string  `form:"name" json:"name" query:"name"`
	ParentId *string `form:"parent_id" json:"parent_id,omitempty" query:"parent_id"`
	ClassId  *string `form:"class_id" json:"class_id,omitempty" query:"class_id"`
}

type FolderInfo struct {
	Id         string  `form:"id" json:"id" query:"id"`
	Name       string  `form:"name" json:"name" query:"name"`
	ParentId   *string `form:"parent_id" json:"parent_id,omitempty" query:"parent_id"`
	ClassId    *string `form:"class_id" json:"class_id,omitempty" query:"class_id"`
	OwnerId    string  `form:"owner_id" json:"owner_id" query:"owner_id"`
	CreateTime string  `form:"created_at" json:"created_at" query:"created_at"`
}

type ListFoldersReq struct {
	ParentId *string `form:"parent_id" json:"parent_id,omitempty" query:"parent_id"`
	ClassId  *string `form:"class_id" json:"class_id,omitempty" query:"class_id"`
}

type ListFoldersResp struct {
	Folders []*FolderInfo `form:"folders" json:"folders" query:"folders"`
}

type DeleteFolderReq struct {
	FolderId string `path:"folder_id" json:"folder_id"`
}
