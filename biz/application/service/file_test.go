package service

import (
	"fmt"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mdtousif1712-create/prodigy-ai/biz/application/dto/prodigy/core"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/consts"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/file"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/folder"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/user"
)

func newFolder(ownerID string, parentID *string) *folder.Folder {
	return &folder.Folder{
		ID:         primitive.NewObjectID(),
		Name:       "Notes",
		ParentID:   parentID,
		OwnerID:    ownerID,
		CreateTime: time.Now(),
	}
}

func TestUploadFile(t *testing.T) {
	owner := newUser("o@test.com", "o", consts.RoleStudent, "pwd")
	other := newUser("x@test.com", "x", consts.RoleStudent, "pwd")
	fd := newFolder(owner.ID.Hex(), nil)

	folderID := fd.ID.Hex()
	tests := []struct {
		name    string
		user    *user.User
		req     *core.UploadFileReq
		wantErr error
	}{
		{
			name:    "empty filename",
			user:    owner,
			req:     &core.UploadFileReq{Content: []byte("data")},
			wantErr: consts.ErrInvalidParams,
		},
		{
			name:    "empty content",
			user:    owner,
			req:     &core.UploadFileReq{Filename: "a.txt"},
			wantErr: consts.ErrInvalidParams,
		},
		{
			name:    "foreign folder",
			user:    other,
			req:     &core.UploadFileReq{Filename: "a.txt", Content: []byte("data"), FolderId: &folderID},
			wantErr: consts.ErrForbidden,
		},
		{
			name: "success into folder",
			user: owner,
			req:  &core.UploadFileReq{Filename: "a.txt", ContentType: "text/plain", Content: []byte("data"), FolderId: &folderID},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeObjectStorage()
			svc := &FileService{
				UserMapper:    &fakeUserMapper{users: []*user.User{owner, other}},
				FileMapper:    &fakeFileMapper{},
				FolderMapper:  &fakeFolderMapper{folders: []*folder.Folder{fd}},
				ObjectStorage: store,
				Client:        &fakeCompletionClient{extractText: "data"},
			}
			resp, err := svc.UploadFile(metaCtx(tt.user.ID.Hex(), consts.RoleStudent), tt.req)
			if err != tt.wantErr {
				t.Fatalf("UploadFile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if resp.Size != 4 || resp.OwnerId != tt.user.ID.Hex() {
				t.Errorf("UploadFile() = %+v", resp)
			}
			if len(store.objects) != 1 {
				t.Errorf("object storage has %d objects, want 1", len(store.objects))
			}
		})
	}
}

func TestUploadFileExtractFailure(t *testing.T) {
	owner := newUser("o@test.com", "o", consts.RoleStudent, "pwd")
	files := &fakeFileMapper{}
	svc := &FileService{
		UserMapper:    &fakeUserMapper{users: []*user.User{owner}},
		FileMapper:    files,
		FolderMapper:  &fakeFolderMapper{},
		ObjectStorage: newFakeObjectStorage(),
		Client:        &fakeCompletionClient{extractErr: fmt.Errorf("service down")},
	}

	// 抽取失败不阻塞上传
	_, err := svc.UploadFile(metaCtx(owner.ID.Hex(), consts.RoleStudent), &core.UploadFileReq{
		Filename: "a.pdf", ContentType: "application/pdf", Content: []byte("data"),
	})
	if err != nil {
		t.Fatalf("UploadFile() error = %v", err)
	}
	if files.files[0].ExtractedText != nil {
		t.Errorf("ExtractedText = %v, want nil", *files.files[0].ExtractedText)
	}
}

func TestGetFileAccess(t *testing.T) {
	owner := newUser("o@test.com", "o", consts.RoleStudent, "pwd")
	other := newUser("x@test.com", "x", consts.RoleStudent, "pwd")

	svc := &FileService{
		UserMapper:    &fakeUserMapper{users: []*user.User{owner, other}},
		FileMapper:    &fakeFileMapper{},
		FolderMapper:  &fakeFolderMapper{},
		ObjectStorage: newFakeObjectStorage(),
		Client:        &fakeCompletionClient{},
	}
	private, err := svc.UploadFile(metaCtx(owner.ID.Hex(), consts.RoleStudent), &core.UploadFileReq{
		Filename: "private.txt", Content: []byte("p"),
	})
	if err != nil {
		t.Fatalf("UploadFile() error = %v", err)
	}
	classID := "64b000000000000000000001"
	shared, err := svc.UploadFile(metaCtx(owner.ID.Hex(), consts.RoleStudent), &core.UploadFileReq{
		Filename: "shared.txt", Content: []byte("s"), ClassId: &classID,
	})
	if err != nil {
		t.Fatalf("UploadFile() error = %v", err)
	}

	// 私有文件仅本人可见, 班级文件对其他人可见
	if _, err = svc.GetFile(metaCtx(other.ID.Hex(), consts.RoleStudent), &core.GetFileReq{FileId: private.Id}); err != consts.ErrForbidden {
		t.Fatalf("GetFile() private by other error = %v, want %v", err, consts.ErrForbidden)
	}
	if _, err = svc.GetFile(metaCtx(other.ID.Hex(), consts.RoleStudent), &core.GetFileReq{FileId: shared.Id}); err != nil {
		t.Fatalf("GetFile() shared by other error = %v", err)
	}
	if _, err = svc.GetFile(metaCtx(owner.ID.Hex(), consts.RoleStudent), &core.GetFileReq{FileId: private.Id}); err != nil {
		t.Fatalf("GetFile() by owner error = %v", err)
	}
}

func TestListFilesFolderOwnerScope(t *testing.T) {
	owner := newUser("o@test.com", "o", consts.RoleStudent, "pwd")
	other := newUser("x@test.com", "x", consts.RoleStudent, "pwd")
	fd := newFolder(owner.ID.Hex(), nil)
	folderID := fd.ID.Hex()

	svc := &FileService{
		UserMapper:    &fakeUserMapper{users: []*user.User{owner, other}},
		FileMapper:    &fakeFileMapper{},
		FolderMapper:  &fakeFolderMapper{folders: []*folder.Folder{fd}},
		ObjectStorage: newFakeObjectStorage(),
		Client:        &fakeCompletionClient{},
	}
	mine, err := svc.UploadFile(metaCtx(owner.ID.Hex(), consts.RoleStudent), &core.UploadFileReq{
		Filename: "mine.txt", Content: []byte("m"), FolderId: &folderID,
	})
	if err != nil {
		t.Fatalf("UploadFile() error = %v", err)
	}
	// 他人文件直接挂在相同folder_id下
	files := svc.FileMapper.(*fakeFileMapper)
	files.files = append(files.files, &file.File{
		ID:       primitive.NewObjectID(),
		Filename: "x-private.pdf",
		FolderID: &folderID,
		OwnerID:  other.ID.Hex(),
	})

	// 按文件夹查询只返回自己的文件, 知道folder_id也不行
	resp, err := svc.ListFiles(metaCtx(owner.ID.Hex(), consts.RoleStudent), &core.ListFilesReq{FolderId: &folderID})
	if err != nil {
		t.Fatalf("ListFiles() error = %v", err)
	}
	if len(resp.Files) != 1 || resp.Files[0].Id != mine.Id {
		t.Errorf("ListFiles() = %+v, want only %s", resp.Files, mine.Id)
	}
	resp, err = svc.ListFiles(metaCtx(other.ID.Hex(), consts.RoleStudent), &core.ListFilesReq{FolderId: &folderID})
	if err != nil {
		t.Fatalf("ListFiles() error = %v", err)
	}
	if len(resp.Files) != 1 || resp.Files[0].Filename != "x-private.pdf" {
		t.Errorf("ListFiles() by other = %+v", resp.Files)
	}
}

func TestDownloadFile(t *testing.T) {
	owner := newUser("o@test.com", "o", consts.RoleStudent, "pwd")
	other := newUser("x@test.com", "x", consts.RoleStudent, "pwd")

	svc := &FileService{
		UserMapper:    &fakeUserMapper{users: []*user.User{owner, other}},
		FileMapper:    &fakeFileMapper{},
		FolderMapper:  &fakeFolderMapper{},
		ObjectStorage: newFakeObjectStorage(),
		Client:        &fakeCompletionClient{},
	}
	f, err := svc.UploadFile(metaCtx(owner.ID.Hex(), consts.RoleStudent), &core.UploadFileReq{
		Filename: "a.txt", ContentType: "text/plain", Content: []byte("hello"),
	})
	if err != nil {
		t.Fatalf("UploadFile() error = %v", err)
	}

	resp, err := svc.DownloadFile(metaCtx(owner.ID.Hex(), consts.RoleStudent), &core.DownloadFileReq{FileId: f.Id})
	if err != nil {
		t.Fatalf("DownloadFile() error = %v", err)
	}
	if string(resp.Content) != "hello" || resp.Filename != "a.txt" || resp.ContentType != "text/plain" {
		t.Errorf("DownloadFile() = %+v", resp)
	}

	// 访问规则与GetFile一致
	if _, err = svc.DownloadFile(metaCtx(other.ID.Hex(), consts.RoleStudent), &core.DownloadFileReq{FileId: f.Id}); err != consts.ErrForbidden {
		t.Fatalf("DownloadFile() by other error = %v, want %v", err, consts.ErrForbidden)
	}
	if _, err = svc.DownloadFile(metaCtx(owner.ID.Hex(), consts.RoleStudent), &core.DownloadFileReq{FileId: "64b000000000000000000000"}); err != consts.ErrNotFound {
		t.Fatalf("DownloadFile() unknown id error = %v, want %v", err, consts.ErrNotFound)
	}
}

func TestDeleteFile(t *testing.T) {
	owner := newUser("o@test.com", "o", consts.RoleStudent, "pwd")
	other := newUser("x@test.com", "x", consts.RoleStudent, "pwd")

	store := newFakeObjectStorage()
	files := &fakeFileMapper{}
	svc := &FileService{
		UserMapper:    &fakeUserMapper{users: []*user.User{owner, other}},
		FileMapper:    files,
		FolderMapper:  &fakeFolderMapper{},
		ObjectStorage: store,
		Client:        &fakeCompletionClient{},
	}
	f, err := svc.UploadFile(metaCtx(owner.ID.Hex(), consts.RoleStudent), &core.UploadFileReq{
		Filename: "a.txt", Content: []byte("data"),
	})
	if err != nil {
		t.Fatalf("UploadFile() error = %v", err)
	}

	if _, err = svc.DeleteFile(metaCtx(other.ID.Hex(), consts.RoleStudent), &core.DeleteFileReq{FileId: f.Id}); err != consts.ErrForbidden {
		t.Fatalf("DeleteFile() by other error = %v, want %v", err, consts.ErrForbidden)
	}
	if _, err = svc.DeleteFile(metaCtx(owner.ID.Hex(), consts.RoleStudent), &core.DeleteFileReq{FileId: f.Id}); err != nil {
		t.Fatalf("DeleteFile() error = %v", err)
	}
	if len(files.files) != 0 || len(store.deleted) != 1 {
		t.Errorf("after delete: files=%d, deleted objects=%d", len(files.files), len(store.deleted))
	}
	if _, err = svc.DeleteFile(metaCtx(owner.ID.Hex(), consts.RoleStudent), &core.DeleteFileReq{FileId: f.Id}); err != consts.ErrNotFound {
		t.Fatalf("DeleteFile() twice error = %v, want %v", err, consts.ErrNotFound)
	}
}
