package service

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/mdtousif1712-create/prodigy-ai/biz/adaptor"
	"github.com/mdtousif1712-create/prodigy-ai/biz/application/dto/basic"
	"github.com/mdtousif1712-create/prodigy-ai/biz/application/dto/prodigy/core"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/consts"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/user"
)

func newUser(email, username string, role consts.Role, password string) *user.User {
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &user.User{
		ID:         primitive.NewObjectID(),
		Username:   username,
		Email:      email,
		Password:   string(hashed),
		FullName:   "Test " + username,
		Role:       role,
		CreateTime: time.Now(),
		UpdateTime: time.Now(),
	}
}

func metaCtx(userID string, role consts.Role) context.Context {
	return adaptor.InjectUserMeta(context.Background(), &basic.UserMeta{
		UserId: userID,
		Role:   string(role),
	})
}

func TestSignUp(t *testing.T) {
	existing := newUser("taken@test.com", "taken", consts.RoleStudent, "pwd")

	tests := []struct {
		name    string
		req     *core.SignUpReq
		wantErr error
	}{
		{
			name:    "unknown role",
			req:     &core.SignUpReq{Username: "a", Email: "a@test.com", Password: "pwd", FullName: "A", Role: "admin"},
			wantErr: consts.ErrInvalidParams,
		},
		{
			name:    "email already taken",
			req:     &core.SignUpReq{Username: "b", Email: "taken@test.com", Password: "pwd", FullName: "B", Role: "student"},
			wantErr: consts.ErrRepeatedSignUp,
		},
		{
			name:    "username already taken",
			req:     &core.SignUpReq{Username: "taken", Email: "c@test.com", Password: "pwd", FullName: "C", Role: "teacher"},
			wantErr: consts.ErrRepeatedSignUp,
		},
		{
			name: "success",
			req:  &core.SignUpReq{Username: "ok", Email: "ok@test.com", Password: "pwd", FullName: "OK", Role: "teacher"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &UserService{UserMapper: &fakeUserMapper{users: []*user.User{existing}}}
			resp, err := s.SignUp(context.Background(), tt.req)
			if err != tt.wantErr {
				t.Fatalf("SignUp() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if resp.Token == "" {
				t.Error("SignUp() returned empty token")
			}
			if resp.User.Email != tt.req.Email || resp.User.Role != tt.req.Role {
				t.Errorf("SignUp() user = %+v", resp.User)
			}
		})
	}
}

func TestSignIn(t *testing.T) {
	u := newUser("t@test.com", "t", consts.RoleTeacher, "correct")

	tests := []struct {
		name    string
		req     *core.SignInReq
		wantErr error
	}{
		{name: "unknown email", req: &core.SignInReq{Email: "x@test.com", Password: "correct"}, wantErr: consts.ErrSignIn},
		{name: "wrong password", req: &core.SignInReq{Email: "t@test.com", Password: "wrong"}, wantErr: consts.ErrSignIn},
		{name: "success", req: &core.SignInReq{Email: "t@test.com", Password: "correct"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &UserService{UserMapper: &fakeUserMapper{users: []*user.User{u}}}
			resp, err := s.SignIn(context.Background(), tt.req)
			if err != tt.wantErr {
				t.Fatalf("SignIn() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && resp.Token == "" {
				t.Error("SignIn() returned empty token")
			}
		})
	}
}

func TestGetMe(t *testing.T) {
	u := newUser("me@test.com", "me", consts.RoleStudent, "pwd")
	s := &UserService{UserMapper: &fakeUserMapper{users: []*user.User{u}}}

	if _, err := s.GetMe(context.Background(), &core.GetMeReq{}); err != consts.ErrNotAuthentication {
		t.Fatalf("GetMe() without token error = %v, want %v", err, consts.ErrNotAuthentication)
	}

	resp, err := s.GetMe(metaCtx(u.ID.Hex(), consts.RoleStudent), &core.GetMeReq{})
	if err != nil {
		t.Fatalf("GetMe() error = %v", err)
	}
	if resp.Id != u.ID.Hex() || resp.Email != u.Email {
		t.Errorf("GetMe() = %+v", resp)
	}
}

func TestUpdateProfile(t *testing.T) {
	u := newUser("me@test.com", "me", consts.RoleStudent, "pwd")
	s := &UserService{UserMapper: &fakeUserMapper{users: []*user.User{u}}}

	newName := "Renamed"
	avatar := "https://cdn.test/a.png"
	resp, err := s.UpdateProfile(metaCtx(u.ID.Hex(), consts.RoleStudent), &core.UpdateProfileReq{
		FullName: &newName,
		Avatar:   &avatar,
	})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if resp.FullName != newName || resp.Avatar == nil || *resp.Avatar != avatar {
		t.Errorf("UpdateProfile() = %+v", resp)
	}
}
