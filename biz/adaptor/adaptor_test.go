package adaptor

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/golang-jwt/jwt/v4"

	"github.com/mdtousif1712-create/prodigy-ai/biz/application/dto/basic"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/config"
)

func TestMain(m *testing.M) {
	os.Setenv("CONFIG_PATH", "testdata/config.yaml")
	if _, err := config.NewConfig(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestGenerateJwtToken(t *testing.T) {
	token, exp, err := GenerateJwtToken("user-1", "teacher")
	if err != nil {
		t.Fatalf("GenerateJwtToken() error = %v", err)
	}
	if token == "" || exp <= 0 {
		t.Fatalf("GenerateJwtToken() = %q, exp %d", token, exp)
	}
}

func TestExtractUserMetaInjected(t *testing.T) {
	// 直接注入的UserMeta优先于请求头
	ctx := InjectUserMeta(context.Background(), &basic.UserMeta{UserId: "user-1", Role: "student"})
	meta := ExtractUserMeta(ctx)
	if meta.GetUserId() != "user-1" || meta.GetRole() != "student" {
		t.Errorf("ExtractUserMeta() = %+v", meta)
	}
}

func TestExtractUserMetaFromHeader(t *testing.T) {
	token, _, err := GenerateJwtToken("user-1", "teacher")
	if err != nil {
		t.Fatalf("GenerateJwtToken() error = %v", err)
	}
	meta := ExtractUserMeta(bearerCtx(token))
	if meta.GetUserId() != "user-1" || meta.GetRole() != "teacher" {
		t.Errorf("ExtractUserMeta() = %+v", meta)
	}
}

func TestExtractUserMetaExpiredToken(t *testing.T) {
	// 过期token解析失败, 返回空UserMeta
	claims := jwt.MapClaims{
		"exp":    time.Now().Add(-time.Hour).Unix(),
		"iat":    time.Now().Add(-2 * time.Hour).Unix(),
		"userId": "user-1",
		"role":   "teacher",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.GetConfig().Auth.SecretKey))
	if err != nil {
		t.Fatalf("sign token error = %v", err)
	}
	meta := ExtractUserMeta(bearerCtx(token))
	if meta.GetUserId() != "" || meta.GetRole() != "" {
		t.Errorf("ExtractUserMeta() = %+v, want empty meta", meta)
	}
}

func bearerCtx(token string) context.Context {
	c := app.NewContext(0)
	c.Request.Header.Set("Authorization", "Bearer "+token)
	return InjectContext(context.Background(), c)
}

func TestExtractUserMetaMissing(t *testing.T) {
	// 无token时返回空UserMeta而不是nil
	meta := ExtractUserMeta(context.Background())
	if meta == nil {
		t.Fatal("ExtractUserMeta() = nil")
	}
	if meta.GetUserId() != "" || meta.GetRole() != "" {
		t.Errorf("ExtractUserMeta() = %+v", meta)
	}
}
