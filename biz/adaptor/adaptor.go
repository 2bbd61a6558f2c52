package adaptor

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/mdtousif1712-create/prodigy-ai/biz/application/dto/basic"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/config"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/util"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/golang-jwt/jwt/v4"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type contextKey string

const (
	hertzContext contextKey = "hertz_context"
	userMetaKey  contextKey = "user_meta"
)

func InjectContext(ctx context.Context, c *app.RequestContext) context.Context {
	return context.WithValue(ctx, hertzContext, c)
}

func ExtractContext(ctx context.Context) (*app.RequestContext, error) {
	c, ok := ctx.Value(hertzContext).(*app.RequestContext)
	if !ok {
		return nil, errors.New("hertz context not found")
	}
	return c, nil
}

// InjectUserMeta 直接注入用户信息, 测试时使用
func InjectUserMeta(ctx context.Context, user *basic.UserMeta) context.Context {
	return context.WithValue(ctx, userMetaKey, user)
}

// ExtractUserMeta 从上下文中解析用户信息, 解析失败时返回空UserMeta
func ExtractUserMeta(ctx context.Context) (user *basic.UserMeta) {
	if u, ok := ctx.Value(userMetaKey).(*basic.UserMeta); ok {
		return u
	}

	user = new(basic.UserMeta)
	var err error
	defer func() {
		if err != nil {
			log.CtxInfo(ctx, "extract user meta fail, err=%v", err)
		}
	}()
	c, err := ExtractContext(ctx)
	if err != nil {
		return
	}
	tokenString := strings.TrimPrefix(string(c.GetHeader("Authorization")), "Bearer ")
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.GetConfig().Auth.SecretKey), nil
	})
	if err != nil {
		return
	}
	if !token.Valid {
		err = errors.New("token is not valid")
		return
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		err = errors.New("unexpected claims type")
		return
	}
	user.UserId, _ = claims["userId"].(string)
	user.Role, _ = claims["role"].(string)
	return
}

// GenerateJwtToken 生成jwt, 载荷中冗余携带角色
func GenerateJwtToken(userId, role string) (string, int64, error) {
	iat := time.Now().Unix()
	exp := iat + config.GetConfig().Auth.AccessExpire
	claims := make(jwt.MapClaims)
	claims["exp"] = exp
	claims["iat"] = iat
	claims["userId"] = userId
	claims["role"] = role
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(config.GetConfig().Auth.SecretKey))
	if err != nil {
		return "", 0, err
	}
	return tokenString, exp, nil
}

// PostProcess 统一的响应处理: 成功返回resp, 失败按错误码映射HTTP状态
func PostProcess(ctx context.Context, c *app.RequestContext, req, resp any, err error) {
	log.CtxInfo(ctx, "[%s] req=%s, resp=%s, err=%v", c.Path(), util.JSONF(req), util.JSONF(resp), err)
	if err == nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	s, _ := status.FromError(err)
	c.JSON(httpStatus(s.Code()), &basic.Response{
		Code: int64(s.Code()),
		Msg:  s.Message(),
	})
}

func httpStatus(code codes.Code) int {
	switch code {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists:
		return http.StatusConflict
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
