package util

import (
	"encoding/json"

	"github.com/mdtousif1712-create/prodigy-ai/biz/application/dto/basic"
)

// JSONF 序列化为json字符串, 仅用于日志
func JSONF(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// Succeed 构造一个成功响应
func Succeed(msg string) (*basic.Response, error) {
	return &basic.Response{
		Code: 0,
		Msg:  msg,
	}, nil
}
