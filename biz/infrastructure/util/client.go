package util

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/config"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/consts"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
)

var client *HttpClient

// CompletionClient 外部AI补全与文本提取服务
type CompletionClient interface {
	ChatCompletion(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	ExtractText(ctx context.Context, filename, contentType string, content []byte) (string, error)
}

// HttpClient 是一个简单的 HTTP 客户端
type HttpClient struct {
	Client *http.Client
}

var ClientSet = wire.NewSet(
	GetHttpClient,
	wire.Bind(new(CompletionClient), new(*HttpClient)),
)

// NewHttpClient 创建一个新的 HttpClient 实例
func NewHttpClient() *HttpClient {
	return &HttpClient{
		Client: &http.Client{},
	}
}

func GetHttpClient() *HttpClient {
	if client == nil {
		client = NewHttpClient()
	}
	return client
}

// SendRequest 发送 HTTP 请求
func (c *HttpClient) SendRequest(ctx context.Context, method, url string, headers map[string]string, body interface{}) (map[string]interface{}, error) {
	// 将 body 序列化为 JSON
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("请求体序列化失败: %w", err)
	}

	// 创建新的请求
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}

	// 设置请求头
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	// 发送请求
	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("发送请求失败: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Error("关闭请求失败: %v", closeErr)
		}
	}()

	// 读取响应
	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取响应失败: %w", err)
	}

	// 检查响应状态码
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code: %d, response body: %s", resp.StatusCode, responseBody)
	}

	// 反序列化响应体
	var responseMap map[string]interface{}
	if err := json.Unmarshal(responseBody, &responseMap); err != nil {
		return nil, fmt.Errorf("反序列化响应失败: %w", err)
	}

	return responseMap, nil
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `mapstructure:"content"`
		} `mapstructure:"message"`
	} `mapstructure:"choices"`
}

// ChatCompletion 调用OpenAI兼容的补全接口, 返回首个choice的文本
func (c *HttpClient) ChatCompletion(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	cfg := config.GetConfig()

	body := make(map[string]interface{})
	body["model"] = cfg.Api.AIModel
	body["messages"] = []map[string]string{
		{"role": "system", "content": systemPrompt},
		{"role": "user", "content": userPrompt},
	}

	header := make(map[string]string)
	header["Content-Type"] = consts.ContentTypeJson
	header["Authorization"] = "Bearer " + cfg.Api.AIKey

	resp, err := c.SendRequest(ctx, consts.Post, cfg.Api.AIUrl, header, body)
	if err != nil {
		return "", err
	}

	var completion completionResponse
	if err := mapstructure.Decode(resp, &completion); err != nil {
		return "", fmt.Errorf("解析补全响应失败: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("补全响应为空")
	}
	return completion.Choices[0].Message.Content, nil
}

// ExtractText 调用外部解码服务提取文档文本
func (c *HttpClient) ExtractText(ctx context.Context, filename, contentType string, content []byte) (string, error) {
	cfg := config.GetConfig()
	if cfg.Api.ExtractUrl == "" {
		return "", fmt.Errorf("未配置文本提取服务")
	}

	body := make(map[string]interface{})
	body["filename"] = filename
	body["contentType"] = contentType
	body["content"] = base64.StdEncoding.EncodeToString(content)

	header := make(map[string]string)
	header["Content-Type"] = consts.ContentTypeJson

	resp, err := c.SendRequest(ctx, consts.Post, cfg.Api.ExtractUrl, header, body)
	if err != nil {
		return "", err
	}
	text := cast.ToString(resp["text"])
	if text == "" {
		return "", fmt.Errorf("提取结果为空")
	}
	return text, nil
}
