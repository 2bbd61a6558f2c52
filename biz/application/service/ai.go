package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/wire"
	"github.com/samber/lo"

	"github.com/mdtousif1712-create/prodigy-ai/biz/application/dto/prodigy/core"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/cache"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/consts"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/aichat"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/file"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/user"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/util"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/util/log"
)

const tutorSystemPrompt = "You are a helpful tutor assistant."

type IAIService interface {
	Chat(ctx context.Context, req *core.AIChatReq) (*core.AIChatResp, error)
	Summarize(ctx context.Context, req *core.AISummarizeReq) (*core.AISummarizeResp, error)
	ListHistory(ctx context.Context, req *core.ListAIHistoryReq) (*core.ListAIHistoryResp, error)
}

type AIService struct {
	AIChatMapper       aichat.Mapper
	FileMapper         file.Mapper
	UserMapper         user.Mapper
	ExtractCacheMapper cache.IExtractCacheMapper
	Client             util.CompletionClient
}

var AIServiceSet = wire.NewSet(
	wire.Struct(new(AIService), "*"),
	wire.Bind(new(IAIService), new(*AIService)),
)

// Chat AI辅导问答, 调用失败时不写历史
func (s *AIService) Chat(ctx context.Context, req *core.AIChatReq) (*core.AIChatResp, error) {
	meta, err := requireUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	if req.Prompt == "" {
		return nil, consts.ErrInvalidParams
	}
	u, err := s.UserMapper.FindOne(ctx, meta.GetUserId())
	if err != nil {
		return nil, consts.ErrNotFound
	}

	// 拼接上下文, 指定文件时附带其提取文本
	context := ""
	if req.Context != nil {
		context = *req.Context
	}
	if req.FileId != nil {
		if text := s.fileContext(ctx, meta.GetUserId(), *req.FileId); text != "" {
			context += "\n\n" + text
		}
	}

	prompt := fmt.Sprintf(`
You are PRODIGY AI — a helpful learning tutor.

User Role: %s
User Name: %s

Context (if any):
%s

User Question:
%s
`, u.Role, u.FullName, context, req.Prompt)

	reply, err := s.Client.ChatCompletion(ctx, tutorSystemPrompt, prompt)
	if err != nil {
		log.CtxError(ctx, "AI调用失败: %v", err)
		return nil, consts.ErrAIService
	}

	// 历史写入失败只记日志, 不影响返回
	record := &aichat.Record{
		UserID:     meta.GetUserId(),
		Prompt:     req.Prompt,
		Response:   reply,
		CreateTime: time.Now(),
	}
	if err = s.AIChatMapper.Insert(ctx, record); err != nil {
		log.Error("写入AI对话历史失败: %v", err)
	}

	return &core.AIChatResp{Response: reply}, nil
}

// Summarize 文档摘要, 暂未开放
func (s *AIService) Summarize(ctx context.Context, req *core.AISummarizeReq) (*core.AISummarizeResp, error) {
	if _, err := requireUser(ctx, s.UserMapper); err != nil {
		return nil, err
	}
	return &core.AISummarizeResp{Summary: "Summarization will be enabled later"}, nil
}

// ListHistory 获取自己的AI对话历史
func (s *AIService) ListHistory(ctx context.Context, req *core.ListAIHistoryReq) (*core.ListAIHistoryResp, error) {
	meta, err := requireUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	records, err := s.AIChatMapper.FindByUserID(ctx, meta.GetUserId())
	if err != nil {
		log.Error("获取AI对话历史失败: %v", err)
		return nil, consts.ErrNotFound
	}
	return &core.ListAIHistoryResp{
		History: lo.Map(records, func(r *aichat.Record, _ int) *core.AIHistoryItem {
			return &core.AIHistoryItem{
				Id:         r.ID.Hex(),
				Prompt:     r.Prompt,
				Response:   r.Response,
				CreateTime: r.CreateTime.Format(time.RFC3339),
			}
		}),
	}, nil
}

// fileContext 取文件的提取文本并截断, 优先走缓存
func (s *AIService) fileContext(ctx context.Context, userID, fileID string) string {
	if text, err := s.ExtractCacheMapper.Get(ctx, fileID); err == nil && text != "" {
		return truncate(text, consts.MaxFileContextSize)
	}

	f, err := s.FileMapper.FindOne(ctx, fileID)
	if err != nil || f.OwnerID != userID || f.ExtractedText == nil {
		return ""
	}
	text := truncate(*f.ExtractedText, consts.MaxFileContextSize)
	if err := s.ExtractCacheMapper.Set(ctx, fileID, text); err != nil {
		log.CtxInfo(ctx, "写入提取缓存失败 file=%s: %v", fileID, err)
	}
	return text
}

func truncate(s string, limit int) string {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}
