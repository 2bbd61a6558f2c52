package core

type AIChatReq struct {
	Prompt  string  `form:"prompt" json:"prompt" query:"prompt"`
	Context *string `form:"context" json:"context,omitempty" query:"context"`
	FileId  *string `form:"file_id" json:"file_id,omitempty" query:"file_id"`
}

type AIChatResp struct {
	Response string `form:"response" json:"response" query:"response"`
}

type AISummarizeReq struct {
	FileId string `form:"file_id" json:"file_id" query:"file_id"`
}

type AISummarizeResp struct {
	Summary string `form:"summary" json:"summary" query:"summary"`
}

type AIHistoryItem struct {
	Id         string `form:"id" json:"id" query:"id"`
	Prompt     string `form:"prompt" json:"prompt" query:"prompt"`
	Response   string `form:"response" json:"response" query:"response"`
	CreateTime string `form:"created_at" json:"created_at" query:"created_at"`
}

type ListAIHistoryReq struct {
}

type ListAIHistoryResp struct {
	History []*AIHistoryItem `form:"history" json:"history" query:"history"`
}
