package http

import (
	"dayflow/internal/shopping"
)

// --- Request DTOs ---

type parseListReq struct {
	Text string `json:"text" binding:"required,max=5000"`
}

// --- Response DTOs ---

type parseListResp struct {
	Items []shopping.ParsedItem `json:"items"`
}

func (h *handler) newParseListResp(items []shopping.ParsedItem) parseListResp {
	if items == nil {
		items = []shopping.ParsedItem{}
	}
	return parseListResp{Items: items}
}
