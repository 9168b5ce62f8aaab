package event

import (
	"net/http"
	"strings"
)

// Svix 投递时携带的三个鉴权请求头
const (
	HeaderID        = "svix-id"
	HeaderTimestamp = "svix-timestamp"
	HeaderSignature = "svix-signature"
)

// Headers 一次投递的鉴权信息
type Headers struct {
	ID        string
	Timestamp string
	Signature string
}

// HeadersFromRequest 从 HTTP 请求头提取
func HeadersFromRequest(h http.Header) Headers {
	return Headers{
		ID:        strings.TrimSpace(h.Get(HeaderID)),
		Timestamp: strings.TrimSpace(h.Get(HeaderTimestamp)),
		Signature: strings.TrimSpace(h.Get(HeaderSignature)),
	}
}

// Complete 三个头是否齐全
func (h Headers) Complete() bool {
	return h.ID != "" && h.Timestamp != "" && h.Signature != ""
}

// HTTP 重新组装成验签器需要的 http.Header
func (h Headers) HTTP() http.Header {
	header := http.Header{}
	header.Set(HeaderID, h.ID)
	header.Set(HeaderTimestamp, h.Timestamp)
	header.Set(HeaderSignature, h.Signature)
	return header
}
