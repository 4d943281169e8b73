// Package response defines the envelope every article endpoint answers with.
package response

// Code is the in-band outcome code carried by an Envelope.
type Code int

const (
	CodeOK         Code = 200
	CodeBadRequest Code = 400
	CodeNotFound   Code = 404
	CodeInternal   Code = 500
)

// Standard messages.
const (
	MsgFetched      = "获取成功"
	MsgCreated      = "创建成功"
	MsgUpdated      = "更新成功"
	MsgDeleted      = "删除成功"
	MsgNotFound     = "文章不存在"
	MsgInvalidBody  = "请求体格式错误"
	MsgInternal     = "服务器错误"
	MsgEmptyUpdate  = "没有要更新的字段"
	MsgMissingField = "标题、内容、作者和分类为必填字段"
)

// Envelope is the {code, message, data} payload. Data is omitted when nil.
type Envelope struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Option customizes an Envelope.
type Option func(*Envelope)

// WithMessage overrides the message.
func WithMessage(message string) Option {
	return func(e *Envelope) {
		e.Message = message
	}
}

// WithData attaches a payload.
func WithData(data any) Option {
	return func(e *Envelope) {
		e.Data = data
	}
}

// Success builds a CodeOK envelope.
func Success(data any, message string) Envelope {
	return New(CodeOK, WithData(data), WithMessage(message))
}

// Failure builds an envelope without data.
func Failure(code Code, message string) Envelope {
	return New(code, WithMessage(message))
}

// New builds an envelope with the given code and options.
func New(code Code, opts ...Option) Envelope {
	e := Envelope{Code: code}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}
