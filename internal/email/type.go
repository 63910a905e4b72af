package email

import "context"

//go:generate mockgen -source=./type.go -package=emailmocks -destination=./mocks/email.mock.go Service
type Service interface {
	SendMail(ctx context.Context, mail Mail) error
}

type Mail struct {
	From        string
	To          string
	Subject     string
	Body        []byte
	Attachments []Attachment
}

type Attachment struct {
	Filename string
	Content  []byte
	// 可公开访问的 HTTP(S) 地址，部分渠道不支持直传附件
	URL string
}
