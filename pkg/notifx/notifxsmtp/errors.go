package notifxsmtp

import "github.com/quicksend/quicksend/pkg/errx"

var smtpErrors = errx.NewRegistry("NOTIFX_SMTP")

var (
	ErrConnectFailed = smtpErrors.Register("CONNECT_FAILED", errx.TypeExternal, 502, "Failed to connect to SMTP relay")
	ErrSendFailed    = smtpErrors.Register("SEND_FAILED", errx.TypeExternal, 502, "SMTP relay rejected the message")
	ErrBuildMessage  = smtpErrors.Register("BUILD_MESSAGE", errx.TypeInternal, 500, "Failed to build SMTP message")
)
