package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/goliatone/go-beiform/pkg/wizard"
)

// User-facing messages for failures whose raw text is not shown.
const (
	NotDeployedMessage = "公式計算APIが見つかりません（バックエンドが未デプロイの可能性があります）。管理者に連絡してください。"
	SmallModelMessage  = "小規模版（SMALLMODEL）原本Excelの直接アップロードは未対応です。公式BEI画面から入力して送信するか、MODEL形式の入力シートをご利用ください。"
	NetworkMessage     = "ネットワークエラーが発生しました。インターネット接続を確認してください。"
	TimeoutMessage     = "公式計算APIからの応答がタイムアウトしました。しばらく待ってから再度お試しください。"
	CanceledMessage    = "送信を中止しました。"
	NotPDFMessage      = "公式レポートAPIが有効なPDFを返しませんでした。"
)

// Phrases in server detail text that mean an original small-model workbook
// was submitted.
var smallModelPhrases = []string{
	"小規模版（SMALLMODEL）原本Excelの直接アップロードは未対応です",
	"様式A 基本情報 は必ずアップロードしてください。",
}

var statusMessages = map[int]string{
	400: "入力データに問題があります。",
	401: "認証が必要です。再度ログインしてください。",
	403: "このリソースにアクセスする権限がありません。",
	422: "データの形式が正しくありません。",
	500: "サーバーでエラーが発生しました。しばらく待ってから再度お試しください。",
	502: "サーバーでエラーが発生しました。しばらく待ってから再度お試しください。",
	503: "サービスが一時的に利用できません。しばらく待ってから再度お試しください。",
}

// Failure is a displayable error with an optional step to navigate to.
type Failure struct {
	Message string `json:"message"`
	Step    int    `json:"step,omitempty"`
	HasStep bool   `json:"has_step"`
	Status  int    `json:"status,omitempty"`
	Path    string `json:"path,omitempty"`
}

// Normalizer folds errors into Failures.
type Normalizer struct {
	router *wizard.Router
}

// NormalizerOption customises a Normalizer.
type NormalizerOption func(*Normalizer)

// WithRouter sets the router used to find a step for the failure.
func WithRouter(router *wizard.Router) NormalizerOption {
	return func(n *Normalizer) {
		if router != nil {
			n.router = router
		}
	}
}

// NewNormalizer builds a Normalizer over the default router unless
// overridden.
func NewNormalizer(opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{}
	for _, opt := range opts {
		if opt != nil {
			opt(n)
		}
	}
	if n.router == nil {
		n.router = wizard.NewRouter()
	}
	return n
}

// Normalize runs the default Normalizer.
func Normalize(err error) Failure {
	return NewNormalizer().Normalize(err)
}

// Normalize maps err to a Failure. A nil error yields the zero Failure.
func (n *Normalizer) Normalize(err error) Failure {
	if err == nil {
		return Failure{}
	}

	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		return n.fromAPIError(apiErr)
	case errors.Is(err, ErrSmallModelWorkbook):
		return Failure{Message: SmallModelMessage}
	case errors.Is(err, ErrNotPDF):
		return Failure{Message: NotPDFMessage}
	case errors.Is(err, context.Canceled):
		return Failure{Message: CanceledMessage}
	case errors.Is(err, context.DeadlineExceeded) || isTimeout(err):
		return Failure{Message: TimeoutMessage}
	case isNetwork(err):
		return Failure{Message: NetworkMessage}
	}

	msg := sanitizeDetail(err.Error())
	return n.route(Failure{Message: fmt.Sprintf("予期しないエラーが発生しました: %s", msg)}, "", msg)
}

func (n *Normalizer) fromAPIError(apiErr *APIError) Failure {
	detail := sanitizeDetail(apiErr.Detail)
	failure := Failure{Status: apiErr.Status}

	if apiErr.Status == 404 || strings.EqualFold(detail, "Not Found") {
		failure.Message = NotDeployedMessage
		return failure
	}
	for _, phrase := range smallModelPhrases {
		if strings.Contains(detail, phrase) {
			failure.Message = SmallModelMessage
			return n.route(failure, "", detail)
		}
	}

	if detail == "" {
		failure.Message = statusMessage(apiErr.Status)
		return failure
	}
	failure.Message = detail

	path := ""
	for _, issue := range apiErr.Fields {
		if issue.Path != "" {
			path = issue.Path
			break
		}
	}
	return n.route(failure, path, detail)
}

// route attaches a step: a field path wins over a section marker in text.
func (n *Normalizer) route(f Failure, path, text string) Failure {
	if normalized := wizard.NormalizeFieldPath(path); normalized != "" {
		f.Path = normalized
		f.Step = n.router.StepForFieldPath(normalized)
		f.HasStep = true
		return f
	}
	if step, ok := n.router.StepForServerErrorTag(text); ok {
		f.Step = step
		f.HasStep = true
	}
	return f
}

func statusMessage(status int) string {
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return fmt.Sprintf("エラーが発生しました (%d)", status)
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isNetwork(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}
