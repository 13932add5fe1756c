package llm

import (
	"errors"
	"fmt"

	"github.com/Kbc981/oracle-ai-migrate-gcp/model/enum"
)

type ErrorKind string

const (
	KindRateLimited ErrorKind = "rate_limited"
	KindUpstream    ErrorKind = "upstream"
	KindTransport   ErrorKind = "transport"
)

var ErrNoProvider = errors.New("no API keys available")

// ProviderError 带来源的供应商错误, 网关据此决定是否切换
type ProviderError struct {
	Provider enum.Provider
	Kind     ErrorKind
	Status   int
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	name := e.Provider.Title()
	switch e.Kind {
	case KindRateLimited:
		return fmt.Sprintf("%s API rate limited (429). Please try again in a few minutes or upgrade your plan.", name)
	case KindUpstream:
		if e.Message != "" {
			return fmt.Sprintf("%s API error: %d - %s", name, e.Status, e.Message)
		}
		return fmt.Sprintf("%s API error: %d", name, e.Status)
	}
	return fmt.Sprintf("%s API request failed: %v", name, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// OriginatedFrom 错误链中是否有来自p的ProviderError
func OriginatedFrom(err error, p enum.Provider) bool {
	var pe *ProviderError
	return errors.As(err, &pe) && pe.Provider == p
}

// IsRateLimited 任意供应商返回了429
func IsRateLimited(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe) && pe.Kind == KindRateLimited
}

func statusError(p enum.Provider, status int, msg string) *ProviderError {
	kind := KindUpstream
	if status == 429 {
		kind = KindRateLimited
	}
	return &ProviderError{Provider: p, Kind: kind, Status: status, Message: msg}
}
