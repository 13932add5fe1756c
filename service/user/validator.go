package user

import (
	"strings"

	"github.com/Kbc981/oracle-ai-migrate-gcp/model/common"
)

type IValidator interface {
	ValidatorChatRequest(data *common.ChatRequest) error
}

type Validator struct{}

func (v *Validator) ValidatorChatRequest(data *common.ChatRequest) error {
	if data == nil || strings.TrimSpace(data.Message) == "" {
		return ErrValidation
	}
	return nil
}
