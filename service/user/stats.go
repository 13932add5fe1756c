package user

import (
	"errors"
	"time"

	"github.com/Kbc981/oracle-ai-migrate-gcp/model/common"
)

var ErrStatsDisabled = errors.New("chat log storage is not configured")

const (
	defaultStatsDays = 7
	maxStatsDays     = 365
)

type IStatsService interface {
	SourceCounts(days int) (*common.StatsResponse, error)
}

type StatsService struct {
	store ChatLogStore
	now   func() time.Time
}

func NewStatsService(store ChatLogStore) *StatsService {
	return &StatsService{store: store, now: time.Now}
}

// SourceCounts 最近days天内各回复来源的请求数
func (s *StatsService) SourceCounts(days int) (*common.StatsResponse, error) {
	if s.store == nil {
		return nil, ErrStatsDisabled
	}
	if days <= 0 {
		days = defaultStatsDays
	}
	if days > maxStatsDays {
		days = maxStatsDays
	}

	since := s.now().Add(-time.Duration(days) * 24 * time.Hour).Unix()
	list := make([]common.SourceCount, 0, 3)
	if err := s.store.CountBySource(since, &list); err != nil {
		return nil, err
	}

	res := &common.StatsResponse{Days: days, Sources: list}
	for _, c := range list {
		res.Total += c.Total
	}
	return res, nil
}
