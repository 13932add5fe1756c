package service

import (
	"github.com/Kbc981/oracle-ai-migrate-gcp/service/user"
)

type ServiceGroup struct {
	UserServiceGroup user.ServiceGroup
}

var Service = new(ServiceGroup)
