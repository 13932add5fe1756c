package controller

import "github.com/Kbc981/oracle-ai-migrate-gcp/controller/user"

var Api = new(ApiGroup)

type ApiGroup struct {
	UserApiGroup user.ApiGroup
}
