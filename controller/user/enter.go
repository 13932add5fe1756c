package user

type ApiGroup struct {
	ChatApi
	StatsApi
}
