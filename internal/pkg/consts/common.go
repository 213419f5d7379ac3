package consts

// DateLayout 业务日期统一使用 ISO 格式，数据库 date 列与接口入参都按它解析
const DateLayout = "2006-01-02"

const (
	TimeframeWeek  = "week"
	TimeframeMonth = "month"
	TimeframeYear  = "year"
)
