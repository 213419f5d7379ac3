package consts

const (
	// ReportDataKey 报表数据缓存，完整键形如 report:data:week:<user_id>
	ReportDataKey = "report:data:"
	// MetricsSummaryKey 汇总接口缓存，完整键形如 metrics:summary:month:<user_id>
	MetricsSummaryKey = "metrics:summary:"
)

const (
	// ReportJobLock 定时报表任务的互斥锁，避免多实例重复发信
	ReportJobLock = "report:job:lock"
)
