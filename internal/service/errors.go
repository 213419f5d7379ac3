package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid       = errors.New("参数错误")
	ErrDateInvalid        = errors.New("日期格式错误")
	ErrTimeframeInvalid   = errors.New("不支持的统计周期")
	ErrContactNotFound    = errors.New("联系人不存在")
	ErrContactTypeInvalid = errors.New("联系人类型无效")
	ErrStatusInvalid      = errors.New("跟进状态无效")
	ErrLeadSourceInvalid  = errors.New("获客渠道无效")
	ErrGoalNotFound       = errors.New("该年度尚未设置目标")
	ErrNoMetricsData      = errors.New("所选区间没有活动数据")
	ErrNoRecipient        = errors.New("未找到收件邮箱")
	ErrCSVInvalid         = errors.New("CSV 文件无法解析")
	UnExpectedError       = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:       BadRequest,
	ErrDateInvalid:        BadRequest,
	ErrTimeframeInvalid:   BadRequest,
	ErrContactNotFound:    NotFound,
	ErrContactTypeInvalid: BadRequest,
	ErrStatusInvalid:      BadRequest,
	ErrLeadSourceInvalid:  BadRequest,
	ErrGoalNotFound:       NotFound,
	ErrNoMetricsData:      NotFound,
	ErrNoRecipient:        NotFound,
	ErrCSVInvalid:         BadRequest,
	UnExpectedError:       InternalServerError,
}
