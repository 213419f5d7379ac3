package stats

import (
	"math"

	"Milestone/internal/model"
)

// WorkingDaysPerYear 年度目标折算到每日时假定的工作日数（每周 5 天、50 周）
const WorkingDaysPerYear = 250

// DealsNeeded 达成年度收入目标所需成交数。
// 必须向上取整：不足一单也要按一单计，保证收入目标可以被覆盖。
func DealsNeeded(annualIncomeGoal, averageCommissionPerDeal float64) int {
	if averageCommissionPerDeal <= 0 {
		return 0
	}
	return int(math.Ceil(annualIncomeGoal / averageCommissionPerDeal))
}

// Progress 完成度百分比，封顶 100（超额不显示超过整条进度条）
func Progress(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	p := current / target * 100
	if p > 100 {
		return 100
	}
	return p
}

// DailyPace 把年度指标均摊到工作日，向上取整
func DailyPace(annualTarget int) int {
	if annualTarget <= 0 {
		return 0
	}
	return (annualTarget + WorkingDaysPerYear - 1) / WorkingDaysPerYear
}

const (
	TargetSourceExplicit = "explicit"
	TargetSourceDerived  = "derived"
)

// TargetSource 每日目标的来源：用户显式维护的 DailyTarget 优先，
// 否则从年度目标按工作日折算。两种来源互斥，解析一次后透传。
type TargetSource struct {
	Source   string
	explicit *model.DailyTarget
	annual   *model.Goal
}

// ResolveTargetSource 解析目标来源；explicit 存在时始终优先
func ResolveTargetSource(explicit *model.DailyTarget, annual *model.Goal) TargetSource {
	if explicit != nil {
		return TargetSource{Source: TargetSourceExplicit, explicit: explicit}
	}
	return TargetSource{Source: TargetSourceDerived, annual: annual}
}

// DailyTargets 解析后的每日活动目标
type DailyTargets struct {
	CallsMade            int
	ContactsReached      int
	AppointmentsSet      int
	AppointmentsAttended int
	ListingPresentations int
	ListingsTaken        int
	BuyersSigned         int
	ClosedDeals          int
}

// Targets 产出各指标的每日目标值。
// 折算来源只有年度成交数可摊（年度目标中没有逐项活动指标），
// 其余指标目标为 0，进度按零目标规则返回 0。
func (s TargetSource) Targets() DailyTargets {
	if s.Source == TargetSourceExplicit && s.explicit != nil {
		return DailyTargets{
			CallsMade:            s.explicit.CallsMadeTarget,
			ContactsReached:      s.explicit.ContactsReachedTarget,
			AppointmentsSet:      s.explicit.AppointmentsSetTarget,
			AppointmentsAttended: s.explicit.AppointmentsAttendedTarget,
			ListingPresentations: s.explicit.ListingPresentationsTarget,
			ListingsTaken:        s.explicit.ListingsTakenTarget,
			BuyersSigned:         s.explicit.BuyersSignedTarget,
		}
	}
	var t DailyTargets
	if s.annual != nil {
		t.ClosedDeals = DailyPace(s.annual.DealsNeeded)
	}
	return t
}
