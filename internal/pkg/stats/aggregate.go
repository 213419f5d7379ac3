package stats

import (
	"math"

	"Milestone/internal/model"
)

// Totals 区间汇总结果，字段与单日记录一一对应
type Totals struct {
	CallsMade            int     `json:"callsMade"`
	ContactsReached      int     `json:"contactsReached"`
	AppointmentsSet      int     `json:"appointmentsSet"`
	AppointmentsAttended int     `json:"appointmentsAttended"`
	ListingPresentations int     `json:"listingPresentations"`
	ListingsTaken        int     `json:"listingsTaken"`
	BuyersSigned         int     `json:"buyersSigned"`
	ActiveListings       int     `json:"activeListings"`
	PendingContracts     int     `json:"pendingContracts"`
	ClosedDeals          int     `json:"closedDeals"`
	VolumeClosed         float64 `json:"volumeClosed"`
}

// FunnelRates 转化漏斗各级转化率（百分比，保留一位小数）
type FunnelRates struct {
	CallsToContacts         float64 `json:"callsToContacts"`
	ContactsToAppointments  float64 `json:"contactsToAppointments"`
	AppointmentsToAttended  float64 `json:"appointmentsToAttended"`
	AttendedToPresentations float64 `json:"attendedToPresentations"`
	PresentationsToListings float64 `json:"presentationsToListings"`
}

// Aggregate 把若干单日记录汇总为区间合计。
// 流量型字段直接累加；ActiveListings / PendingContracts 是时点快照，
// 取区间内的最大值而非求和。空输入返回全零。
func Aggregate(records []model.DailyMetric) Totals {
	var t Totals
	for _, r := range records {
		t.CallsMade += r.CallsMade
		t.ContactsReached += r.ContactsReached
		t.AppointmentsSet += r.AppointmentsSet
		t.AppointmentsAttended += r.AppointmentsAttended
		t.ListingPresentations += r.ListingPresentations
		t.ListingsTaken += r.ListingsTaken
		t.BuyersSigned += r.BuyersSigned
		t.ClosedDeals += r.ClosedDeals
		t.VolumeClosed += r.VolumeClosed

		if r.ActiveListings > t.ActiveListings {
			t.ActiveListings = r.ActiveListings
		}
		if r.PendingContracts > t.PendingContracts {
			t.PendingContracts = r.PendingContracts
		}
	}
	return t
}

// Rate 计算百分比转化率，保留一位小数；分母为零时返回 0
func Rate(numerator, denominator int) float64 {
	if denominator <= 0 {
		return 0
	}
	return math.Round(float64(numerator)/float64(denominator)*1000) / 10
}

// Funnel 按固定顺序计算漏斗转化率
func Funnel(t Totals) FunnelRates {
	return FunnelRates{
		CallsToContacts:         Rate(t.ContactsReached, t.CallsMade),
		ContactsToAppointments:  Rate(t.AppointmentsSet, t.ContactsReached),
		AppointmentsToAttended:  Rate(t.AppointmentsAttended, t.AppointmentsSet),
		AttendedToPresentations: Rate(t.ListingPresentations, t.AppointmentsAttended),
		PresentationsToListings: Rate(t.ListingsTaken, t.ListingPresentations),
	}
}
