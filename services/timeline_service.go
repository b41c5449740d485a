// file: services/timeline_service.go
package services

import (
	"HackHub/models"
	"time"
)

// Phase 是根据时间窗口推导出的活动阶段，取值与 HackathonStatus 一致
type Phase string

const (
	PhaseDraft              Phase = "draft"
	PhasePublished          Phase = "published"
	PhaseRegistrationClosed Phase = "registration_closed"
	PhaseSubmissionClosed   Phase = "submission_closed"
	PhaseJudging            Phase = "judging"
	PhaseResultsPublished   Phase = "results_published"
)

// Window 表示一类动作的生效时间区间。
// Start/End 同时存在时取显式区间；否则看 Deadline，区间为 (start, Deadline]，
// 仅 deadline 配置时 start 取上一阶段的截止（见 SubmissionWindow/JudgingWindow），
// 没有上一阶段则为 -∞。两者都没有则窗口视为未配置。
type Window struct {
	Start    *time.Time
	End      *time.Time
	Deadline *time.Time
}

// Resolve 归一化为 (start, end)。start 为 nil 表示 -∞。
// ok 为 false 表示窗口未配置（或配置非法），对应谓词一律返回 false，
// 绝不因为"没配置"而默认放行。
func (w Window) Resolve() (start, end *time.Time, ok bool) {
	if w.Start != nil && w.End != nil {
		// start > end 视为配置非法，按未配置处理
		if w.Start.After(*w.End) {
			return nil, nil, false
		}
		return w.Start, w.End, true
	}
	if w.Deadline != nil {
		if w.Start != nil {
			if w.Start.After(*w.Deadline) {
				return nil, nil, false
			}
			return w.Start, w.Deadline, true
		}
		return nil, w.Deadline, true
	}
	return nil, nil, false
}

// Contains 判断 now 是否落在窗口内，now 永远由调用方传入
func (w Window) Contains(now time.Time) bool {
	start, end, ok := w.Resolve()
	if !ok {
		return false
	}
	if start != nil && now.Before(*start) {
		return false
	}
	return !now.After(*end)
}

// ExplicitStart 返回窗口配置里的起点；deadline-only 窗口没有起点。
// 只应在原始配置（未经 chainStart 推导）上调用，链出来的隐式起点不算显式。
func (w Window) ExplicitStart() *time.Time {
	start, _, ok := w.Resolve()
	if !ok {
		return nil
	}
	return start
}

// chainStart 仅 deadline 配置时，把上一阶段的截止作为隐式起点。
// 各阶段的 deadline 是依次排列的：报名截止前提交不开放，提交截止前评审不开放。
func chainStart(w Window, prev Window) Window {
	if w.Start == nil && w.End == nil && w.Deadline != nil {
		if _, prevEnd, ok := prev.Resolve(); ok {
			w.Start = prevEnd
		}
	}
	return w
}

// RegistrationWindow 组队报名窗口
func RegistrationWindow(h *models.Hackathon) Window {
	return Window{Start: h.TeamRegStart, End: h.TeamRegEnd, Deadline: h.TeamRegDeadline}
}

// SubmissionWindow 作品提交窗口，deadline-only 时从报名截止开始
func SubmissionWindow(h *models.Hackathon) Window {
	w := Window{Start: h.SubmissionStart, End: h.SubmissionEnd, Deadline: h.SubmissionDeadline}
	return chainStart(w, RegistrationWindow(h))
}

// judgingConfig 评审窗口的原始配置，不做 deadline 链式推导
func judgingConfig(h *models.Hackathon) Window {
	return Window{Start: h.JudgingStart, End: h.JudgingEnd, Deadline: h.JudgingDeadline}
}

// JudgingWindow 评审窗口，deadline-only 时从提交截止开始
func JudgingWindow(h *models.Hackathon) Window {
	return chainStart(judgingConfig(h), SubmissionWindow(h))
}

// IsRegistrationOpen 组队报名是否开放
func IsRegistrationOpen(h *models.Hackathon, now time.Time) bool {
	return RegistrationWindow(h).Contains(now)
}

// IsSubmissionOpen 作品提交是否开放。
// 只看窗口时间，不看 status：主办方改 status 既不能提前重开提交，
// 也不能让未到期的窗口失效。
func IsSubmissionOpen(h *models.Hackathon, now time.Time) bool {
	return SubmissionWindow(h).Contains(now)
}

// IsJudgingOpen 评审是否开放
func IsJudgingOpen(h *models.Hackathon, now time.Time) bool {
	return JudgingWindow(h).Contains(now)
}

// lastConfiguredEnd 返回最后一个已配置窗口的结束时间：
// 评审 > 提交 > 报名，均未配置时返回 nil
func lastConfiguredEnd(h *models.Hackathon) *time.Time {
	for _, w := range []Window{JudgingWindow(h), SubmissionWindow(h), RegistrationWindow(h)} {
		if _, end, ok := w.Resolve(); ok {
			return end
		}
	}
	return nil
}

// HasEnded 活动是否已结束：status 已公布结果，或当前时间晚于最后一个窗口的结束
func HasEnded(h *models.Hackathon, now time.Time) bool {
	if h.Status == models.HackathonStatusResultsPublished {
		return true
	}
	if end := lastConfiguredEnd(h); end != nil {
		return now.After(*end)
	}
	return false
}

// windowPassed 窗口已配置且 now 已晚于其结束时间
func windowPassed(w Window, now time.Time) bool {
	_, end, ok := w.Resolve()
	return ok && now.After(*end)
}

// EvaluatePhase 根据窗口推导当前阶段。
// draft / results_published 没有窗口等价物，以 status 为准；
// 其余阶段一律由时间计算得出，status 与窗口不一致时以窗口为准。
func EvaluatePhase(h *models.Hackathon, now time.Time) Phase {
	switch {
	case h.Status == models.HackathonStatusDraft:
		return PhaseDraft
	case h.Status == models.HackathonStatusResultsPublished:
		return PhaseResultsPublished
	case IsJudgingOpen(h, now):
		return PhaseJudging
	case windowPassed(SubmissionWindow(h), now):
		return PhaseSubmissionClosed
	case IsRegistrationOpen(h, now):
		return PhasePublished
	case windowPassed(RegistrationWindow(h), now):
		return PhaseRegistrationClosed
	default:
		return PhasePublished
	}
}
