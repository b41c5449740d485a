// file: services/submission_service.go
package services

import (
	"HackHub/models"
	"time"
)

// 提交的 create-or-update 归并规则。
// 每支队伍至多一条提交由 TeamID 唯一索引保证；controller 在事务内对
// 队伍行加锁后调用这里的纯函数，重复 create 被确定性地归并为 update，
// 不依赖客户端捕获冲突后重试。

// SubmissionPayload 提交载荷。指针字段为 nil 表示"本次未提供"，
// update 时保留已存储的值；显式空串表示清除可选字段。
type SubmissionPayload struct {
	Title       *string
	Description *string
	GithubURL   *string
	VideoURL    *string
	DemoURL     *string
}

// CheckSubmit 提交/更新的前置判定：只有队长能提交，且提交窗口必须开放。
// 窗口关闭后无一例外，队长也不行。
func CheckSubmit(h *models.Hackathon, team *models.Team, actorID uint32, now time.Time) Decision {
	if actorID != team.LeaderID {
		return Deny(ReasonNotLeader)
	}
	if !IsSubmissionOpen(h, now) {
		return Deny(ReasonSubmissionWindowClosed)
	}
	return Allow()
}

// ValidateCreatePayload 首次提交的必填校验：GitHub 与视频链接缺一不可
func ValidateCreatePayload(p SubmissionPayload) bool {
	return p.GithubURL != nil && *p.GithubURL != "" &&
		p.VideoURL != nil && *p.VideoURL != "" &&
		p.Title != nil && *p.Title != ""
}

// ValidateRequiredFields 更新后必填字段仍不可为空
func ValidateRequiredFields(s *models.Submission) bool {
	return s.GithubURL != "" && s.VideoURL != "" && s.Title != ""
}

// ApplyPayload 将载荷合并进已有提交：nil 字段不动，非 nil 字段覆盖。
// 可选字段（DemoURL）允许被显式置空。
func ApplyPayload(s *models.Submission, p SubmissionPayload) {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.GithubURL != nil {
		s.GithubURL = *p.GithubURL
	}
	if p.VideoURL != nil {
		s.VideoURL = *p.VideoURL
	}
	if p.DemoURL != nil {
		s.DemoURL = *p.DemoURL
	}
}

// NewSubmission 从载荷构造首次提交记录，调用前必须通过 ValidateCreatePayload
func NewSubmission(team *models.Team, actorID uint32, p SubmissionPayload) models.Submission {
	s := models.Submission{
		TeamID:      team.ID,
		HackathonID: team.HackathonID,
		SubmittedBy: actorID,
	}
	ApplyPayload(&s, p)
	return s
}

// CheckAttachmentSlot 附件槽位合法性：只有 1 和 2 两个文档槽
func CheckAttachmentSlot(slot uint8) bool {
	return slot == 1 || slot == 2
}
