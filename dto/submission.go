// file: dto/submission.go
package dto

import "strings"

// ========== 请求 DTO ==========

// SubmitProjectReq 提交/更新作品的载荷。
// 指针字段区分"未提供"(nil) 与"显式置空"("")，update 时 nil 字段保留原值。
type SubmitProjectReq struct {
	// 规范字段（snake_case）
	Title       *string `json:"title"`
	Description *string `json:"description"`
	GithubURL   *string `json:"github_url"`
	VideoURL    *string `json:"video_url"`
	DemoURL     *string `json:"demo_url"`

	// 仅用于兼容旧客户端（camelCase 变体），所有别名与上面 tag 不重复
	GithubURLCamel *string `json:"githubUrl"`
	VideoURLCamel  *string `json:"videoUrl"`
	DemoURLCamel   *string `json:"demoUrl"`
}

// Normalize: 将 camelCase 别名归一化到 snake_case，并做轻量清洗
func (r *SubmitProjectReq) Normalize() {
	if r.GithubURL == nil && r.GithubURLCamel != nil {
		r.GithubURL = r.GithubURLCamel
	}
	if r.VideoURL == nil && r.VideoURLCamel != nil {
		r.VideoURL = r.VideoURLCamel
	}
	if r.DemoURL == nil && r.DemoURLCamel != nil {
		r.DemoURL = r.DemoURLCamel
	}

	trim := func(p *string) {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
	trim(r.Title)
	trim(r.GithubURL)
	trim(r.VideoURL)
	trim(r.DemoURL)
}

// ========== 响应 DTO ==========

type AttachmentMini struct {
	ID       uint64 `json:"id"`
	Slot     uint8  `json:"slot"`
	FileName string `json:"file_name"`
	Size     uint64 `json:"size"`
	SHA256   string `json:"sha256"`
	Status   string `json:"status"`
}

type SubmissionResp struct {
	ID          uint64           `json:"id"`
	TeamID      uint32           `json:"team_id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	GithubURL   string           `json:"github_url"`
	VideoURL    string           `json:"video_url"`
	DemoURL     string           `json:"demo_url,omitempty"`
	Attachments []AttachmentMini `json:"attachments"`
	UpdatedAt   string           `json:"updated_at"`
}

// JudgeSubmissionItemResp 评委视角的提交列表项
type JudgeSubmissionItemResp struct {
	ID        uint64 `json:"id"`
	TeamID    uint32 `json:"team_id"`
	TeamName  string `json:"team_name"`
	Title     string `json:"title"`
	GithubURL string `json:"github_url"`
	VideoURL  string `json:"video_url"`
	DemoURL   string `json:"demo_url,omitempty"`
	Rated     bool   `json:"rated"`
}
