// file: mappers/submission_mapper.go
package mappers

import (
	"HackHub/dto"
	"HackHub/models"
)

// ToSubmissionResp 模型 → 响应 DTO，附件只带 active 状态的
func ToSubmissionResp(s *models.Submission) dto.SubmissionResp {
	mini := make([]dto.AttachmentMini, 0, len(s.Attachments))
	for _, a := range s.Attachments {
		if a.Status != models.AttachmentStatusActive {
			continue
		}
		mini = append(mini, dto.AttachmentMini{
			ID:       a.ID,
			Slot:     a.Slot,
			FileName: a.FileName,
			Size:     uint64(a.FileSize),
			SHA256:   a.SHA256,
			Status:   string(a.Status),
		})
	}

	return dto.SubmissionResp{
		ID:          s.ID,
		TeamID:      s.TeamID,
		Title:       s.Title,
		Description: s.Description,
		GithubURL:   s.GithubURL,
		VideoURL:    s.VideoURL,
		DemoURL:     s.DemoURL,
		Attachments: mini,
		UpdatedAt:   s.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// ToRatingResp 模型 → 响应 DTO
func ToRatingResp(r *models.Rating) dto.RatingResp {
	return dto.RatingResp{
		ID:                r.ID,
		SubmissionID:      r.SubmissionID,
		JudgeID:           r.JudgeID,
		InnovationScore:   r.InnovationScore,
		TechnicalScore:    r.TechnicalScore,
		DesignScore:       r.DesignScore,
		PresentationScore: r.PresentationScore,
		TotalScore:        r.TotalScore(),
		Comments:          r.Comments,
		RatedAt:           r.RatedAt.Format("2006-01-02 15:04:05"),
	}
}
