// file: dto/rating.go
package dto

// RateSubmissionReq 评委打分载荷，四项分值均在 [1,10]
type RateSubmissionReq struct {
	InnovationScore   int    `json:"innovation_score"`
	TechnicalScore    int    `json:"technical_score"`
	DesignScore       int    `json:"design_score"`
	PresentationScore int    `json:"presentation_score"`
	Comments          string `json:"comments"`

	// 兼容旧客户端别名
	InnovationScoreCamel   int `json:"innovationScore"`
	TechnicalScoreCamel    int `json:"technicalScore"`
	DesignScoreCamel       int `json:"designScore"`
	PresentationScoreCamel int `json:"presentationScore"`
}

func (r *RateSubmissionReq) Normalize() {
	if r.InnovationScore == 0 && r.InnovationScoreCamel != 0 {
		r.InnovationScore = r.InnovationScoreCamel
	}
	if r.TechnicalScore == 0 && r.TechnicalScoreCamel != 0 {
		r.TechnicalScore = r.TechnicalScoreCamel
	}
	if r.DesignScore == 0 && r.DesignScoreCamel != 0 {
		r.DesignScore = r.DesignScoreCamel
	}
	if r.PresentationScore == 0 && r.PresentationScoreCamel != 0 {
		r.PresentationScore = r.PresentationScoreCamel
	}
}

type RatingResp struct {
	ID                uint64 `json:"id"`
	SubmissionID      uint64 `json:"submission_id"`
	JudgeID           uint32 `json:"judge_id"`
	InnovationScore   int    `json:"innovation_score"`
	TechnicalScore    int    `json:"technical_score"`
	DesignScore       int    `json:"design_score"`
	PresentationScore int    `json:"presentation_score"`
	TotalScore        int    `json:"total_score"`
	Comments          string `json:"comments"`
	RatedAt           string `json:"rated_at"`
}
