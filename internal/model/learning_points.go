package model

// 三个学习风格维度，顺序即并列时的裁决顺序
const (
	EstiloVisual      = "visual"
	EstiloAuditivo    = "auditivo"
	EstiloKinestesico = "kinestesico"
)

// LearningPoints 每个学生一条的累计得分记录
// swagger:model LearningPoints
type LearningPoints struct {
	BaseModel
	UserID          uint    `gorm:"uniqueIndex;not null" json:"userId"`
	Visual          float64 `gorm:"not null;default:0" json:"visual"`
	Auditivo        float64 `gorm:"not null;default:0" json:"auditivo"`
	Kinestesico     float64 `gorm:"not null;default:0" json:"kinestesico"`
	EstiloDominante string  `gorm:"size:20" json:"estilo_dominante"`
}

func (LearningPoints) TableName() string {
	return "learning_points"
}

// DominantStyle 按 visual、auditivo、kinestesico 的固定顺序取第一个达到最大值的维度
func DominantStyle(visual, auditivo, kinestesico float64) string {
	max := visual
	estilo := EstiloVisual
	if auditivo > max {
		max = auditivo
		estilo = EstiloAuditivo
	}
	if kinestesico > max {
		estilo = EstiloKinestesico
	}
	return estilo
}
