package model

// Resultado 每次提交派生的预测记录，只追加不更新
// swagger:model Resultado
type Resultado struct {
	UUIDBase
	IDUser              uint    `gorm:"column:id_user;index;not null" json:"id_user"`
	VisualPredicho      float64 `json:"visual_predicho"`
	AuditivoPredicho    float64 `json:"auditivo_predicho"`
	KinestesicoPredicho float64 `json:"kinestesico_predicho"`
	Detalles            string  `gorm:"type:text" json:"detalles"` // 输入、归一化及预测值的 JSON 快照
}

func (Resultado) TableName() string {
	return "resultados"
}
