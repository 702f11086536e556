package model

// Respuesta 已提交的单题答案，只追加不更新
// swagger:model Respuesta
type Respuesta struct {
	UUIDBase
	IDUser         uint   `gorm:"column:id_user;index;not null" json:"id_user"`
	PreguntaID     int    `gorm:"not null" json:"pregunta_id"`
	Respuesta      string `gorm:"size:100" json:"respuesta"`
	Estilo         string `gorm:"size:20" json:"estilo"`
	RespuestaValor int    `json:"respuestaValor"`
}

func (Respuesta) TableName() string {
	return "respuestas"
}
