package model

// Pregunta 固定问卷中的一道题
// swagger:model Pregunta
type Pregunta struct {
	BaseModel
	PreguntaID      int      `gorm:"uniqueIndex;not null" json:"pregunta_id"`
	Contenido       string   `gorm:"size:255;not null" json:"contenido"`
	Estilo          string   `gorm:"size:20;not null;index" json:"estilo"`
	Categoria       string   `gorm:"size:50" json:"categoria"`
	RespuestaPatron int      `json:"respuesta_patron"`
	Opciones        []string `gorm:"serializer:json" json:"opciones"`
}

func (Pregunta) TableName() string {
	return "preguntas"
}
