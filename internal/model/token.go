package model

const (
	TokenExpirado = 0
	TokenActivo   = 1
)

// TokenLength 加入码固定 5 个字符
const TokenLength = 5

// Token 组级加入码；同一组同一时刻至多一个 estatus=1 的记录
// swagger:model Token
type Token struct {
	BaseModel
	Token   string `gorm:"size:5;index;not null" json:"token"`
	Grupo   string `gorm:"size:100;index;not null" json:"grupo"`
	Estatus int    `gorm:"not null;default:1;index" json:"estatus"`
}

func (Token) TableName() string {
	return "tokens"
}

// Activo 过期是终态，不允许复活
func (t *Token) Activo() bool {
	return t.Estatus == TokenActivo
}
