package model

type UserType int

const (
	TipoTutor      UserType = 1 // 管理端 / tutor
	TipoProfesor   UserType = 2
	TipoEstudiante UserType = 3
)

// swagger:model User
type User struct {
	BaseModel
	Username string   `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Email    string   `gorm:"size:100;not null" json:"email"`
	Password string   `gorm:"size:100" json:"-"` // 学生（type 3）无凭据
	Type     UserType `gorm:"not null;default:3" json:"type"`
	Grupo    string   `gorm:"size:100;index" json:"grupo,omitempty"`
	UID      string   `gorm:"size:128" json:"-"` // 外部身份 ID，镜像失败时为 temp- 前缀
}

func (User) TableName() string {
	return "users"
}

// HasTempUID 外部身份镜像未成功时本地生成的占位 ID
func (u *User) HasTempUID() bool {
	return len(u.UID) >= 5 && u.UID[:5] == "temp-"
}
