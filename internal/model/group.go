package model

// swagger:model Group
type Group struct {
	BaseModel
	Grupo    string `gorm:"size:100;uniqueIndex;not null" json:"grupo"`
	Profesor uint   `gorm:"index" json:"profesor,omitempty"` // 负责该组的教师，可为空
}

func (Group) TableName() string {
	return "groups"
}
