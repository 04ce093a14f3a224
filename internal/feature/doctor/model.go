package doctor

// Doctor 医生名录条目，web 端列表页直接渲染。
// 只读数据，不参与预约核心的任何不变量。
type Doctor struct {
	ID        string  `gorm:"primaryKey;size:36" json:"id"`
	Name      string  `gorm:"size:64;not null" json:"name"`
	Specialty string  `gorm:"size:64;not null;index" json:"specialty"`
	Rating    float64 `gorm:"not null;default:0" json:"rating"`
	Reviews   int     `gorm:"not null;default:0" json:"reviews"`
	Location  string  `gorm:"size:128" json:"location"`
	Image     string  `gorm:"size:512" json:"image"`
	Available bool    `gorm:"not null;default:true" json:"available"`
	Featured  bool    `gorm:"not null;default:false" json:"featured"`
	Bio       string  `gorm:"type:text" json:"bio,omitempty"`
}

func (Doctor) TableName() string { return "doctors" }
