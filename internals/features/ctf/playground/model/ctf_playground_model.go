package model

import "time"

type CTFCategoryModel struct {
	ID          uint      `json:"id" gorm:"column:id;primaryKey"`
	Name        string    `json:"name" gorm:"column:name;not null"`
	Slug        string    `json:"slug" gorm:"column:slug;uniqueIndex;not null"`
	Description string    `json:"description" gorm:"column:description"`
	IsActive    bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
}

func (CTFCategoryModel) TableName() string {
	return "ctf_categories"
}

type CTFChallengeModel struct {
	ID          uint       `json:"id" gorm:"column:id;primaryKey"`
	CategoryID  uint       `json:"category_id" gorm:"column:category_id;not null"`
	Title       string     `json:"title" gorm:"column:title;not null"`
	Description string     `json:"description" gorm:"column:description"`
	Level       string     `json:"level" gorm:"column:level;not null"`
	Price       int        `json:"price" gorm:"column:price"`
	Hint        string     `json:"hint" gorm:"column:hint"`
	DriveLink   string     `json:"drive_link" gorm:"column:drive_link"`
	Flag        string     `json:"flag" gorm:"column:flag;not null"`
	AccessCode  string     `json:"access_code" gorm:"column:access_code"`
	SortOrder   int        `json:"sort_order" gorm:"column:sort_order"`
	IsActive    bool       `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt   time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty" gorm:"column:updated_at"`
}

func (CTFChallengeModel) TableName() string {
	return "ctf_challenges"
}

type CTFPageConfigModel struct {
	ID           uint       `json:"id" gorm:"column:id;primaryKey"`
	HeaderTitle  string     `json:"header_title" gorm:"column:header_title"`
	PageSubtitle string     `json:"page_subtitle" gorm:"column:page_subtitle"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty" gorm:"column:updated_at"`
}

func (CTFPageConfigModel) TableName() string {
	return "ctf_page_config"
}
