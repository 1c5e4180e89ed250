package models

type Category struct {
	BaseModel
	Name        string `json:"name"`
	NameAr      string `json:"nameAr,omitempty"`
	Slug        string `gorm:"uniqueIndex" json:"slug"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Icon        string `json:"icon,omitempty"`
	SortOrder   int    `json:"sortOrder"`
	IsActive    bool   `json:"isActive"`

	// ProductCount is filled by a subquery on list reads, never stored.
	ProductCount int64     `gorm:"->;-:migration" json:"productCount"`
	Products     []Product `json:"products,omitempty"`
}

type Brand struct {
	BaseModel
	Name        string `json:"name"`
	NameAr      string `json:"nameAr,omitempty"`
	Slug        string `gorm:"uniqueIndex" json:"slug"`
	Description string `json:"description,omitempty"`
	Logo        string `json:"logo,omitempty"`
	Website     string `json:"website,omitempty"`
	Country     string `json:"country,omitempty"`
	IsFeatured  bool   `json:"isFeatured"`
	IsActive    bool   `json:"isActive"`
	SortOrder   int    `json:"sortOrder"`

	ProductCount int64     `gorm:"->;-:migration" json:"productCount"`
	Products     []Product `json:"products,omitempty"`
}
