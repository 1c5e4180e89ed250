package models

type ContentType string

const (
	ContentTypeText  ContentType = "TEXT"
	ContentTypeHTML  ContentType = "HTML"
	ContentTypeImage ContentType = "IMAGE"
	ContentTypeJSON  ContentType = "JSON"
)

// Content is a keyed piece of site copy, editable from the admin panel.
type Content struct {
	BaseModel
	Key     string      `gorm:"uniqueIndex" json:"key"`
	Type    ContentType `json:"type"`
	Value   string      `json:"value"`
	ValueAr string      `json:"valueAr,omitempty"`
	Section string      `gorm:"index" json:"section,omitempty"`
}

// Setting is a keyed configuration value grouped for the admin panel.
type Setting struct {
	BaseModel
	Key   string `gorm:"uniqueIndex" json:"key"`
	Value string `json:"value"`
	Type  string `json:"type,omitempty"`
	Group string `gorm:"index" json:"group,omitempty"`
}

// Statistic is a display-only headline number for the public site.
type Statistic struct {
	BaseModel
	Key       string `gorm:"uniqueIndex" json:"key"`
	Label     string `json:"label"`
	LabelAr   string `json:"labelAr,omitempty"`
	Value     string `json:"value"`
	Icon      string `json:"icon,omitempty"`
	SortOrder int    `json:"sortOrder"`
	IsActive  bool   `json:"isActive"`
}

// CompanyValue is a display-only "our values" card.
type CompanyValue struct {
	BaseModel
	Title         string `json:"title"`
	TitleAr       string `json:"titleAr,omitempty"`
	Description   string `json:"description"`
	DescriptionAr string `json:"descriptionAr,omitempty"`
	Icon          string `json:"icon,omitempty"`
	SortOrder     int    `json:"sortOrder"`
	IsActive      bool   `json:"isActive"`
}

// Service is a display-only service offering card.
type Service struct {
	BaseModel
	Title         string `json:"title"`
	TitleAr       string `json:"titleAr,omitempty"`
	Description   string `json:"description"`
	DescriptionAr string `json:"descriptionAr,omitempty"`
	Icon          string `json:"icon,omitempty"`
	Image         string `json:"image,omitempty"`
	SortOrder     int    `json:"sortOrder"`
	IsActive      bool   `json:"isActive"`
}

type PartnerType string

const (
	PartnerTypeDistributor   PartnerType = "DISTRIBUTOR"
	PartnerTypePartner       PartnerType = "PARTNER"
	PartnerTypeCertification PartnerType = "CERTIFICATION"
)

// Partner is a distributor, partner or certification logo.
type Partner struct {
	BaseModel
	Name      string      `json:"name"`
	Logo      string      `json:"logo"`
	Website   string      `json:"website,omitempty"`
	Type      PartnerType `gorm:"index" json:"type"`
	SortOrder int         `json:"sortOrder"`
	IsActive  bool        `json:"isActive"`
}
