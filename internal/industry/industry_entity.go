package industry

type Industry struct {
	Code     string `gorm:"primaryKey;size:64"`
	Industry string `gorm:"size:255;not null"`
}

// CompanyIndustry is one membership row in the association table.
type CompanyIndustry struct {
	CompCode string `gorm:"primaryKey;size:64"`
	IndCode  string `gorm:"primaryKey;size:64"`
}

func (CompanyIndustry) TableName() string {
	return "companies_industries"
}

// IndustryCompanyRow is one row of the joined industry listing. CompCode is
// nil for industries with no member companies.
type IndustryCompanyRow struct {
	Code     string
	Industry string
	CompCode *string
}
