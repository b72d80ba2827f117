package industry

type CreateIndustryRequest struct {
	Code     string `json:"code" binding:"required"`
	Industry string `json:"industry" binding:"required"`
}

type AssociateCompanyRequest struct {
	CompCode string `json:"comp_code" binding:"required"`
}

type IndustryResponse struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

type IndustryWithCompanies struct {
	Code      string   `json:"code"`
	Industry  string   `json:"industry"`
	Companies []string `json:"companies"`
}

type AssociationResponse struct {
	IndCode  string `json:"ind_code"`
	CompCode string `json:"comp_code"`
}
