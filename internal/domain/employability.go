package domain

import "time"

// EmployabilityEntry representa uma linha da tabela employability
type EmployabilityEntry struct {
	ID                   int64     `json:"id"`
	Date                 *Date     `json:"date"`
	AdminPresent         int       `json:"admin_present"`
	AdminLeave           int       `json:"admin_leave"`
	AdminSeparated       int       `json:"admin_separated"`
	AdminReasonAttrition *string   `json:"admin_reason_attrition"`
	DLPresent            int       `json:"dl_present"`
	DLLeave              int       `json:"dl_leave"`
	DLSeparated          int       `json:"dl_separated"`
	DLReasonAttrition    *string   `json:"dl_reason_attrition"`
	IDLPresent           int       `json:"idl_present"`
	IDLLeave             int       `json:"idl_leave"`
	IDLSeparated         int       `json:"idl_separated"`
	IDLReasonAttrition   *string   `json:"idl_reason_attrition"`
	TotalDaysToRecruit   *int      `json:"total_days_to_recruit"`
	HRIRCount            int       `json:"hr_ir_count"`
	FinanceAccountCount  int       `json:"finance_account_count"`
	SalesMarketingCount  int       `json:"sales_marketing_count"`
	OperationsCount      int       `json:"operations_count"`
	ITCount              int       `json:"it_count"`
	CreatedAt            time.Time `json:"created_at"`
}

// EmployabilityInput: a planilha repete os cabeçalhos de cada grupo (admin, dl, idl),
// diferenciados pelos sufixos __1 e __2
type EmployabilityInput struct {
	Date                 *Date   `mapstructure:"date" xlsx:"Date"`
	AdminPresent         *int    `mapstructure:"admin_present" xlsx:"Present"`
	AdminLeave           *int    `mapstructure:"admin_leave" xlsx:"Leave"`
	AdminSeparated       *int    `mapstructure:"admin_separated" xlsx:"Separated"`
	AdminReasonAttrition *string `mapstructure:"admin_reason_attrition" xlsx:"Reason for Attrition"`
	DLPresent            *int    `mapstructure:"dl_present" xlsx:"Present__1"`
	DLLeave              *int    `mapstructure:"dl_leave" xlsx:"Leave__1"`
	DLSeparated          *int    `mapstructure:"dl_separated" xlsx:"Separated__1"`
	DLReasonAttrition    *string `mapstructure:"dl_reason_attrition" xlsx:"Reason for Attrition__1"`
	IDLPresent           *int    `mapstructure:"idl_present" xlsx:"Present__2"`
	IDLLeave             *int    `mapstructure:"idl_leave" xlsx:"Leave__2"`
	IDLSeparated         *int    `mapstructure:"idl_separated" xlsx:"Separated__2"`
	IDLReasonAttrition   *string `mapstructure:"idl_reason_attrition" xlsx:"Reason for Attrition__2"`
	TotalDaysToRecruit   *int    `mapstructure:"total_days_to_recruit" xlsx:"Total Days to Recruit"`
	HRIRCount            *int    `mapstructure:"hr_ir_count" xlsx:"HR & IR"`
	FinanceAccountCount  *int    `mapstructure:"finance_account_count" xlsx:"Finance & Account"`
	SalesMarketingCount  *int    `mapstructure:"sales_marketing_count" xlsx:"Sales & Marketing"`
	OperationsCount      *int    `mapstructure:"operations_count" xlsx:"Operations"`
	ITCount              *int    `mapstructure:"it_count" xlsx:"IT"`
}

func (in EmployabilityInput) GoverningDate() *Date {
	return in.Date
}

// Entry zera as contagens ausentes; motivos e dias de recrutamento continuam nulos
func (in EmployabilityInput) Entry() *EmployabilityEntry {
	return &EmployabilityEntry{
		Date:                 in.Date,
		AdminPresent:         intOrZero(in.AdminPresent),
		AdminLeave:           intOrZero(in.AdminLeave),
		AdminSeparated:       intOrZero(in.AdminSeparated),
		AdminReasonAttrition: in.AdminReasonAttrition,
		DLPresent:            intOrZero(in.DLPresent),
		DLLeave:              intOrZero(in.DLLeave),
		DLSeparated:          intOrZero(in.DLSeparated),
		DLReasonAttrition:    in.DLReasonAttrition,
		IDLPresent:           intOrZero(in.IDLPresent),
		IDLLeave:             intOrZero(in.IDLLeave),
		IDLSeparated:         intOrZero(in.IDLSeparated),
		IDLReasonAttrition:   in.IDLReasonAttrition,
		TotalDaysToRecruit:   in.TotalDaysToRecruit,
		HRIRCount:            intOrZero(in.HRIRCount),
		FinanceAccountCount:  intOrZero(in.FinanceAccountCount),
		SalesMarketingCount:  intOrZero(in.SalesMarketingCount),
		OperationsCount:      intOrZero(in.OperationsCount),
		ITCount:              intOrZero(in.ITCount),
	}
}
