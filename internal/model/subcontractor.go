package model

import "github.com/costwise/costwise/internal/common"

// Subcontractor is a party that materials, equipment, labor trades and
// schedule tasks can be assigned to. An empty SubcontractorID on those
// entities means unassigned.
type Subcontractor struct {
	ID          string
	Name        string
	Company     string
	ContactInfo string
}

// SubcontractorInput carries raw form values for a new subcontractor.
type SubcontractorInput struct {
	Name        string
	Company     string
	ContactInfo string
}

// Validate checks that every subcontractor field was entered.
func (in SubcontractorInput) Validate() error {
	if in.Name == "" {
		return common.MissingFieldError("subcontractor name")
	}
	if in.Company == "" {
		return common.MissingFieldError("company")
	}
	if in.ContactInfo == "" {
		return common.MissingFieldError("contact info")
	}
	return nil
}

// Subcontractor builds the entity. The caller is expected to have
// validated the input first.
func (in SubcontractorInput) Subcontractor() Subcontractor {
	return Subcontractor{
		Name:        in.Name,
		Company:     in.Company,
		ContactInfo: in.ContactInfo,
	}
}
