package ingest

import (
	"github.com/google/uuid"

	"github.com/sells-group/leadscore-cli/internal/model"
)

// SampleLeads returns a small demo dataset covering a strong, a mid-tier
// and a sparse record.
func SampleLeads() []model.Lead {
	return []model.Lead{
		{
			ID:          uuid.NewString(),
			CompanyName: "TechCorp Solutions",
			ContactName: "John Smith",
			Email:       "john.smith@techcorp.com",
			Phone:       "+1-555-123-4567",
			Industry:    "Technology",
			CompanySize: "51-200",
			Revenue:     "10M-50M",
			Website:     "https://techcorp.com",
			LinkedIn:    "https://linkedin.com/company/techcorp",
		},
		{
			ID:          uuid.NewString(),
			CompanyName: "Global Manufacturing Inc",
			ContactName: "Sarah Johnson",
			Email:       "sarah.j@globalmfg.com",
			Phone:       "555-987-6543",
			Industry:    "Manufacturing",
			CompanySize: "201-500",
			Revenue:     "50M-100M",
			Website:     "www.globalmfg.com",
		},
		{
			ID:          uuid.NewString(),
			CompanyName: "StartupXYZ",
			ContactName: "Mike Chen",
			Email:       "mike@startupxyz.io",
			Industry:    "SaaS",
			CompanySize: "1-10",
		},
	}
}
