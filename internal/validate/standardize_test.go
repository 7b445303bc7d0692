package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndustry(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"tech keyword", "tech", "Technology"},
		{"tech company description", "Technology Services", "Technology"},
		{"fintech beats tech", "Fintech startup", "Fintech"},
		{"saas", "saas", "SaaS"},
		{"software", "Software Development", "Software"},
		{"healthcare two words", "Health Care", "Healthcare"},
		{"real estate", "Commercial Real Estate", "Real Estate"},
		{"unknown title cased", "financial services", "Financial Services"},
		{"empty stays empty", "", ""},
		{"whitespace stays empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Industry(tt.input))
		})
	}
}

func TestCompanySize(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already canonical", "51-200", "51-200"},
		{"plain number small", "8", "1-10"},
		{"plain number medium", "150", "51-200"},
		{"number in prose", "around 150 employees", "51-200"},
		{"bucket boundary", "200", "51-200"},
		{"above boundary", "201", "201-500"},
		{"very large", "1200", "500+"},
		{"open ended plus", "500+", "500+"},
		{"startup keyword", "startup", "1-10"},
		{"enterprise keyword", "Enterprise", "500+"},
		{"medium keyword", "medium-sized", "51-200"},
		{"unparseable passes through", "quite big", "quite big"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.CompanySize(tt.input))
		})
	}
}

func TestRevenue(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already canonical", "10M-50M", "10M-50M"},
		{"dollar millions", "$5M", "5M-10M"},
		{"decimal millions", "$1.5M", "1M-5M"},
		{"thousands", "250k", "0-1M"},
		{"spelled out millions", "75 million", "50M-100M"},
		{"billions", "2 billion", "100M+"},
		{"plain small number", "800000", "0-1M"},
		{"unparseable passes through", "confidential", "confidential"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Revenue(tt.input))
		})
	}
}
