package model

import "time"

// Product is one distinct product of the showroom catalog. Name is the lookup
// key; SupplierKey is the canonical join key against finish rows.
type Product struct {
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	SupplierKey string   `json:"supplierCode"`
	Images      []string `json:"images"`
}

// FinishRow is one normalized row of a supplier sheet. Rows are immutable
// after load; StatusDate is resolved once at load time.
type FinishRow struct {
	FinishName    string
	Category      string
	Composition   string
	Status        string
	StatusDate    time.Time
	HasStatusDate bool
	Restriction   string
	Info          string
	Image         string
	SupplierKey   string
}

// Catalog is the root aggregate, built once at startup and read-only after.
type Catalog struct {
	Products []Product
	Finishes []FinishRow
}

// ProductSummary is one entry of the listing query.
type ProductSummary struct {
	Name         string `json:"name"`
	Brand        string `json:"brand"`
	Image        string `json:"image"`
	SupplierCode string `json:"supplierCode"`
}

// FinishEntry is one display-ready finish row of the detail query.
type FinishEntry struct {
	FinishName  string `json:"finishName"`
	Category    string `json:"type"`
	Composition string `json:"composition"`
	Status      string `json:"status"`
	StatusDate  string `json:"statusDate"`
	StatusColor string `json:"statusColor"`
	Restriction string `json:"restriction"`
	Info        string `json:"info"`
	Image       string `json:"image"`
}

// FinishGroup keeps entries of one category in first-encounter order.
type FinishGroup struct {
	Category string        `json:"category"`
	Entries  []FinishEntry `json:"entries"`
}

// FinishView is the result of resolving a product's finishes, optionally
// filtered by a search term. Derived per call, never cached.
type FinishView struct {
	Groups       []FinishGroup `json:"categories"`
	FinishNames  []string      `json:"finishNameList"`
	LastUpdated  string        `json:"lastUpdated"`
	StatusesSeen []string      `json:"statusValuesSeen"`
}

// ReportHeader is the header block of an assembled report.
type ReportHeader struct {
	Name         string `json:"name"`
	SupplierCode string `json:"supplierCode"`
	Brand        string `json:"brand"`
	LastUpdated  string `json:"lastUpdated"`
}

// Report is the page-agnostic structure consumed identically by the HTML
// page and the PDF layout pass.
type Report struct {
	Header ReportHeader  `json:"header"`
	Images []string      `json:"images"`
	Groups []FinishGroup `json:"groups"`
}
